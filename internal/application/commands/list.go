package commands

import (
	"context"

	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// ListContactsCommand lists every contact in the phonebook
type ListContactsCommand struct {
	dir ports.Directory
}

// NewListContactsCommand creates a new ListContactsCommand
func NewListContactsCommand(dir ports.Directory) *ListContactsCommand {
	return &ListContactsCommand{dir: dir}
}

// Execute returns the contacts in insertion order
func (c *ListContactsCommand) Execute(ctx context.Context) ([]*domain.Contact, error) {
	return c.dir.Contacts(), nil
}

// ListCallsCommand lists the global chronological call sequence
type ListCallsCommand struct {
	dir ports.Directory
}

// NewListCallsCommand creates a new ListCallsCommand
func NewListCallsCommand(dir ports.Directory) *ListCallsCommand {
	return &ListCallsCommand{dir: dir}
}

// Execute returns all calls sorted by start time
func (c *ListCallsCommand) Execute(ctx context.Context) ([]*domain.Call, error) {
	return c.dir.Calls(), nil
}

// ListBlockedCommand lists the blocked numbers
type ListBlockedCommand struct {
	dir ports.Directory
}

// NewListBlockedCommand creates a new ListBlockedCommand
func NewListBlockedCommand(dir ports.Directory) *ListBlockedCommand {
	return &ListBlockedCommand{dir: dir}
}

// Execute returns the blocked numbers in ascending order
func (c *ListBlockedCommand) Execute(ctx context.Context) ([]string, error) {
	return c.dir.Blocked(), nil
}
