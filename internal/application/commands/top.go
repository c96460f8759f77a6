package commands

import (
	"context"

	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// TopDirection selects which counter a top-N ranking uses.
type TopDirection int

const (
	TopIncoming TopDirection = iota
	TopOutgoing
)

// String returns the direction name for display.
func (d TopDirection) String() string {
	if d == TopOutgoing {
		return "outgoing"
	}
	return "incoming"
}

// TopCommand ranks numbers by received or placed call count.
type TopCommand struct {
	dir       ports.Directory
	Direction TopDirection
	N         int
}

// NewTopCommand creates a new TopCommand
func NewTopCommand(dir ports.Directory, direction TopDirection, n int) *TopCommand {
	return &TopCommand{dir: dir, Direction: direction, N: n}
}

// Execute returns up to N ranked numbers
func (c *TopCommand) Execute(ctx context.Context) ([]domain.RankedNumber, error) {
	if c.Direction == TopOutgoing {
		return c.dir.TopOutgoing(c.N), nil
	}
	return c.dir.TopIncoming(c.N), nil
}
