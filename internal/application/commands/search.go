package commands

import (
	"context"

	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// NameSearchCommand runs a ranked prefix search over one of the name tries.
type NameSearchCommand struct {
	dir    ports.Directory
	Field  domain.NameField
	Prefix string
	Exact  bool
}

// NewNameSearchCommand creates a new NameSearchCommand
func NewNameSearchCommand(dir ports.Directory, field domain.NameField, prefix string, exact bool) *NameSearchCommand {
	return &NameSearchCommand{
		dir:    dir,
		Field:  field,
		Prefix: prefix,
		Exact:  exact,
	}
}

// Execute runs the search and returns results ranked by popularity
func (c *NameSearchCommand) Execute(ctx context.Context) ([]domain.ScoredContact, error) {
	return c.dir.SearchByName(c.Field, c.Prefix, c.Exact), nil
}

// PhoneSearchResult holds a phone search outcome. When no contact matched,
// Suggestions carries the "did you mean" fallback candidates.
type PhoneSearchResult struct {
	Results     []domain.ScoredContact
	Suggestions []domain.PhoneSuggestion
}

// PhoneSearchCommand runs a ranked phone-prefix search with the similar-
// number fallback for empty results.
type PhoneSearchCommand struct {
	dir    ports.Directory
	Prefix string
}

// NewPhoneSearchCommand creates a new PhoneSearchCommand
func NewPhoneSearchCommand(dir ports.Directory, prefix string) *PhoneSearchCommand {
	return &PhoneSearchCommand{dir: dir, Prefix: prefix}
}

// Execute runs the search; malformed input is a "no matches" outcome
func (c *PhoneSearchCommand) Execute(ctx context.Context) (*PhoneSearchResult, error) {
	results := c.dir.SearchByPhone(c.Prefix)
	if len(results) > 0 {
		return &PhoneSearchResult{Results: results}, nil
	}
	return &PhoneSearchResult{Suggestions: c.dir.SuggestSimilarPhone(c.Prefix)}, nil
}

// AutocompleteCommand returns ranked name completions for a prefix.
type AutocompleteCommand struct {
	dir    ports.Directory
	Field  domain.NameField
	Prefix string
}

// NewAutocompleteCommand creates a new AutocompleteCommand
func NewAutocompleteCommand(dir ports.Directory, field domain.NameField, prefix string) *AutocompleteCommand {
	return &AutocompleteCommand{dir: dir, Field: field, Prefix: prefix}
}

// Execute returns up to 4 completions ranked by aggregate popularity
func (c *AutocompleteCommand) Execute(ctx context.Context) ([]domain.Suggestion, error) {
	return c.dir.Autocomplete(c.Field, c.Prefix), nil
}
