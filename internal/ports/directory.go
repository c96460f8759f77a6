package ports

import (
	"time"

	"phonecentral/internal/domain"
)

// Directory is the exchange surface consumed by front-ends (CLI, TUI,
// MCP). domain.Central is the canonical implementation; adapters depend on
// this interface so tests can substitute a fixture.
type Directory interface {
	// Phonebook
	AddContact(contact *domain.Contact) bool
	Contact(number string) (*domain.Contact, bool)
	Contacts() []*domain.Contact
	Numbers() []string

	// Call ledger
	RecordCall(call *domain.Call)
	Calls() []*domain.Call
	CallsFor(number string) []*domain.Call
	QueryRange(number string, from, to *time.Time) []*domain.Call
	QueryBetween(a, b string, from, to *time.Time) []*domain.Call

	// Popularity graph
	Score(number string) float64
	Stats(number string) (domain.NodeStats, bool)
	TopIncoming(n int) []domain.RankedNumber
	TopOutgoing(n int) []domain.RankedNumber
	RebuildGraph(exclude map[string]struct{})

	// Blocked numbers
	Block(number string)
	Unblock(number string)
	IsBlocked(number string) bool
	Blocked() []string

	// Search engine
	SearchByName(field domain.NameField, prefix string, exact bool) []domain.ScoredContact
	SearchByPhone(prefix string) []domain.ScoredContact
	Autocomplete(field domain.NameField, prefix string) []domain.Suggestion
	SuggestSimilarPhone(input string) []domain.PhoneSuggestion
}
