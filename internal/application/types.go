package application

import "phonecentral/internal/domain"

// Re-export name fields for use by adapters
type NameField = domain.NameField

const (
	FieldFirstName = domain.FieldFirstName
	FieldLastName  = domain.FieldLastName
)

// Re-export domain types for use by adapters
type (
	Call            = domain.Call
	Contact         = domain.Contact
	ScoredContact   = domain.ScoredContact
	Suggestion      = domain.Suggestion
	PhoneSuggestion = domain.PhoneSuggestion
	RankedNumber    = domain.RankedNumber
	NodeStats       = domain.NodeStats
)

// NormalizePhone strips separators and validates a raw phone string.
func NormalizePhone(raw string) (string, error) {
	return domain.NormalizePhone(raw)
}

// FormatMMSS renders a duration in seconds as mm:ss.
func FormatMMSS(seconds int) string {
	return domain.FormatMMSS(seconds)
}
