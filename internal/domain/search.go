package domain

import (
	"sort"
	"strings"
)

// Close-match tuning for SuggestSimilarPhone, matching the behavior of the
// interactive "did you mean" prompt: consider the 10 closest numbers above
// a 0.6 similarity cutoff, then surface the 4 most popular.
const (
	similarPhoneCutoff     = 0.6
	similarPhoneCandidates = 10
	maxSuggestions         = 4
)

// NameField selects which name trie a search targets.
type NameField int

const (
	FieldFirstName NameField = iota
	FieldLastName
)

// String returns the field name for display.
func (f NameField) String() string {
	if f == FieldLastName {
		return "last name"
	}
	return "first name"
}

// ScoredContact is a search hit with its popularity score attached.
type ScoredContact struct {
	Contact *Contact
	Score   float64
}

// Suggestion is one autocomplete candidate: a complete key with the number
// of contacts registered under it and their aggregate popularity.
type Suggestion struct {
	Key          string
	ContactCount int
	TotalScore   float64
}

// PhoneSuggestion is one "did you mean" candidate for a phone lookup.
type PhoneSuggestion struct {
	Phone   string
	Contact *Contact
	Score   float64
}

// SearchEngine answers ranked prefix queries over the prefix index, using
// the popularity graph for relevance and the phonebook for approximate
// phone lookups. All operations are total: bad input means empty results.
type SearchEngine struct {
	index *PrefixIndex
	graph *PopularityGraph
	book  *Phonebook
}

// NewSearchEngine wires a search engine over the given structures.
func NewSearchEngine(index *PrefixIndex, graph *PopularityGraph, book *Phonebook) *SearchEngine {
	return &SearchEngine{index: index, graph: graph, book: book}
}

// SearchByName returns contacts whose first or last name starts with
// prefix, ranked by popularity score descending. With exact set, only the
// key equal to prefix (case-insensitively) matches. The sort is stable, so
// equal scores keep trie order.
func (e *SearchEngine) SearchByName(field NameField, prefix string, exact bool) []ScoredContact {
	if prefix == "" {
		return nil
	}
	entries := e.searchField(field, prefix)
	key := strings.ToLower(prefix)

	var out []ScoredContact
	for _, entry := range entries {
		if exact && entry.Key != key {
			continue
		}
		for _, c := range entry.Contacts {
			out = append(out, ScoredContact{Contact: c, Score: e.graph.Score(c.Phone)})
		}
	}
	sortByScore(out)
	return out
}

// SearchByPhone returns contacts whose number starts with prefix, ranked
// by popularity score descending. A prefix that fails normalization is a
// "no matches" case, not an error.
func (e *SearchEngine) SearchByPhone(prefix string) []ScoredContact {
	normalized, err := NormalizePhone(prefix)
	if err != nil {
		return nil
	}
	var out []ScoredContact
	for _, entry := range e.index.SearchPhone(normalized) {
		for _, c := range entry.Contacts {
			out = append(out, ScoredContact{Contact: c, Score: e.graph.Score(c.Phone)})
		}
	}
	sortByScore(out)
	return out
}

// Autocomplete returns up to 4 complete name keys starting with prefix,
// ranked by the aggregate popularity of everyone sharing that name.
func (e *SearchEngine) Autocomplete(field NameField, prefix string) []Suggestion {
	if prefix == "" {
		return nil
	}
	entries := e.searchField(field, prefix)

	out := make([]Suggestion, 0, len(entries))
	for _, entry := range entries {
		s := Suggestion{Key: entry.Key, ContactCount: len(entry.Contacts)}
		for _, c := range entry.Contacts {
			s.TotalScore += e.graph.Score(c.Phone)
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalScore > out[j].TotalScore
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// SuggestSimilarPhone is the fallback for a phone search that found
// nothing: it returns up to 4 known numbers similar to the input, ranked
// by popularity score descending.
func (e *SearchEngine) SuggestSimilarPhone(input string) []PhoneSuggestion {
	normalized, err := NormalizePhone(input)
	if err != nil {
		return nil
	}
	matches := ClosestMatches(normalized, e.book.Numbers(), similarPhoneCandidates, similarPhoneCutoff)

	out := make([]PhoneSuggestion, 0, len(matches))
	for _, m := range matches {
		contact, _ := e.book.Get(m.Value)
		out = append(out, PhoneSuggestion{
			Phone:   m.Value,
			Contact: contact,
			Score:   e.graph.Score(m.Value),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func (e *SearchEngine) searchField(field NameField, prefix string) []TrieEntry {
	if field == FieldLastName {
		return e.index.SearchLastName(prefix)
	}
	return e.index.SearchFirstName(prefix)
}

func sortByScore(results []ScoredContact) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
