package domain

import (
	"sort"
	"sync"
	"time"
)

// Central owns the four structures of the exchange — phonebook, call
// ledger, prefix index and popularity graph — plus the blocked set, and is
// the single writer for all of them. Every mutation goes through one of
// its methods under the write lock, so the ledger and the graph can never
// drift apart: RecordCall applies both updates before releasing the lock.
type Central struct {
	mu      sync.RWMutex
	book    *Phonebook
	ledger  *Ledger
	index   *PrefixIndex
	graph   *PopularityGraph
	engine  *SearchEngine
	blocked map[string]struct{}
}

// NewCentral creates an empty exchange.
func NewCentral() *Central {
	book := NewPhonebook()
	index := NewPrefixIndex()
	graph := NewPopularityGraph()
	return &Central{
		book:    book,
		ledger:  NewLedger(),
		index:   index,
		graph:   graph,
		engine:  NewSearchEngine(index, graph, book),
		blocked: make(map[string]struct{}),
	}
}

// BuildCentral constructs an exchange from already-parsed data. The calls
// are replayed through RecordCall in chronological order, so the result is
// identical to recording them live one at a time.
func BuildCentral(contacts []*Contact, calls []*Call, blocked []string) *Central {
	c := NewCentral()
	for _, contact := range contacts {
		c.AddContact(contact)
	}
	sorted := make([]*Call, len(calls))
	copy(sorted, calls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	for _, call := range sorted {
		c.RecordCall(call)
	}
	for _, number := range blocked {
		c.Block(number)
	}
	return c
}

// AddContact registers a contact in the phonebook and all three tries.
// Returns false for a duplicate number, which keeps its first contact.
func (c *Central) AddContact(contact *Contact) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.book.Add(contact) {
		return false
	}
	c.index.InsertContact(contact)
	return true
}

// Contact returns the contact registered for a number.
func (c *Central) Contact(number string) (*Contact, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.book.Get(number)
}

// Contacts returns every contact in insertion order.
func (c *Central) Contacts() []*Contact {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.book.Contacts()
}

// Numbers returns every registered number in insertion order.
func (c *Central) Numbers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.book.Numbers()
}

// RecordCall inserts a call into the ledger and folds it into the
// popularity graph as one atomic step.
func (c *Central) RecordCall(call *Call) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ledger.Insert(call)
	c.graph.UpdateOnCall(call)
}

// Calls returns the global chronological call sequence.
func (c *Central) Calls() []*Call {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ledger.All()
}

// CallsFor returns the chronological history of a number.
func (c *Central) CallsFor(number string) []*Call {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ledger.CallsFor(number)
}

// QueryRange returns a number's calls with start inside [from, to].
func (c *Central) QueryRange(number string, from, to *time.Time) []*Call {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ledger.QueryRange(number, from, to)
}

// QueryBetween returns the calls between two numbers in either direction.
func (c *Central) QueryBetween(a, b string, from, to *time.Time) []*Call {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ledger.QueryBetween(a, b, from, to)
}

// Score returns the popularity score of a number.
func (c *Central) Score(number string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.graph.Score(number)
}

// Stats returns a copy of a number's traffic counters.
func (c *Central) Stats(number string) (NodeStats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.graph.Stats(number)
}

// TopIncoming returns the n numbers receiving the most calls.
func (c *Central) TopIncoming(n int) []RankedNumber {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.graph.TopIncoming(n)
}

// TopOutgoing returns the n numbers placing the most calls.
func (c *Central) TopOutgoing(n int) []RankedNumber {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.graph.TopOutgoing(n)
}

// RebuildGraph rebuilds the popularity graph from the ledger, optionally
// skipping calls that touch a number in exclude.
func (c *Central) RebuildGraph(exclude map[string]struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.graph.Rebuild(c.ledger.All(), exclude)
}

// Block adds a number to the blocked set.
func (c *Central) Block(number string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blocked[number] = struct{}{}
}

// Unblock removes a number from the blocked set.
func (c *Central) Unblock(number string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.blocked, number)
}

// IsBlocked reports whether a number is blocked.
func (c *Central) IsBlocked(number string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.blocked[number]
	return ok
}

// Blocked returns the blocked numbers in ascending order.
func (c *Central) Blocked() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.blocked))
	for number := range c.blocked {
		out = append(out, number)
	}
	sort.Strings(out)
	return out
}

// SearchByName runs a ranked name-prefix search.
func (c *Central) SearchByName(field NameField, prefix string, exact bool) []ScoredContact {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.SearchByName(field, prefix, exact)
}

// SearchByPhone runs a ranked phone-prefix search.
func (c *Central) SearchByPhone(prefix string) []ScoredContact {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.SearchByPhone(prefix)
}

// Autocomplete returns ranked name completions for a prefix.
func (c *Central) Autocomplete(field NameField, prefix string) []Suggestion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.Autocomplete(field, prefix)
}

// SuggestSimilarPhone returns "did you mean" candidates for a phone input.
func (c *Central) SuggestSimilarPhone(input string) []PhoneSuggestion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.SuggestSimilarPhone(input)
}
