package domain

import (
	"sort"
	"time"
)

// Ledger is the chronological call-record store. It keeps one global
// sequence sorted by start time plus a per-number sub-sequence for every
// participant. Ties on start time preserve arrival order, so the per-number
// views are always stable filtered copies of the global view.
//
// Calls are never retracted; both structures only grow.
type Ledger struct {
	global   []*Call
	byNumber map[string][]*Call
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{byNumber: make(map[string][]*Call)}
}

// BuildLedger builds a ledger from a static slice of calls. The result is
// identical to inserting the calls one at a time.
func BuildLedger(calls []*Call) *Ledger {
	l := NewLedger()
	for _, c := range calls {
		l.Insert(c)
	}
	return l
}

// Insert places a call into the global sequence and into the sub-sequences
// of its caller and callee. Calls arriving in time order append in O(1);
// out-of-order arrivals use an upper-bound binary search so equal start
// times keep arrival order. A self-call lands twice in that number's
// sub-sequence, once per participant slot.
func (l *Ledger) Insert(call *Call) {
	l.global = insertSorted(l.global, call)
	for _, number := range []string{call.Caller, call.Callee} {
		l.byNumber[number] = insertSorted(l.byNumber[number], call)
	}
}

func insertSorted(calls []*Call, call *Call) []*Call {
	if n := len(calls); n == 0 || !calls[n-1].Start.After(call.Start) {
		return append(calls, call)
	}
	idx := upperBound(calls, call.Start)
	calls = append(calls, nil)
	copy(calls[idx+1:], calls[idx:])
	calls[idx] = call
	return calls
}

// upperBound returns the first index whose start is strictly greater than t.
func upperBound(calls []*Call, t time.Time) int {
	return sort.Search(len(calls), func(i int) bool {
		return calls[i].Start.After(t)
	})
}

// lowerBound returns the first index whose start is not before t.
func lowerBound(calls []*Call, t time.Time) int {
	return sort.Search(len(calls), func(i int) bool {
		return !calls[i].Start.Before(t)
	})
}

// All returns the global chronological sequence.
func (l *Ledger) All() []*Call {
	out := make([]*Call, len(l.global))
	copy(out, l.global)
	return out
}

// Len returns the number of calls in the global sequence.
func (l *Ledger) Len() int {
	return len(l.global)
}

// CallsFor returns the full chronological history of a number. Unknown
// numbers yield an empty slice, never an error.
func (l *Ledger) CallsFor(number string) []*Call {
	calls := l.byNumber[number]
	out := make([]*Call, len(calls))
	copy(out, calls)
	return out
}

// QueryRange returns the calls of a number with start inside [from, to],
// both bounds inclusive and open-ended when nil.
func (l *Ledger) QueryRange(number string, from, to *time.Time) []*Call {
	calls := l.byNumber[number]
	left, right := 0, len(calls)
	if from != nil {
		left = lowerBound(calls, *from)
	}
	if to != nil {
		right = upperBound(calls, *to)
	}
	if left >= right {
		return nil
	}
	out := make([]*Call, right-left)
	copy(out, calls[left:right])
	return out
}

// QueryBetween returns every call between a and b, in either direction, in
// chronological order, optionally restricted to [from, to].
func (l *Ledger) QueryBetween(a, b string, from, to *time.Time) []*Call {
	var out []*Call
	for _, c := range l.QueryRange(a, from, to) {
		if (c.Caller == a && c.Callee == b) || (c.Caller == b && c.Callee == a) {
			out = append(out, c)
		}
	}
	return out
}
