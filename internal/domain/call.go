package domain

import (
	"fmt"
	"time"
)

// Call is a single completed call record. Calls are immutable once created
// and have no synthetic identity: two calls with identical fields are two
// distinct ledger entries.
type Call struct {
	Caller   string    // normalized digit string
	Callee   string    // normalized digit string
	Start    time.Time // second resolution
	Duration int       // seconds, never negative
}

// NewCall creates a call record. Caller and callee are expected to be
// already-normalized digit strings (see NormalizePhone).
func NewCall(caller, callee string, start time.Time, duration int) *Call {
	return &Call{
		Caller:   caller,
		Callee:   callee,
		Start:    start,
		Duration: duration,
	}
}

// Involves reports whether number is the caller or the callee.
func (c *Call) Involves(number string) bool {
	return c.Caller == number || c.Callee == number
}

// FormatDuration renders the call duration as mm:ss.
func (c *Call) FormatDuration() string {
	return FormatMMSS(c.Duration)
}

// String renders the call in the log format used throughout the UI.
func (c *Call) String() string {
	return fmt.Sprintf("%s → %s at %s for %s",
		c.Caller, c.Callee, c.Start.Format("02.01.2006 15:04:05"), c.FormatDuration())
}

// FormatMMSS renders a duration in seconds as mm:ss.
func FormatMMSS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
