package commands

import (
	"context"
	"time"

	"phonecentral/internal/application"
	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// Direction tags a call relative to the number the history was asked for.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// DirectedCall is one history entry with its direction tag.
type DirectedCall struct {
	Call      *domain.Call
	Direction Direction
}

// HistoryForCommand returns the chronological call history of one number.
type HistoryForCommand struct {
	dir    ports.Directory
	Number string
	From   *time.Time
	To     *time.Time
}

// NewHistoryForCommand creates a new HistoryForCommand
func NewHistoryForCommand(dir ports.Directory, number string, from, to *time.Time) *HistoryForCommand {
	return &HistoryForCommand{
		dir:    dir,
		Number: number,
		From:   from,
		To:     to,
	}
}

// Execute returns the number's calls in the window, tagged IN or OUT
func (c *HistoryForCommand) Execute(ctx context.Context) ([]DirectedCall, error) {
	number, err := domain.NormalizePhone(c.Number)
	if err != nil {
		return nil, &application.InvalidNumberError{Input: c.Number, Reason: err}
	}

	calls := c.dir.QueryRange(number, c.From, c.To)
	out := make([]DirectedCall, 0, len(calls))
	for _, call := range calls {
		direction := DirectionIn
		if call.Caller == number {
			direction = DirectionOut
		}
		out = append(out, DirectedCall{Call: call, Direction: direction})
	}
	return out, nil
}

// HistoryBetweenCommand returns every call between two numbers, in either
// direction, in chronological order.
type HistoryBetweenCommand struct {
	dir  ports.Directory
	A    string
	B    string
	From *time.Time
	To   *time.Time
}

// NewHistoryBetweenCommand creates a new HistoryBetweenCommand
func NewHistoryBetweenCommand(dir ports.Directory, a, b string, from, to *time.Time) *HistoryBetweenCommand {
	return &HistoryBetweenCommand{
		dir:  dir,
		A:    a,
		B:    b,
		From: from,
		To:   to,
	}
}

// Execute runs the pairwise history query
func (c *HistoryBetweenCommand) Execute(ctx context.Context) ([]*domain.Call, error) {
	a, err := domain.NormalizePhone(c.A)
	if err != nil {
		return nil, &application.InvalidNumberError{Input: c.A, Reason: err}
	}
	b, err := domain.NormalizePhone(c.B)
	if err != nil {
		return nil, &application.InvalidNumberError{Input: c.B, Reason: err}
	}
	return c.dir.QueryBetween(a, b, c.From, c.To), nil
}
