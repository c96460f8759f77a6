package commands

import (
	"context"
	"math/rand"
	"time"

	"phonecentral/internal/application"
	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// Traffic shape of the overload simulation: random pairs, call durations
// between 10s and 5min, one call every 60ms of simulated time.
const (
	overloadMinDuration = 10
	overloadMaxDuration = 300
	overloadSpacing     = 60 * time.Millisecond
)

// OverloadResult summarizes an overload simulation run.
type OverloadResult struct {
	Generated int
	Recorded  int
	Blocked   int
}

// OverloadCommand generates bulk random traffic between known contacts to
// load-test the exchange.
type OverloadCommand struct {
	dir ports.Directory
	log ports.CallLog // optional
	rng *rand.Rand

	NumCalls int
	Start    time.Time
}

// NewOverloadCommand creates a new OverloadCommand. A zero start time
// means "now"; seed fixes the traffic pattern for reproducible runs.
func NewOverloadCommand(dir ports.Directory, log ports.CallLog, numCalls int, start time.Time, seed int64) *OverloadCommand {
	return &OverloadCommand{
		dir:      dir,
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
		NumCalls: numCalls,
		Start:    start,
	}
}

// Execute generates and records the traffic
func (c *OverloadCommand) Execute(ctx context.Context) (*OverloadResult, error) {
	numbers := c.dir.Numbers()
	if len(numbers) < 2 {
		return nil, application.ErrNoContacts
	}

	start := c.Start
	if start.IsZero() {
		start = time.Now()
	}

	result := &OverloadResult{}
	for i := 0; i < c.NumCalls; i++ {
		result.Generated++

		caller := numbers[c.rng.Intn(len(numbers))]
		callee := numbers[c.rng.Intn(len(numbers))]
		for callee == caller {
			callee = numbers[c.rng.Intn(len(numbers))]
		}

		if c.dir.IsBlocked(caller) || c.dir.IsBlocked(callee) {
			result.Blocked++
			continue
		}

		duration := overloadMinDuration + c.rng.Intn(overloadMaxDuration-overloadMinDuration+1)
		call := domain.NewCall(caller, callee, start.Add(time.Duration(i)*overloadSpacing), duration)

		c.dir.RecordCall(call)
		if c.log != nil {
			_ = c.log.AppendCall(call)
		}
		result.Recorded++
	}
	return result, nil
}
