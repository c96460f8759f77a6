package commands

import (
	"context"

	"github.com/sirupsen/logrus"

	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// ReplayResult summarizes a batch replay.
type ReplayResult struct {
	Processed int
	Blocked   int
	Total     int
}

// ReplayCommand feeds a batch of already-parsed calls into the exchange,
// skipping calls that touch a blocked number. Used for call simulation
// files and event-log replays.
type ReplayCommand struct {
	dir   ports.Directory
	log   ports.CallLog // optional
	Calls []*domain.Call
}

// NewReplayCommand creates a new ReplayCommand
func NewReplayCommand(dir ports.Directory, log ports.CallLog, calls []*domain.Call) *ReplayCommand {
	return &ReplayCommand{dir: dir, log: log, Calls: calls}
}

// Execute records each non-blocked call and returns the summary
func (c *ReplayCommand) Execute(ctx context.Context) (*ReplayResult, error) {
	result := &ReplayResult{Total: len(c.Calls)}
	for _, call := range c.Calls {
		if c.dir.IsBlocked(call.Caller) || c.dir.IsBlocked(call.Callee) {
			logrus.WithFields(logrus.Fields{
				"caller": call.Caller,
				"callee": call.Callee,
			}).Info("skipping blocked call")
			result.Blocked++
			continue
		}
		c.dir.RecordCall(call)
		if c.log != nil {
			if err := c.log.AppendCall(call); err != nil {
				logrus.WithError(err).Warn("failed to append call to log")
			}
		}
		result.Processed++
	}
	return result, nil
}
