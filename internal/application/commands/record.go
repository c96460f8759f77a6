package commands

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"phonecentral/internal/application"
	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// RecordCallCommand records one completed call: blocked check, ledger
// insert plus graph update, and an append to the durable call log.
type RecordCallCommand struct {
	dir ports.Directory
	log ports.CallLog // optional

	Caller   string
	Callee   string
	Start    time.Time
	Duration int
}

// NewRecordCallCommand creates a new RecordCallCommand
func NewRecordCallCommand(dir ports.Directory, log ports.CallLog, caller, callee string, start time.Time, duration int) *RecordCallCommand {
	return &RecordCallCommand{
		dir:      dir,
		log:      log,
		Caller:   caller,
		Callee:   callee,
		Start:    start,
		Duration: duration,
	}
}

// Execute validates the participants and records the call
func (c *RecordCallCommand) Execute(ctx context.Context) (*domain.Call, error) {
	caller, err := domain.NormalizePhone(c.Caller)
	if err != nil {
		return nil, &application.InvalidNumberError{Input: c.Caller, Reason: err}
	}
	callee, err := domain.NormalizePhone(c.Callee)
	if err != nil {
		return nil, &application.InvalidNumberError{Input: c.Callee, Reason: err}
	}

	if c.dir.IsBlocked(caller) || c.dir.IsBlocked(callee) {
		return nil, &application.BlockedCallError{Caller: caller, Callee: callee}
	}

	call := domain.NewCall(caller, callee, c.Start, c.Duration)
	c.dir.RecordCall(call)

	if c.log != nil {
		if err := c.log.AppendCall(call); err != nil {
			// The call is already recorded in memory; losing the log line
			// is recoverable via a snapshot save.
			logrus.WithError(err).Warn("failed to append call to log")
		}
	}
	return call, nil
}
