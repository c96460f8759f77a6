package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"phonecentral/internal/application"
	"phonecentral/internal/domain"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2024, 3, 15, hour, min, sec, 0, time.UTC)
}

// memCallLog collects appended calls in memory, optionally failing.
type memCallLog struct {
	calls []*domain.Call
	fail  bool
}

func (l *memCallLog) AppendCall(call *domain.Call) error {
	if l.fail {
		return fmt.Errorf("append failed")
	}
	l.calls = append(l.calls, call)
	return nil
}

func TestRecordCall(t *testing.T) {
	dir := domain.NewCentral()
	log := &memCallLog{}

	cmd := NewRecordCallCommand(dir, log, "333 123 4567", "+39 320 7654321", at(10, 0, 0), 95)
	call, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if call.Caller != "3331234567" || call.Callee != "393207654321" {
		t.Errorf("participants not normalized: %s → %s", call.Caller, call.Callee)
	}
	if len(dir.Calls()) != 1 {
		t.Error("call not recorded in the exchange")
	}
	if len(log.calls) != 1 {
		t.Error("call not appended to the log")
	}
	if stats, _ := dir.Stats("393207654321"); stats.IncomingCount != 1 {
		t.Error("graph not updated")
	}
}

func TestRecordCallInvalidNumber(t *testing.T) {
	dir := domain.NewCentral()

	_, err := NewRecordCallCommand(dir, nil, "abc", "333", at(10, 0, 0), 10).Execute(context.Background())
	if !errors.Is(err, application.ErrInvalidNumber) {
		t.Errorf("expected ErrInvalidNumber, got %v", err)
	}
	if len(dir.Calls()) != 0 {
		t.Error("invalid call reached the ledger")
	}
}

func TestRecordCallBlocked(t *testing.T) {
	dir := domain.NewCentral()
	dir.Block("999")

	tests := []struct {
		name           string
		caller, callee string
	}{
		{"blocked caller", "999", "333"},
		{"blocked callee", "333", "999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecordCallCommand(dir, nil, tt.caller, tt.callee, at(10, 0, 0), 10).Execute(context.Background())
			if !errors.Is(err, application.ErrBlocked) {
				t.Errorf("expected ErrBlocked, got %v", err)
			}
		})
	}
	if len(dir.Calls()) != 0 {
		t.Error("blocked call reached the ledger")
	}
}

func TestRecordCallLogFailureIsNotFatal(t *testing.T) {
	dir := domain.NewCentral()
	log := &memCallLog{fail: true}

	_, err := NewRecordCallCommand(dir, log, "111", "222", at(10, 0, 0), 10).Execute(context.Background())
	if err != nil {
		t.Fatalf("log failure should not fail the command: %v", err)
	}
	if len(dir.Calls()) != 1 {
		t.Error("call not recorded despite log failure")
	}
}
