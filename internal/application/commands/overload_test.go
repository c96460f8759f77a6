package commands

import (
	"context"
	"errors"
	"testing"

	"phonecentral/internal/application"
	"phonecentral/internal/domain"
)

func TestOverloadGeneratesTraffic(t *testing.T) {
	dir := domain.NewCentral()
	dir.AddContact(&domain.Contact{Phone: "111", FirstName: "Anna"})
	dir.AddContact(&domain.Contact{Phone: "222", FirstName: "Bruno"})
	dir.AddContact(&domain.Contact{Phone: "333", FirstName: "Carla"})

	result, err := NewOverloadCommand(dir, nil, 50, at(10, 0, 0), 1).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if result.Generated != 50 || result.Recorded != 50 || result.Blocked != 0 {
		t.Errorf("result = %+v, expected 50 generated and recorded", result)
	}
	if len(dir.Calls()) != 50 {
		t.Errorf("ledger has %d calls, expected 50", len(dir.Calls()))
	}
	for _, c := range dir.Calls() {
		if c.Caller == c.Callee {
			t.Errorf("generated a self-call %s→%s", c.Caller, c.Callee)
		}
		if c.Duration < 10 || c.Duration > 300 {
			t.Errorf("duration %d outside [10, 300]", c.Duration)
		}
	}
}

func TestOverloadDeterministicWithSeed(t *testing.T) {
	run := func() []*domain.Call {
		dir := domain.NewCentral()
		dir.AddContact(&domain.Contact{Phone: "111"})
		dir.AddContact(&domain.Contact{Phone: "222"})
		dir.AddContact(&domain.Contact{Phone: "333"})
		if _, err := NewOverloadCommand(dir, nil, 20, at(10, 0, 0), 42).Execute(context.Background()); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		return dir.Calls()
	}

	a, b := run(), run()
	for i := range a {
		if a[i].Caller != b[i].Caller || a[i].Callee != b[i].Callee || a[i].Duration != b[i].Duration {
			t.Fatalf("runs with the same seed diverged at call %d", i)
		}
	}
}

func TestOverloadSkipsBlockedPairs(t *testing.T) {
	dir := domain.NewCentral()
	dir.AddContact(&domain.Contact{Phone: "111"})
	dir.AddContact(&domain.Contact{Phone: "222"})
	dir.Block("222")

	// Every pair touches 222, so everything is blocked.
	result, err := NewOverloadCommand(dir, nil, 10, at(10, 0, 0), 1).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Recorded != 0 || result.Blocked != 10 {
		t.Errorf("result = %+v, expected all 10 blocked", result)
	}
}

func TestOverloadNeedsTwoContacts(t *testing.T) {
	dir := domain.NewCentral()
	dir.AddContact(&domain.Contact{Phone: "111"})

	_, err := NewOverloadCommand(dir, nil, 10, at(10, 0, 0), 1).Execute(context.Background())
	if !errors.Is(err, application.ErrNoContacts) {
		t.Errorf("expected ErrNoContacts, got %v", err)
	}
}
