package commands

import (
	"context"
	"testing"

	"phonecentral/internal/domain"
)

func TestReplay(t *testing.T) {
	dir := domain.NewCentral()
	dir.Block("666")
	log := &memCallLog{}

	calls := []*domain.Call{
		domain.NewCall("111", "222", at(10, 0, 0), 30),
		domain.NewCall("666", "222", at(10, 1, 0), 30), // blocked caller
		domain.NewCall("222", "111", at(10, 2, 0), 60),
		domain.NewCall("111", "666", at(10, 3, 0), 60), // blocked callee
	}

	result, err := NewReplayCommand(dir, log, calls).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if result.Total != 4 || result.Processed != 2 || result.Blocked != 2 {
		t.Errorf("result = %+v, expected total 4, processed 2, blocked 2", result)
	}
	if len(dir.Calls()) != 2 {
		t.Errorf("ledger has %d calls, expected 2", len(dir.Calls()))
	}
	if len(log.calls) != 2 {
		t.Errorf("log has %d calls, expected 2", len(log.calls))
	}
	if _, ok := dir.Stats("666"); ok {
		t.Error("blocked number leaked into the graph")
	}
}

func TestReplayEmptyBatch(t *testing.T) {
	dir := domain.NewCentral()
	result, err := NewReplayCommand(dir, nil, nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Total != 0 || result.Processed != 0 {
		t.Errorf("result = %+v, expected all zero", result)
	}
}
