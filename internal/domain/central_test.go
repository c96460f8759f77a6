package domain

import (
	"sync"
	"testing"
)

func TestCentralRecordCallUpdatesLedgerAndGraph(t *testing.T) {
	c := NewCentral()
	c.RecordCall(NewCall("111", "222", at(10, 0, 0), 60))

	if len(c.Calls()) != 1 {
		t.Error("call missing from ledger")
	}
	stats, ok := c.Stats("222")
	if !ok || stats.IncomingCount != 1 {
		t.Error("call missing from graph")
	}
}

func TestCentralAddContactIndexesAllFields(t *testing.T) {
	c := NewCentral()
	contact := &Contact{Phone: "5551234", FirstName: "Anna", LastName: "Rossi"}
	if !c.AddContact(contact) {
		t.Fatal("AddContact returned false")
	}
	if c.AddContact(&Contact{Phone: "5551234", FirstName: "Other"}) {
		t.Error("duplicate number accepted")
	}

	if got := c.SearchByName(FieldFirstName, "an", false); len(got) != 1 {
		t.Errorf("first-name search found %d contacts, expected 1", len(got))
	}
	if got := c.SearchByName(FieldLastName, "ros", false); len(got) != 1 {
		t.Errorf("last-name search found %d contacts, expected 1", len(got))
	}
	if got := c.SearchByPhone("555"); len(got) != 1 {
		t.Errorf("phone search found %d contacts, expected 1", len(got))
	}
}

func TestBuildCentralEqualsLiveRecording(t *testing.T) {
	contacts := []*Contact{
		{Phone: "111", FirstName: "Anna"},
		{Phone: "222", FirstName: "Bruno"},
	}
	// Deliberately out of chronological order.
	calls := []*Call{
		NewCall("111", "222", at(11, 0, 0), 30),
		NewCall("222", "111", at(9, 0, 0), 60),
		NewCall("111", "222", at(10, 0, 0), 10),
	}

	built := BuildCentral(contacts, calls, nil)

	live := NewCentral()
	for _, ct := range contacts {
		live.AddContact(ct)
	}
	live.RecordCall(calls[1])
	live.RecordCall(calls[2])
	live.RecordCall(calls[0])

	a, b := built.Calls(), live.Calls()
	if len(a) != len(b) {
		t.Fatalf("ledger lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("ledger entry %d differs", i)
		}
	}

	for _, number := range []string{"111", "222"} {
		sa, _ := built.Stats(number)
		sb, _ := live.Stats(number)
		if sa.IncomingCount != sb.IncomingCount || sa.OutgoingCount != sb.OutgoingCount {
			t.Errorf("graph stats for %s differ", number)
		}
	}
}

func TestCentralBlocking(t *testing.T) {
	c := NewCentral()
	c.Block("999")
	c.Block("111")

	if !c.IsBlocked("999") {
		t.Error("999 should be blocked")
	}
	if c.IsBlocked("222") {
		t.Error("222 should not be blocked")
	}

	blocked := c.Blocked()
	if len(blocked) != 2 || blocked[0] != "111" || blocked[1] != "999" {
		t.Errorf("Blocked() = %v, expected [111 999]", blocked)
	}

	c.Unblock("999")
	if c.IsBlocked("999") {
		t.Error("999 still blocked after Unblock")
	}
}

func TestCentralRebuildGraphExcluding(t *testing.T) {
	c := NewCentral()
	c.RecordCall(NewCall("111", "222", at(10, 0, 0), 60))
	c.RecordCall(NewCall("333", "222", at(11, 0, 0), 30))

	c.RebuildGraph(map[string]struct{}{"111": {}})

	if _, ok := c.Stats("111"); ok {
		t.Error("excluded number still in graph")
	}
	stats, _ := c.Stats("222")
	if stats.IncomingCount != 1 {
		t.Errorf("222 IncomingCount = %d, expected 1 after excluding 111", stats.IncomingCount)
	}
	// The ledger keeps everything.
	if len(c.Calls()) != 2 {
		t.Error("rebuild must not touch the ledger")
	}
}

func TestCentralConcurrentReadsAndWrites(t *testing.T) {
	c := NewCentral()
	c.AddContact(&Contact{Phone: "111", FirstName: "Anna", LastName: "Rossi"})
	c.AddContact(&Contact{Phone: "222", FirstName: "Bruno", LastName: "Verdi"})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.RecordCall(NewCall("111", "222", at(10, i, j), 5))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.SearchByName(FieldFirstName, "an", false)
				c.TopIncoming(3)
				c.CallsFor("222")
			}
		}()
	}
	wg.Wait()

	if got := len(c.Calls()); got != 200 {
		t.Errorf("ledger has %d calls, expected 200", got)
	}
	stats, _ := c.Stats("222")
	if stats.IncomingCount != 200 {
		t.Errorf("graph counted %d incoming calls, expected 200", stats.IncomingCount)
	}
}
