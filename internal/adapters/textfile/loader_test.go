package textfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"phonecentral/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	phones := writeFile(t, dir, "phones.txt", `# phonebook
Mario Rossi, 3331234567
Anna Verdi, 3207654321

not a valid line
Mario Doppione, 333 123 4567
`)
	calls := writeFile(t, dir, "calls.txt", `3331234567, 3207654321, 15.03.2024 10:30:00, 00:01:35
3207654321, 3331234567, 15.03.2024 09:00:00, 00:00:20
garbage line
`)
	blocked := writeFile(t, dir, "blocked.txt", `6660000
# comment
`)

	snap, stats, err := NewLoader(phones, calls, blocked).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if stats.Contacts != 2 || len(snap.Contacts) != 2 {
		t.Errorf("loaded %d contacts, expected 2 (duplicate dropped)", len(snap.Contacts))
	}
	if snap.Contacts[0].FirstName != "Mario" {
		t.Errorf("first contact = %s, expected the first occurrence to win", snap.Contacts[0].FirstName)
	}

	if stats.Calls != 2 || len(snap.Calls) != 2 {
		t.Fatalf("loaded %d calls, expected 2", len(snap.Calls))
	}
	// Calls come back sorted by start time regardless of file order.
	if !snap.Calls[0].Start.Before(snap.Calls[1].Start) {
		t.Error("calls not sorted by start time")
	}

	if stats.Blocked != 1 || len(snap.Blocked) != 1 || snap.Blocked[0] != "6660000" {
		t.Errorf("blocked = %v, expected [6660000]", snap.Blocked)
	}

	// invalid phone line + duplicate + garbage call line
	if stats.SkippedLines != 3 {
		t.Errorf("SkippedLines = %d, expected 3", stats.SkippedLines)
	}
}

func TestLoaderMissingFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	phones := writeFile(t, dir, "phones.txt", "Mario Rossi, 333\n")
	calls := writeFile(t, dir, "calls.txt", "")

	_, _, err := NewLoader(phones, calls, filepath.Join(dir, "missing.txt")).Load()
	if err == nil {
		t.Error("expected an error for an unreadable file")
	}
}

func TestCallWriterAppend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calls.txt")
	w := NewCallWriter(path)

	first := domain.NewCall("111", "222", time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local), 30)
	second := domain.NewCall("222", "111", time.Date(2024, 3, 15, 11, 0, 0, 0, time.Local), 60)
	if err := w.AppendCall(first); err != nil {
		t.Fatalf("AppendCall: %v", err)
	}
	if err := w.AppendCall(second); err != nil {
		t.Fatalf("AppendCall: %v", err)
	}

	calls, skipped, err := ReadCallFile(path)
	if err != nil {
		t.Fatalf("ReadCallFile: %v", err)
	}
	if skipped != 0 || len(calls) != 2 {
		t.Fatalf("read back %d calls (%d skipped), expected 2", len(calls), skipped)
	}
	if calls[0].Caller != "111" || calls[1].Caller != "222" {
		t.Errorf("appended calls out of order: %s, %s", calls[0].Caller, calls[1].Caller)
	}
}
