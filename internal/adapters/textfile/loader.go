package textfile

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// Loader reads the phonebook, call-history and blocked-numbers text files.
// Invalid lines are logged and skipped so one bad record never aborts a
// load; only unreadable files are errors.
type Loader struct {
	phonesPath  string
	callsPath   string
	blockedPath string
}

// Ensure Loader implements DataLoader
var _ ports.DataLoader = (*Loader)(nil)

// NewLoader creates a loader for the three data files.
func NewLoader(phonesPath, callsPath, blockedPath string) *Loader {
	return &Loader{
		phonesPath:  phonesPath,
		callsPath:   callsPath,
		blockedPath: blockedPath,
	}
}

// Load parses all three files into a snapshot, calls sorted by start time.
func (l *Loader) Load() (*ports.Snapshot, *ports.LoadStats, error) {
	snap := &ports.Snapshot{}
	stats := &ports.LoadStats{}

	seen := make(map[string]struct{})
	err := eachLine(l.phonesPath, func(lineNum int, line string) {
		contact, err := ParsePhoneLine(line)
		if err != nil {
			logrus.WithField("line", lineNum).Warnf("skipping invalid phones line: %v", err)
			stats.SkippedLines++
			return
		}
		if contact == nil {
			return
		}
		if _, dup := seen[contact.Phone]; dup {
			logrus.WithField("line", lineNum).Warnf("duplicate phone number %q, keeping first occurrence", contact.Phone)
			stats.SkippedLines++
			return
		}
		seen[contact.Phone] = struct{}{}
		snap.Contacts = append(snap.Contacts, contact)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("loading phonebook: %w", err)
	}
	stats.Contacts = len(snap.Contacts)

	calls, skipped, err := ReadCallFile(l.callsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading call history: %w", err)
	}
	snap.Calls = calls
	stats.Calls = len(calls)
	stats.SkippedLines += skipped

	err = eachLine(l.blockedPath, func(lineNum int, line string) {
		number, err := ParseBlockedLine(line)
		if err != nil {
			logrus.WithField("line", lineNum).Warnf("skipping invalid blocked line: %v", err)
			stats.SkippedLines++
			return
		}
		if number != "" {
			snap.Blocked = append(snap.Blocked, number)
		}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("loading blocked numbers: %w", err)
	}
	stats.Blocked = len(snap.Blocked)

	sort.SliceStable(snap.Calls, func(i, j int) bool {
		return snap.Calls[i].Start.Before(snap.Calls[j].Start)
	})
	return snap, stats, nil
}

// ReadCallFile parses a call file (history or simulation batch) and
// returns the calls in file order plus the number of skipped lines.
func ReadCallFile(path string) ([]*domain.Call, int, error) {
	var calls []*domain.Call
	skipped := 0
	err := eachLine(path, func(lineNum int, line string) {
		call, err := ParseCallLine(line)
		if err != nil {
			logrus.WithField("line", lineNum).Warnf("skipping invalid call line: %v", err)
			skipped++
			return
		}
		if call != nil {
			calls = append(calls, call)
		}
	})
	if err != nil {
		return nil, 0, err
	}
	return calls, skipped, nil
}

func eachLine(path string, fn func(lineNum int, line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fn(lineNum, scanner.Text())
	}
	return scanner.Err()
}
