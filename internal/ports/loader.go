package ports

// LoadStats summarizes a data-directory load.
type LoadStats struct {
	Contacts     int
	Calls        int
	Blocked      int
	SkippedLines int
}

// DataLoader reads the source text files (phonebook, call history, blocked
// numbers) and produces a snapshot the core can be built from. Parsing and
// validation live entirely behind this port; the core only ever sees
// normalized values.
type DataLoader interface {
	Load() (*Snapshot, *LoadStats, error)
}
