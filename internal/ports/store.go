package ports

import "phonecentral/internal/domain"

// Snapshot is the full persisted state of an exchange: the raw events the
// derived structures (ledger views, tries, graph) are rebuilt from.
type Snapshot struct {
	Contacts []*domain.Contact
	Calls    []*domain.Call
	Blocked  []string
}

// SnapshotStore persists snapshots so a restart can reconstruct identical
// structures by replaying the recorded events.
type SnapshotStore interface {
	Open(path string) error
	Close() error

	// HasSnapshot reports whether a previously saved snapshot exists.
	HasSnapshot() bool

	// Save replaces any existing snapshot atomically.
	Save(snap *Snapshot) error

	// Load reads the stored snapshot, calls in chronological order.
	Load() (*Snapshot, error)
}

// CallLog appends completed calls to a durable event log as they happen,
// independent of full snapshots.
type CallLog interface {
	AppendCall(call *domain.Call) error
}
