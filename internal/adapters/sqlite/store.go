package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"phonecentral/internal/domain"
	"phonecentral/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.SnapshotStore on SQLite. The snapshot keeps the
// raw events — contacts, calls, blocked numbers — and loads reproduce the
// derived structures by replay, so a save/load round-trip yields an
// exchange identical to the one that was saved.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements SnapshotStore
var _ ports.SnapshotStore = (*Store)(nil)

// NewStore creates a new SQLite snapshot store
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store at the given database path
func (s *Store) Open(path string) error {
	s.dbPath = path

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS contacts (
			phone TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS calls (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			caller TEXT NOT NULL,
			callee TEXT NOT NULL,
			start INTEGER NOT NULL,
			duration INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS blocked (
			phone TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_calls_start ON calls(start, id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	_, err = db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HasSnapshot reports whether a previously saved snapshot exists
func (s *Store) HasSnapshot() bool {
	var saved string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'saved_at'`).Scan(&saved)
	return err == nil && saved != ""
}

// Save replaces the stored snapshot in a single transaction
func (s *Store) Save(snap *ports.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"contacts", "calls", "blocked"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, contact := range snap.Contacts {
		_, err := tx.Exec(`
			INSERT INTO contacts (phone, first_name, last_name, position)
			VALUES (?, ?, ?, ?)
		`, contact.Phone, contact.FirstName, contact.LastName, i)
		if err != nil {
			return fmt.Errorf("saving contact %s: %w", contact.Phone, err)
		}
	}

	for _, call := range snap.Calls {
		_, err := tx.Exec(`
			INSERT INTO calls (caller, callee, start, duration)
			VALUES (?, ?, ?, ?)
		`, call.Caller, call.Callee, call.Start.Unix(), call.Duration)
		if err != nil {
			return fmt.Errorf("saving call %s → %s: %w", call.Caller, call.Callee, err)
		}
	}

	for _, number := range snap.Blocked {
		if _, err := tx.Exec(`INSERT INTO blocked (phone) VALUES (?)`, number); err != nil {
			return fmt.Errorf("saving blocked number %s: %w", number, err)
		}
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('saved_at', ?)`,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("updating metadata: %w", err)
	}

	return tx.Commit()
}

// Load reads the stored snapshot, calls in chronological order. Ties on
// start time come back in insertion order via the rowid, so a replay
// reproduces the original ledger exactly.
func (s *Store) Load() (*ports.Snapshot, error) {
	snap := &ports.Snapshot{}

	rows, err := s.db.Query(`SELECT phone, first_name, last_name FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("loading contacts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		contact := &domain.Contact{}
		if err := rows.Scan(&contact.Phone, &contact.FirstName, &contact.LastName); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		snap.Contacts = append(snap.Contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	callRows, err := s.db.Query(`SELECT caller, callee, start, duration FROM calls ORDER BY start, id`)
	if err != nil {
		return nil, fmt.Errorf("loading calls: %w", err)
	}
	defer callRows.Close()
	for callRows.Next() {
		var caller, callee string
		var start int64
		var duration int
		if err := callRows.Scan(&caller, &callee, &start, &duration); err != nil {
			return nil, fmt.Errorf("scanning call: %w", err)
		}
		snap.Calls = append(snap.Calls, domain.NewCall(caller, callee, time.Unix(start, 0).Local(), duration))
	}
	if err := callRows.Err(); err != nil {
		return nil, err
	}

	blockedRows, err := s.db.Query(`SELECT phone FROM blocked ORDER BY phone`)
	if err != nil {
		return nil, fmt.Errorf("loading blocked numbers: %w", err)
	}
	defer blockedRows.Close()
	for blockedRows.Next() {
		var number string
		if err := blockedRows.Scan(&number); err != nil {
			return nil, fmt.Errorf("scanning blocked number: %w", err)
		}
		snap.Blocked = append(snap.Blocked, number)
	}
	if err := blockedRows.Err(); err != nil {
		return nil, err
	}

	return snap, nil
}
