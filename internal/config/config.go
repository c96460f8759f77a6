package config

import (
	"os"
	"path/filepath"
)

const DefaultDataDir = "data"

// DataDir returns the data directory from the PHONECENTRAL_DATA env var,
// falling back to DefaultDataDir.
func DataDir() string {
	if env := os.Getenv("PHONECENTRAL_DATA"); env != "" {
		return env
	}
	return DefaultDataDir
}

// PhonesPath returns the phonebook file path inside dataDir.
func PhonesPath(dataDir string) string {
	return filepath.Join(dataDir, "phones.txt")
}

// CallsPath returns the call-history file path inside dataDir.
func CallsPath(dataDir string) string {
	return filepath.Join(dataDir, "calls.txt")
}

// BlockedPath returns the blocked-numbers file path inside dataDir.
func BlockedPath(dataDir string) string {
	return filepath.Join(dataDir, "blocked.txt")
}

// SimulationPath returns the call-simulation file path inside dataDir.
func SimulationPath(dataDir string) string {
	return filepath.Join(dataDir, "call_simulation.txt")
}

// SnapshotPath returns the sqlite snapshot path inside dataDir.
func SnapshotPath(dataDir string) string {
	return filepath.Join(dataDir, "phonecentral.db")
}
