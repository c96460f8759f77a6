package textfile

import (
	"fmt"
	"os"

	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

// CallWriter appends completed calls to the call-history file so a plain
// text-file reload sees them again.
type CallWriter struct {
	path string
}

// Ensure CallWriter implements CallLog
var _ ports.CallLog = (*CallWriter)(nil)

// NewCallWriter creates a writer appending to path.
func NewCallWriter(path string) *CallWriter {
	return &CallWriter{path: path}
}

// AppendCall appends one call line to the file, creating it if needed.
func (w *CallWriter) AppendCall(call *domain.Call) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening call log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, FormatCallLine(call)); err != nil {
		return fmt.Errorf("appending call: %w", err)
	}
	return nil
}
