package textfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"phonecentral/internal/domain"
)

// TimestampLayout is the call timestamp format used in the data files.
const TimestampLayout = "02.01.2006 15:04:05"

// ParsePhoneLine parses one phonebook line of the form
// "First Last, phone". Blank lines and #-comments yield (nil, nil).
func ParsePhoneLine(line string) (*domain.Contact, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	namePart, phonePart, ok := strings.Cut(line, ",")
	if !ok {
		return nil, fmt.Errorf("invalid phone line (expected \"Name Surname, phone\"): %q", line)
	}

	nameParts := strings.Fields(namePart)
	if len(nameParts) < 2 {
		return nil, fmt.Errorf("invalid name in phone line: %q", strings.TrimSpace(namePart))
	}

	phone, err := domain.NormalizePhone(strings.TrimSpace(phonePart))
	if err != nil {
		return nil, err
	}

	return &domain.Contact{
		Phone:     phone,
		FirstName: nameParts[0],
		LastName:  nameParts[1],
	}, nil
}

// ParseCallLine parses one call line of the form
// "caller, callee, DD.MM.YYYY HH:MM:SS, HH:MM:SS".
// Blank lines and #-comments yield (nil, nil).
func ParseCallLine(line string) (*domain.Call, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid call line format (expected 4 comma-separated fields): %q", line)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	caller, err := domain.NormalizePhone(parts[0])
	if err != nil {
		return nil, fmt.Errorf("caller normalization failed: %w", err)
	}
	callee, err := domain.NormalizePhone(parts[1])
	if err != nil {
		return nil, fmt.Errorf("callee normalization failed: %w", err)
	}

	start, err := time.ParseInLocation(TimestampLayout, parts[2], time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q; expected DD.MM.YYYY HH:MM:SS", parts[2])
	}

	duration, err := parseDuration(parts[3])
	if err != nil {
		return nil, err
	}

	return domain.NewCall(caller, callee, start, duration), nil
}

// ParseBlockedLine parses one blocked-numbers line. Blank lines and
// #-comments yield ("", nil).
func ParseBlockedLine(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}
	return domain.NormalizePhone(line)
}

// parseDuration parses an HH:MM:SS duration into seconds.
func parseDuration(raw string) (int, error) {
	fields := strings.Split(raw, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("invalid duration %q; expected HH:MM:SS", raw)
	}
	var parts [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q; expected HH:MM:SS with numeric fields", raw)
		}
		parts[i] = n
	}
	seconds := parts[0]*3600 + parts[1]*60 + parts[2]
	if seconds < 0 {
		return 0, fmt.Errorf("duration cannot be negative: %d", seconds)
	}
	return seconds, nil
}

// FormatCallLine renders a call in the calls.txt format, without newline.
func FormatCallLine(call *domain.Call) string {
	return fmt.Sprintf("%s, %s, %s, %02d:%02d:%02d",
		call.Caller,
		call.Callee,
		call.Start.Format(TimestampLayout),
		call.Duration/3600,
		(call.Duration%3600)/60,
		call.Duration%60,
	)
}
