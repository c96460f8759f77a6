package textfile

import (
	"testing"
	"time"

	"phonecentral/internal/domain"
)

func TestParsePhoneLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		contact *domain.Contact
		wantErr bool
	}{
		{"plain", "Mario Rossi, 3331234567", &domain.Contact{Phone: "3331234567", FirstName: "Mario", LastName: "Rossi"}, false},
		{"formatted phone", "Anna Verdi, +39 320 765-4321", &domain.Contact{Phone: "393207654321", FirstName: "Anna", LastName: "Verdi"}, false},
		{"padded", "  Luca Bianchi ,  555  ", &domain.Contact{Phone: "555", FirstName: "Luca", LastName: "Bianchi"}, false},

		{"blank", "", nil, false},
		{"whitespace only", "   ", nil, false},
		{"comment", "# a comment", nil, false},

		{"missing comma", "Mario Rossi 333", nil, true},
		{"single name", "Mario, 333", nil, true},
		{"bad phone", "Mario Rossi, abc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhoneLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePhoneLine(%q) = %+v, expected error", tt.line, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePhoneLine(%q) returned error: %v", tt.line, err)
			}
			if tt.contact == nil {
				if got != nil {
					t.Errorf("ParsePhoneLine(%q) = %+v, expected nil", tt.line, got)
				}
				return
			}
			if got == nil || *got != *tt.contact {
				t.Errorf("ParsePhoneLine(%q) = %+v, expected %+v", tt.line, got, tt.contact)
			}
		})
	}
}

func TestParseCallLine(t *testing.T) {
	line := "3331234567, 3207654321, 15.03.2024 10:30:00, 00:01:35"
	call, err := ParseCallLine(line)
	if err != nil {
		t.Fatalf("ParseCallLine returned error: %v", err)
	}

	if call.Caller != "3331234567" || call.Callee != "3207654321" {
		t.Errorf("participants = %s, %s", call.Caller, call.Callee)
	}
	expected := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	if !call.Start.Equal(expected) {
		t.Errorf("start = %v, expected %v", call.Start, expected)
	}
	if call.Duration != 95 {
		t.Errorf("duration = %d, expected 95 seconds", call.Duration)
	}
}

func TestParseCallLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "333, 320, 15.03.2024 10:30:00"},
		{"bad caller", "abc, 320, 15.03.2024 10:30:00, 00:01:00"},
		{"bad callee", "333, abc, 15.03.2024 10:30:00, 00:01:00"},
		{"bad timestamp", "333, 320, 2024-03-15 10:30, 00:01:00"},
		{"bad duration", "333, 320, 15.03.2024 10:30:00, 95"},
		{"non-numeric duration", "333, 320, 15.03.2024 10:30:00, 00:xx:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if call, err := ParseCallLine(tt.line); err == nil {
				t.Errorf("ParseCallLine(%q) = %+v, expected error", tt.line, call)
			}
		})
	}
}

func TestParseCallLineSkipsCommentsAndBlanks(t *testing.T) {
	for _, line := range []string{"", "   ", "# header"} {
		call, err := ParseCallLine(line)
		if call != nil || err != nil {
			t.Errorf("ParseCallLine(%q) = %+v, %v; expected nil, nil", line, call, err)
		}
	}
}

func TestParseBlockedLine(t *testing.T) {
	number, err := ParseBlockedLine(" +39 666 000 ")
	if err != nil {
		t.Fatalf("ParseBlockedLine returned error: %v", err)
	}
	if number != "39666000" {
		t.Errorf("number = %s, expected 39666000", number)
	}

	if number, err := ParseBlockedLine("# note"); number != "" || err != nil {
		t.Errorf("comment line = %q, %v; expected empty, nil", number, err)
	}
	if _, err := ParseBlockedLine("not-a-number!"); err == nil {
		t.Error("expected error for a non-numeric line")
	}
}

func TestFormatCallLineRoundTrip(t *testing.T) {
	call := domain.NewCall("3331234567", "3207654321",
		time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local), 3725) // 1h 2m 5s

	line := FormatCallLine(call)
	if line != "3331234567, 3207654321, 15.03.2024 10:30:00, 01:02:05" {
		t.Errorf("FormatCallLine = %q", line)
	}

	parsed, err := ParseCallLine(line)
	if err != nil {
		t.Fatalf("re-parsing formatted line failed: %v", err)
	}
	if parsed.Caller != call.Caller || parsed.Duration != call.Duration || !parsed.Start.Equal(call.Start) {
		t.Errorf("round trip lost data: %+v vs %+v", parsed, call)
	}
}
