package domain

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		wantErr  bool
	}{
		{"3331234567", "3331234567", false},
		{"333 123 4567", "3331234567", false},
		{"333-123-4567", "3331234567", false},
		{"+39 333 1234567", "393331234567", false},
		{" 333 ", "333", false},

		// Invalid inputs
		{"", "", true},
		{"   ", "", true},
		{"+-", "", true},
		{"333abc", "", true},
		{"33.123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizePhone(%q) = %q, expected error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePhone(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q, expected %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestPhonebookFirstContactWins(t *testing.T) {
	book := NewPhonebook()

	first := &Contact{Phone: "333", FirstName: "Mario", LastName: "Rossi"}
	second := &Contact{Phone: "333", FirstName: "Luigi", LastName: "Verdi"}

	if !book.Add(first) {
		t.Fatal("first Add returned false")
	}
	if book.Add(second) {
		t.Error("duplicate Add returned true")
	}

	got, ok := book.Get("333")
	if !ok {
		t.Fatal("Get(333) found nothing")
	}
	if got.FirstName != "Mario" {
		t.Errorf("Get(333) = %s, expected the first contact to win", got.FirstName)
	}
	if book.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", book.Len())
	}
}

func TestPhonebookInsertionOrder(t *testing.T) {
	book := NewPhonebook()
	book.Add(&Contact{Phone: "999", FirstName: "C"})
	book.Add(&Contact{Phone: "111", FirstName: "A"})
	book.Add(&Contact{Phone: "555", FirstName: "B"})

	numbers := book.Numbers()
	expected := []string{"999", "111", "555"}
	if len(numbers) != len(expected) {
		t.Fatalf("Numbers() returned %d entries, expected %d", len(numbers), len(expected))
	}
	for i, n := range expected {
		if numbers[i] != n {
			t.Errorf("Numbers()[%d] = %s, expected %s", i, numbers[i], n)
		}
	}
}

func TestContactFullName(t *testing.T) {
	c := &Contact{Phone: "333", FirstName: "Mario", LastName: "Rossi"}
	if got := c.FullName(); got != "Mario Rossi" {
		t.Errorf("FullName() = %q, expected %q", got, "Mario Rossi")
	}
}
