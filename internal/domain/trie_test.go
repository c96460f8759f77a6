package domain

import "testing"

func TestTriePrefixCompleteness(t *testing.T) {
	// A contact inserted under key K is found for every prefix of K.
	tr := NewTrie()
	contact := &Contact{Phone: "5551234", FirstName: "Mario"}
	key := "5551234"
	tr.Insert(key, contact)

	for k := 1; k <= len(key); k++ {
		prefix := key[:k]
		entries := tr.SearchPrefix(prefix)
		found := false
		for _, e := range entries {
			for _, c := range e.Contacts {
				if c == contact {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("SearchPrefix(%q) did not find the contact", prefix)
		}
	}
}

func TestTrieSharedPrefix(t *testing.T) {
	tr := NewTrie()
	a := &Contact{Phone: "5551234"}
	b := &Contact{Phone: "5551235"}
	tr.Insert("5551234", a)
	tr.Insert("5551235", b)

	entries := tr.SearchPrefix("555123")
	if len(entries) != 2 {
		t.Fatalf("SearchPrefix(555123) returned %d keys, expected 2", len(entries))
	}
	if entries[0].Key != "5551234" || entries[1].Key != "5551235" {
		t.Errorf("keys out of lexicographic order: %s, %s", entries[0].Key, entries[1].Key)
	}
}

func TestTrieLexicographicOrder(t *testing.T) {
	tr := NewTrie()
	keys := []string{"rossi", "rosa", "russo", "ro", "r"}
	for _, k := range keys {
		tr.Insert(k, &Contact{Phone: k})
	}

	entries := tr.SearchPrefix("r")
	expected := []string{"r", "ro", "rosa", "rossi", "russo"}
	if len(entries) != len(expected) {
		t.Fatalf("SearchPrefix(r) returned %d keys, expected %d", len(entries), len(expected))
	}
	for i, k := range expected {
		if entries[i].Key != k {
			t.Errorf("entries[%d].Key = %s, expected %s", i, entries[i].Key, k)
		}
	}
}

func TestTrieAccumulatesUnderSameKey(t *testing.T) {
	tr := NewTrie()
	a := &Contact{Phone: "111", FirstName: "Mario"}
	b := &Contact{Phone: "222", FirstName: "Mario"}
	tr.Insert("mario", a)
	tr.Insert("mario", b)

	contacts := tr.Get("mario")
	if len(contacts) != 2 {
		t.Fatalf("Get(mario) returned %d contacts, expected 2", len(contacts))
	}
	if contacts[0] != a || contacts[1] != b {
		t.Error("contacts not accumulated in insertion order")
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 distinct key", tr.Len())
	}
}

func TestTrieMissingPrefix(t *testing.T) {
	tr := NewTrie()
	tr.Insert("mario", &Contact{Phone: "111"})

	if entries := tr.SearchPrefix("luigi"); entries != nil {
		t.Errorf("SearchPrefix(luigi) = %v, expected nil", entries)
	}
	if contacts := tr.Get("mar"); contacts != nil {
		t.Errorf("Get(mar) = %v, expected nil for a non-terminal node", contacts)
	}
}

func TestTrieEmptyPrefixMatchesAll(t *testing.T) {
	tr := NewTrie()
	tr.Insert("anna", &Contact{Phone: "111"})
	tr.Insert("bruno", &Contact{Phone: "222"})

	entries := tr.SearchPrefix("")
	if len(entries) != 2 {
		t.Fatalf("SearchPrefix(\"\") returned %d keys, expected 2", len(entries))
	}
}

func TestPrefixIndexCaseInsensitiveNames(t *testing.T) {
	idx := NewPrefixIndex()
	c := &Contact{Phone: "333", FirstName: "Mario", LastName: "Rossi"}
	idx.InsertContact(c)

	tests := []struct {
		name   string
		search func(string) []TrieEntry
		prefix string
	}{
		{"first lower", idx.SearchFirstName, "mar"},
		{"first upper", idx.SearchFirstName, "MAR"},
		{"last mixed", idx.SearchLastName, "RoSsI"},
		{"phone", idx.SearchPhone, "33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := tt.search(tt.prefix)
			if len(entries) != 1 || len(entries[0].Contacts) != 1 || entries[0].Contacts[0] != c {
				t.Errorf("search(%q) did not find the contact: %v", tt.prefix, entries)
			}
		})
	}
}
