package domain

import (
	"fmt"
	"strings"
)

// Contact is a phonebook entry. Phone is the unique key.
type Contact struct {
	Phone     string
	FirstName string
	LastName  string
}

// FullName returns "First Last" for display.
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Phonebook maps normalized phone numbers to contacts. Insertion order is
// preserved so listings are deterministic.
type Phonebook struct {
	byPhone map[string]*Contact
	order   []string
}

// NewPhonebook creates an empty phonebook.
func NewPhonebook() *Phonebook {
	return &Phonebook{byPhone: make(map[string]*Contact)}
}

// Add registers a contact. The first contact wins for a duplicate number.
// Returns false when the number was already present.
func (p *Phonebook) Add(c *Contact) bool {
	if _, ok := p.byPhone[c.Phone]; ok {
		return false
	}
	p.byPhone[c.Phone] = c
	p.order = append(p.order, c.Phone)
	return true
}

// Get returns the contact for a number, if any.
func (p *Phonebook) Get(number string) (*Contact, bool) {
	c, ok := p.byPhone[number]
	return c, ok
}

// Numbers returns all registered numbers in insertion order.
func (p *Phonebook) Numbers() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Contacts returns all contacts in insertion order.
func (p *Phonebook) Contacts() []*Contact {
	out := make([]*Contact, 0, len(p.order))
	for _, number := range p.order {
		out = append(out, p.byPhone[number])
	}
	return out
}

// Len returns the number of contacts.
func (p *Phonebook) Len() int {
	return len(p.order)
}

// NormalizePhone strips spaces, dashes and a leading plus from a raw phone
// string and validates that only digits remain.
func NormalizePhone(raw string) (string, error) {
	normalized := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(raw)

	if normalized == "" {
		return "", fmt.Errorf("phone number %q is empty after normalization", raw)
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("phone number %q contains non-digit characters after normalization: %q", raw, normalized)
		}
	}
	return normalized, nil
}
