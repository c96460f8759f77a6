package commands

import (
	"context"
	"testing"

	"phonecentral/internal/domain"
)

func newSearchFixture() *domain.Central {
	dir := domain.NewCentral()
	dir.AddContact(&domain.Contact{Phone: "5551234", FirstName: "Anna", LastName: "Rossi"})
	dir.AddContact(&domain.Contact{Phone: "5551235", FirstName: "Bruno", LastName: "Rossi"})
	dir.RecordCall(domain.NewCall("5551235", "5551234", at(10, 0, 0), 60))
	return dir
}

func TestNameSearchCommand(t *testing.T) {
	dir := newSearchFixture()

	results, err := NewNameSearchCommand(dir, domain.FieldLastName, "ros", false).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, expected 2", len(results))
	}
	if results[0].Contact.Phone != "5551234" {
		t.Errorf("most popular contact should rank first, got %s", results[0].Contact.Phone)
	}
}

func TestPhoneSearchCommandWithResults(t *testing.T) {
	dir := newSearchFixture()

	result, err := NewPhoneSearchCommand(dir, "555").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(result.Results) != 2 {
		t.Errorf("got %d results, expected 2", len(result.Results))
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("suggestions should be empty when the search hits, got %d", len(result.Suggestions))
	}
}

func TestPhoneSearchCommandFallsBackToSuggestions(t *testing.T) {
	dir := newSearchFixture()

	// No number starts with this, but it is one digit away from known ones.
	result, err := NewPhoneSearchCommand(dir, "5551233").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(result.Results) != 0 {
		t.Fatalf("expected no direct results, got %d", len(result.Results))
	}
	if len(result.Suggestions) == 0 {
		t.Fatal("expected did-you-mean suggestions")
	}
	if result.Suggestions[0].Phone != "5551234" {
		t.Errorf("top suggestion = %s, expected the popular 5551234", result.Suggestions[0].Phone)
	}
}

func TestAutocompleteCommand(t *testing.T) {
	dir := newSearchFixture()

	suggestions, err := NewAutocompleteCommand(dir, domain.FieldFirstName, "a").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Key != "anna" {
		t.Errorf("suggestions = %v, expected [anna]", suggestions)
	}
}
