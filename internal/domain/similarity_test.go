package domain

import (
	"math"
	"testing"
)

func TestSimilarityRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical", "5551234", "5551234", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "555", "", 0.0},
		{"disjoint", "111", "999", 0.0},
		// 6 of 7 digits match: 2*6/(7+7)
		{"one digit off", "5551234", "5551235", 12.0 / 14.0},
		// "abcd" vs "bcda": longest block "bcd" (3), then "a" matches after -> 2*4/8... the
		// recursion only matches "a" on one side of the block, so matched = 3.
		{"rotated", "abcd", "bcda", 2.0 * 3.0 / 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimilarityRatio(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("SimilarityRatio(%q, %q) = %f, expected %f", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestSimilarityRatioSymmetricLength(t *testing.T) {
	// The ratio uses both lengths, so a prefix of a longer string scores
	// below 1 even though every character matches.
	got := SimilarityRatio("555", "5551234")
	expected := 2.0 * 3.0 / 10.0
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("SimilarityRatio = %f, expected %f", got, expected)
	}
}

func TestClosestMatches(t *testing.T) {
	candidates := []string{"5551234", "5551235", "9990000", "5551299"}

	matches := ClosestMatches("5551234", candidates, 10, 0.6)
	if len(matches) == 0 {
		t.Fatal("no matches above cutoff")
	}
	if matches[0].Value != "5551234" || matches[0].Ratio != 1.0 {
		t.Errorf("best match = %s (%f), expected the exact candidate", matches[0].Value, matches[0].Ratio)
	}
	for _, m := range matches {
		if m.Ratio < 0.6 {
			t.Errorf("match %s has ratio %f below cutoff", m.Value, m.Ratio)
		}
		if m.Value == "9990000" {
			t.Error("dissimilar candidate passed the cutoff")
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Ratio > matches[i-1].Ratio {
			t.Error("matches not ordered by ratio descending")
		}
	}
}

func TestClosestMatchesTieBreak(t *testing.T) {
	// Both candidates are one digit off; equal ratios order by value.
	matches := ClosestMatches("5551234", []string{"5551236", "5551235"}, 10, 0.6)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, expected 2", len(matches))
	}
	if matches[0].Value != "5551235" || matches[1].Value != "5551236" {
		t.Errorf("tie order = %s, %s; expected ascending value", matches[0].Value, matches[1].Value)
	}
}

func TestClosestMatchesLimit(t *testing.T) {
	candidates := []string{"1111", "1112", "1113", "1114", "1115"}
	matches := ClosestMatches("1111", candidates, 2, 0.5)
	if len(matches) != 2 {
		t.Errorf("got %d matches, expected the limit of 2", len(matches))
	}
}
