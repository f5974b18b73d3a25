package match

import (
	"reflect"
	"testing"
)

func TestSuggest(t *testing.T) {
	fields := []string{"DirectorEq", "RatingGte", "ReleaseYear", "TitleLike"}

	tests := []struct {
		name     string
		input    string
		max      int
		expected []string
	}{
		{"snake case hits the field", "title_like", 3, []string{"TitleLike"}},
		{"typo hits the field", "RatingGt", 3, []string{"RatingGte"}},
		{"lowercase hits the field", "releaseyear", 3, []string{"ReleaseYear"}},
		{"nothing close", "Zzz", 3, nil},
		{"zero max", "TitleLike", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Suggest(tt.input, fields, tt.max)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSuggestOrdering(t *testing.T) {
	// Equal scores break ties alphabetically.
	got := Suggest("AA", []string{"AC", "AB"}, 5)
	want := []string{"AB", "AC"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest tie-break = %v, want %v", got, want)
	}

	// max truncates after ranking.
	got = Suggest("AA", []string{"AC", "AB"}, 1)
	want = []string{"AB"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest truncation = %v, want %v", got, want)
	}
}

func TestSuggestEmptyCandidates(t *testing.T) {
	if got := Suggest("TitleLike", nil, 3); got != nil {
		t.Errorf("Suggest with no candidates = %v, want nil", got)
	}
}
