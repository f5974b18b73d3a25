package match

import (
	"reflect"
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"TitleLike", "titlelike"},
		{"title_like", "titlelike"},
		{"title-like", "titlelike"},
		{"titleLike", "titlelike"},
		{"TITLELIKE", "titlelike"},

		// CamelCase variations
		{"ReleaseYear", "releaseyear"},
		{"releaseYear", "releaseyear"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},

		// With underscores
		{"rating_gte", "ratinggte"},
		{"RATING_GTE", "ratinggte"},
		{"Rating_Gte", "ratinggte"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"A", "a"},
		{"ID", "id"},

		// Mixed separators
		{"director_eq-ID", "directoreqid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"title", []string{"title"}},
		{"TitleLike", []string{"Title", "Like"}},
		{"titleLike", []string{"title", "Like"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"OrderID", []string{"Order", "ID"}},
		{"title_like", []string{"title", "like"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
