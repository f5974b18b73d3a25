package plan

import (
	"testing"
)

func TestParseTarget(t *testing.T) {
	reg := loadRegistry(t)

	tests := []struct {
		expr string
		want string
	}{
		{expr: "string", want: "string"},
		{expr: "*string", want: "*string"},
		{expr: "**string", want: "**string"},
		{expr: "[]byte", want: "[]byte"},
		{expr: "[]*float64", want: "[]*float64"},
		{expr: "error", want: "error"},
		{expr: "movies.Clause", want: "fieldbind/movies.Clause"},
		{expr: "*movies.Clause", want: "*fieldbind/movies.Clause"},
		{expr: "[]movies.Clause", want: "[]fieldbind/movies.Clause"},
		{expr: "rentals.Tags", want: "fieldbind/rentals.Tags"},
		{expr: "fieldbind/movies.Filter", want: "fieldbind/movies.Filter"},
		{expr: " *string ", want: "*string"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			typ, err := ParseTarget(reg, tt.expr)
			if err != nil {
				t.Fatalf("ParseTarget(%q): %v", tt.expr, err)
			}

			if got := typ.String(); got != tt.want {
				t.Errorf("ParseTarget(%q) = %s, want %s", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseTargetErrors(t *testing.T) {
	reg := loadRegistry(t)

	for _, expr := range []string{"", "*", "[]", "movies.Nope", "nowhere.Clause", "true", "Nope"} {
		if _, err := ParseTarget(reg, expr); err == nil {
			t.Errorf("ParseTarget(%q) should fail", expr)
		}
	}
}

func TestNilable(t *testing.T) {
	reg := loadRegistry(t)

	tests := []struct {
		expr string
		want bool
	}{
		{expr: "string", want: false},
		{expr: "float64", want: false},
		{expr: "movies.Clause", want: false},
		{expr: "*movies.Clause", want: true},
		{expr: "[]string", want: true},
		{expr: "any", want: true},
		{expr: "error", want: true},
		{expr: "rentals.Tags", want: true}, // named slice
	}

	for _, tt := range tests {
		typ, err := ParseTarget(reg, tt.expr)
		if err != nil {
			t.Fatalf("ParseTarget(%q): %v", tt.expr, err)
		}

		if got := nilable(typ); got != tt.want {
			t.Errorf("nilable(%s) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}
