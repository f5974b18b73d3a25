package movies

import (
	"fmt"
	"strings"
)

// Clause is one rendered predicate of a catalog query.
type Clause struct {
	Expr string
	Args []any
}

// String renders the clause with its arguments inlined.
func (c *Clause) String() string {
	out := c.Expr
	for _, a := range c.Args {
		out = strings.Replace(out, "?", fmt.Sprintf("%v", a), 1)
	}

	return out
}

// And combines clauses into a single conjunction.
func And(clauses ...*Clause) *Clause {
	exprs := make([]string, 0, len(clauses))
	args := make([]any, 0, len(clauses))

	for _, c := range clauses {
		if c == nil {
			continue
		}

		exprs = append(exprs, c.Expr)
		args = append(args, c.Args...)
	}

	return &Clause{Expr: strings.Join(exprs, " AND "), Args: args}
}

// Limit caps a result page.
func Limit(count, offset int) *Clause {
	return &Clause{Expr: "LIMIT ? OFFSET ?", Args: []any{count, offset}}
}

// DirectorClause matches an exact director name.
func DirectorClause(name string) *Clause {
	return &Clause{Expr: "director = ?", Args: []any{name}}
}

// RatingClause keeps movies rated at least min.
func RatingClause(min float64) *Clause {
	return &Clause{Expr: "rating >= ?", Args: []any{min}}
}

// YearClause matches an exact release year.
func YearClause(year int) *Clause {
	return &Clause{Expr: "year = ?", Args: []any{year}}
}

// TitleClause matches titles containing the pattern.
func TitleClause(pattern string) *Clause {
	return &Clause{Expr: "title LIKE ?", Args: []any{"%" + pattern + "%"}}
}
