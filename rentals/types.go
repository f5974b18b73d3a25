package rentals

import (
	"strings"
	"time"
)

// Tags labels a rental for search.
type Tags []string

// Period is a checkout date range.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Rental is a title checked out by a member.
type Rental struct {
	Period   `json:"period"`
	ID       string     `json:"id"`
	MemberID string     `json:"member_id"`
	DueBack  *time.Time `json:"due_back,omitempty"`
	Tags     Tags       `json:"tags,omitempty"`

	note string
}

// Overdue reports whether the rental is past due at now.
func (r Rental) Overdue(now time.Time) bool {
	return r.DueBack != nil && now.After(*r.DueBack)
}

// DueClause renders a due-date predicate.
func DueClause(t time.Time) string {
	return "due_back <= " + t.Format(time.RFC3339)
}

// TagClause renders a tag membership predicate.
func TagClause(tags Tags) string {
	return "tags in (" + strings.Join(tags, ", ") + ")"
}
