package alphabet

import (
	"unicode"

	"github.com/katalvlaran/relmatch/pattern"
)

// Query pairs a target pattern with the human-readable characters it
// should be recognized as.
type Query struct {
	Target *pattern.Pattern
	Text   string
}

// Request is an externally supplied discovery request.
//
// IsActual decides whether a candidate alphabet string is acceptable for the
// request. Queries lists the (target, text) pairs in the order they are
// processed.
type Request interface {
	IsActual(alphabet string) bool
	Queries() []Query
}

// StaticRequest is the bundled Request: a fixed list of queries, actual
// when it has at least one query and every query character (case-folded)
// occurs in the candidate alphabet.
type StaticRequest struct {
	queries []Query
}

var _ Request = (*StaticRequest)(nil)

// NewRequest builds a StaticRequest from qs. The slice is copied.
func NewRequest(qs ...Query) *StaticRequest {
	cp := make([]Query, len(qs))
	copy(cp, qs)

	return &StaticRequest{queries: cp}
}

// Queries returns a copy of the query list.
func (r *StaticRequest) Queries() []Query {
	cp := make([]Query, len(r.queries))
	copy(cp, r.queries)

	return cp
}

// IsActual reports whether every query character occurs in alphabet.
func (r *StaticRequest) IsActual(alphabet string) bool {
	if len(r.queries) == 0 {
		return false
	}
	present := make(map[rune]struct{}, len(alphabet))
	for _, c := range alphabet {
		present[unicode.ToUpper(c)] = struct{}{}
	}
	for _, q := range r.queries {
		if q.Text == "" {
			return false
		}
		for _, c := range q.Text {
			if _, ok := present[unicode.ToUpper(c)]; !ok {
				return false
			}
		}
	}

	return true
}
