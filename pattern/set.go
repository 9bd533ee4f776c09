package pattern

import "strings"

// Set is an ordered, append-only collection of patterns.
// Order is significant: position k is the identity alphabet units use.
//
// A Set is not safe for concurrent mutation. Once a Set has been handed to
// an alphabet unit it is treated as frozen and may be read concurrently.
type Set struct {
	items []*Pattern
}

// NewSet builds a Set holding ps in order.
// Returns ErrNilPattern if any element is nil.
func NewSet(ps ...*Pattern) (*Set, error) {
	s := &Set{items: make([]*Pattern, 0, len(ps))}
	if err := s.AddRange(ps); err != nil {
		return nil, err
	}

	return s, nil
}

// Len returns the number of patterns.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// At returns the i-th pattern.
// Returns ErrIndexOutOfRange for i outside [0, Len).
func (s *Set) At(i int) (*Pattern, error) {
	if i < 0 || i >= s.Len() {
		return nil, ErrIndexOutOfRange
	}

	return s.items[i], nil
}

// Add appends p.
func (s *Set) Add(p *Pattern) error {
	if p == nil {
		return ErrNilPattern
	}
	s.items = append(s.items, p)

	return nil
}

// AddRange appends every pattern of ps in order. Either all are appended or
// none: a nil element aborts before any mutation.
func (s *Set) AddRange(ps []*Pattern) error {
	for _, p := range ps {
		if p == nil {
			return ErrNilPattern
		}
	}
	s.items = append(s.items, ps...)

	return nil
}

// Patterns returns a copy of the backing slice. The patterns themselves are
// immutable and shared.
func (s *Set) Patterns() []*Pattern {
	out := make([]*Pattern, s.Len())
	if s != nil {
		copy(out, s.items)
	}

	return out
}

// Clone returns a new Set with the same patterns in the same order.
func (s *Set) Clone() *Set {
	return &Set{items: s.Patterns()}
}

// Labels concatenates the Label of every pattern in order.
func (s *Set) Labels() string {
	var sb strings.Builder
	for _, p := range s.Patterns() {
		sb.WriteRune(p.Label())
	}

	return sb.String()
}

// EquivalentTo returns the indices of every pattern whose cells equal q's,
// in set order. This is the equivalence class of q against the container.
// Complexity: O(N×W×H).
func (s *Set) EquivalentTo(q *Pattern) []int {
	var idx []int
	for i, p := range s.Patterns() {
		if p.SameCells(q) {
			idx = append(idx, i)
		}
	}

	return idx
}
