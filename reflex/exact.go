package reflex

import (
	"context"

	"github.com/katalvlaran/relmatch/alphabet"
	"github.com/katalvlaran/relmatch/pattern"
)

// Exact is the structural reference matcher.
type Exact struct{}

var _ alphabet.Matcher = Exact{}

// Extend appends target under each distinct query symbol not already held.
// Complexity: O(|query| × N × W×H).
func (Exact) Extend(ctx context.Context, state *pattern.Set, target *pattern.Pattern, query []alphabet.Symbol) (*pattern.Set, error) {
	if state == nil {
		return nil, ErrNilState
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	if len(query) == 0 {
		return nil, ErrEmptyQuery
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	next := state.Clone()
	seen := make(map[alphabet.Symbol]struct{}, len(query))
	added := 0
	for _, s := range query {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if holds(next, target, s) {
			continue
		}
		p, err := target.Rename(s.Tag())
		if err != nil {
			return nil, err
		}
		if err := next.Add(p); err != nil {
			return nil, err
		}
		added++
	}
	if added == 0 {
		return nil, nil
	}

	return next, nil
}

// Recognize reports whether any pattern with q's cells carries s's tag.
// Complexity: O(N × W×H).
func (Exact) Recognize(ctx context.Context, container *pattern.Set, q *pattern.Pattern, s alphabet.Symbol) (bool, error) {
	if container == nil {
		return false, ErrNilState
	}
	if q == nil {
		return false, ErrNilTarget
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return holds(container, q, s), nil
}

// holds reports whether set contains a pattern with q's cells tagged s.
func holds(set *pattern.Set, q *pattern.Pattern, s alphabet.Symbol) bool {
	tag := s.Tag()
	for _, idx := range set.EquivalentTo(q) {
		p, err := set.At(idx)
		if err == nil && p.Tag() == tag {
			return true
		}
	}

	return false
}
