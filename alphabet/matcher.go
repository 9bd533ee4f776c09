package alphabet

import (
	"context"

	"github.com/katalvlaran/relmatch/pattern"
)

// Matcher is the incremental pattern-matching engine a Unit delegates to.
//
// Implementations must be safe for concurrent use and must treat every
// *pattern.Set argument as read-only.
type Matcher interface {
	// Extend tries to grow state so that target is recognized as query.
	// It returns a new set whose first state.Len() patterns are state's,
	// followed by any newly discovered patterns tagged with Symbol.Tag().
	// A nil set with a nil error means the pair produced nothing.
	Extend(ctx context.Context, state *pattern.Set, target *pattern.Pattern, query []Symbol) (*pattern.Set, error)

	// Recognize reports whether q's equivalence class within container
	// recognizes symbol s.
	Recognize(ctx context.Context, container *pattern.Set, q *pattern.Pattern, s Symbol) (bool, error)
}
