package alphabet

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/google/uuid"
	"github.com/katalvlaran/relmatch/pattern"
)

// Unit owns one frozen pattern set and its symbol mapping.
// A Unit is immutable once built and safe for concurrent use.
type Unit struct {
	id      uuid.UUID
	source  *pattern.Set     // patterns as supplied, external tags
	working *pattern.Set     // same cells, tagged Symbol(k).Tag()
	labels  []rune           // labels[k] is the external character of symbol k
	symbols map[rune]Symbol  // label → symbol, last write wins
	matcher Matcher
	opts    options
}

// New builds a Unit from set. Pattern k receives Symbol(k).
//
// Errors:
//   - ErrEmptySet for a nil or empty set.
//   - ErrAlphabetTooLarge when set.Len() > MaxSymbols.
//   - ErrNilMatcher for a nil matcher.
//
// Complexity: O(N×W×H) for the renamed working copy.
func New(set *pattern.Set, m Matcher, opts ...Option) (*Unit, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return newUnit(set, m, o)
}

func newUnit(set *pattern.Set, m Matcher, o options) (*Unit, error) {
	if set.Len() == 0 {
		return nil, ErrEmptySet
	}
	if set.Len() > MaxSymbols {
		return nil, fmt.Errorf("%w: %d patterns, limit %d", ErrAlphabetTooLarge, set.Len(), MaxSymbols)
	}
	if m == nil {
		return nil, ErrNilMatcher
	}

	src := set.Clone()
	n := src.Len()
	u := &Unit{
		id:      uuid.New(),
		source:  src,
		labels:  make([]rune, 0, n),
		symbols: make(map[rune]Symbol, n),
		matcher: m,
		opts:    o,
	}
	renamed := make([]*pattern.Pattern, 0, n)
	for k, p := range src.Patterns() {
		sym := Symbol(k)
		label := p.Label()
		u.labels = append(u.labels, label)
		u.insertOrReplace(label, sym)

		w, err := p.Rename(sym.Tag())
		if err != nil {
			return nil, err
		}
		renamed = append(renamed, w)
	}
	working, err := pattern.NewSet(renamed...)
	if err != nil {
		return nil, err
	}
	u.working = working

	if len(u.symbols) < n {
		o.logger.Debug("duplicate labels collapsed",
			slog.String("unit", u.id.String()),
			slog.Int("patterns", n),
			slog.Int("distinct", len(u.symbols)),
		)
	}

	return u, nil
}

// insertOrReplace maps label to sym. A later pattern with the same label
// replaces the earlier mapping.
func (u *Unit) insertOrReplace(label rune, sym Symbol) {
	u.symbols[label] = sym
}

// Translate maps every character of query (case-folded) to its internal
// symbol. It reports false on the first unmapped character or for an empty
// query.
//
// Complexity: O(len(query)).
func (u *Unit) Translate(query string) ([]Symbol, bool) {
	if query == "" {
		return nil, false
	}
	out := make([]Symbol, 0, len(query))
	for _, c := range query {
		sym, ok := u.symbols[unicode.ToUpper(c)]
		if !ok {
			return nil, false
		}
		out = append(out, sym)
	}

	return out, true
}

// IsActual reports whether req accepts this unit's alphabet string.
// A nil request is never actual.
func (u *Unit) IsActual(req Request) bool {
	if req == nil {
		return false
	}

	return req.IsActual(u.String())
}

// String returns the alphabet string: one upper-cased label per symbol.
func (u *Unit) String() string {
	return string(u.labels)
}

// Len returns the number of symbols.
func (u *Unit) Len() int { return len(u.labels) }

// Distinct returns the number of distinct labels, i.e. the size of the
// label → symbol map.
func (u *Unit) Distinct() int { return len(u.symbols) }

// ID returns the unit's random identifier, used in logs and traces.
func (u *Unit) ID() uuid.UUID { return u.id }

// Label returns the external character of symbol s.
func (u *Unit) Label(s Symbol) (rune, error) {
	if int(s) >= len(u.labels) {
		return 0, fmt.Errorf("%w: %d", ErrForeignSymbol, s)
	}

	return u.labels[s], nil
}

// Patterns returns a copy of the source set.
func (u *Unit) Patterns() *pattern.Set { return u.source.Clone() }

// Working returns a copy of the working set, tagged with symbol tags.
func (u *Unit) Working() *pattern.Set { return u.working.Clone() }
