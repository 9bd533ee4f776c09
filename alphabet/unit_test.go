// File: alphabet/unit_test.go
package alphabet_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/relmatch/alphabet"
	"github.com/katalvlaran/relmatch/parallel"
	"github.com/katalvlaran/relmatch/pattern"
	"github.com/katalvlaran/relmatch/reflex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Distinct 2×2 fixtures.
var (
	gridA = [][]int{{1, 0}, {0, 0}}
	gridB = [][]int{{0, 1}, {0, 0}}
	gridC = [][]int{{0, 0}, {1, 0}}
	gridX = [][]int{{1, 1}, {1, 1}}
)

func mustSet(t testing.TB, ps ...*pattern.Pattern) *pattern.Set {
	t.Helper()
	s, err := pattern.NewSet(ps...)
	require.NoError(t, err)
	return s
}

// abcUnit is the baseline from three patterns tagged "A", "B", "C".
func abcUnit(t testing.TB, opts ...alphabet.Option) *alphabet.Unit {
	t.Helper()
	u, err := alphabet.New(mustSet(t,
		pattern.MustNew(gridA, "A"),
		pattern.MustNew(gridB, "B"),
		pattern.MustNew(gridC, "C"),
	), reflex.Exact{}, opts...)
	require.NoError(t, err)
	return u
}

// funcRequest is a Request with a pluggable IsActual.
type funcRequest struct {
	actual  func(string) bool
	queries []alphabet.Query
}

func (r funcRequest) IsActual(a string) bool { return r.actual(a) }
func (r funcRequest) Queries() []alphabet.Query { return r.queries }

func always(string) bool { return true }

func TestNew_Validation(t *testing.T) {
	_, err := alphabet.New(nil, reflex.Exact{})
	assert.ErrorIs(t, err, alphabet.ErrEmptySet)

	_, err = alphabet.New(mustSet(t), reflex.Exact{})
	assert.ErrorIs(t, err, alphabet.ErrEmptySet)

	_, err = alphabet.New(mustSet(t, pattern.MustNew(gridA, "A")), nil)
	assert.ErrorIs(t, err, alphabet.ErrNilMatcher)
}

func TestNew_TooLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates MaxSymbols+1 patterns")
	}
	ps := make([]*pattern.Pattern, alphabet.MaxSymbols+1)
	p := pattern.MustNew([][]int{{1}}, "A")
	for i := range ps {
		ps[i] = p
	}
	_, err := alphabet.New(mustSet(t, ps...), reflex.Exact{})
	assert.ErrorIs(t, err, alphabet.ErrAlphabetTooLarge)
}

// TestTranslate_Scenario: "ABC" baseline, "ab" → [0 1], "ax" fails.
func TestTranslate_Scenario(t *testing.T) {
	u := abcUnit(t)
	assert.Equal(t, "ABC", u.String())
	assert.Equal(t, 3, u.Len())

	syms, ok := u.Translate("ab")
	require.True(t, ok)
	assert.Equal(t, []alphabet.Symbol{0, 1}, syms)

	_, ok = u.Translate("ax")
	assert.False(t, ok)
	_, ok = u.Translate("")
	assert.False(t, ok)
}

// TestTranslate_RoundTrip translates the alphabet string back to 0..N-1.
func TestTranslate_RoundTrip(t *testing.T) {
	var ps []*pattern.Pattern
	tags := "qwertyuiopasdfgh"
	for i, c := range tags {
		ps = append(ps, pattern.MustNew([][]int{{i}}, string(c)))
	}
	u, err := alphabet.New(mustSet(t, ps...), reflex.Exact{})
	require.NoError(t, err)
	require.Equal(t, len(tags), len(u.String()))

	syms, ok := u.Translate(u.String())
	require.True(t, ok)
	for i, s := range syms {
		assert.Equal(t, alphabet.Symbol(i), s)
	}
	assert.Equal(t, len(tags), u.Distinct())
}

// TestTranslate_DuplicateLabels: later pattern wins the mapping.
func TestTranslate_DuplicateLabels(t *testing.T) {
	u, err := alphabet.New(mustSet(t,
		pattern.MustNew(gridA, "a"),
		pattern.MustNew(gridB, "b"),
		pattern.MustNew(gridC, "Alpha"),
	), reflex.Exact{})
	require.NoError(t, err)

	assert.Equal(t, "ABA", u.String())
	assert.Less(t, u.Distinct(), u.Len())

	syms, ok := u.Translate("a")
	require.True(t, ok)
	assert.Equal(t, []alphabet.Symbol{2}, syms)
}

func TestWorkingTags(t *testing.T) {
	u := abcUnit(t)
	w := u.Working()
	for k := 0; k < w.Len(); k++ {
		p, err := w.At(k)
		require.NoError(t, err)
		s, err := alphabet.ParseSymbol(p.Tag())
		require.NoError(t, err)
		assert.Equal(t, alphabet.Symbol(k), s)
	}
	l, err := u.Label(2)
	require.NoError(t, err)
	assert.Equal(t, 'C', l)
	_, err = u.Label(3)
	assert.ErrorIs(t, err, alphabet.ErrForeignSymbol)
}

func TestParseSymbol(t *testing.T) {
	s, err := alphabet.ParseSymbol(alphabet.Symbol(65535).Tag())
	require.NoError(t, err)
	assert.Equal(t, alphabet.Symbol(65535), s)

	for _, bad := range []string{"", "x", "-1", "65536"} {
		_, err := alphabet.ParseSymbol(bad)
		assert.ErrorIs(t, err, alphabet.ErrBadSymbolTag, bad)
	}
}

func TestIsActual(t *testing.T) {
	u := abcUnit(t)
	q := alphabet.Query{Target: pattern.MustNew(gridX, "x"), Text: "ca"}
	assert.True(t, u.IsActual(alphabet.NewRequest(q)))
	assert.False(t, u.IsActual(alphabet.NewRequest(alphabet.Query{Target: q.Target, Text: "z"})))
	assert.False(t, u.IsActual(alphabet.NewRequest()))
	assert.False(t, u.IsActual(nil))
}

// TestTest_MatchesAndIdempotent queries B's cells twice.
func TestTest_MatchesAndIdempotent(t *testing.T) {
	ctx := context.Background()
	u := abcUnit(t)
	q := pattern.MustNew(gridB, "anything")

	first, err := u.Test(ctx, q)
	require.NoError(t, err)
	second, err := u.Test(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, "B", first)
	assert.ElementsMatch(t, []rune(first), []rune(second))

	none, err := u.Test(ctx, pattern.MustNew(gridX, "x"))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = u.Test(ctx, nil)
	assert.ErrorIs(t, err, alphabet.ErrNilPattern)
}

// everyMatcher recognizes every symbol; output must follow symbol order.
type everyMatcher struct{ reflex.Exact }

func (everyMatcher) Recognize(context.Context, *pattern.Set, *pattern.Pattern, alphabet.Symbol) (bool, error) {
	return true, nil
}

func TestTest_SymbolOrder(t *testing.T) {
	var ps []*pattern.Pattern
	for i, c := range "ZYXWVUTSRQ" {
		ps = append(ps, pattern.MustNew([][]int{{i}}, string(c)))
	}
	u, err := alphabet.New(mustSet(t, ps...), everyMatcher{},
		alphabet.WithLimits(parallel.Limits{Threshold: 2, MaxWorkers: 4}))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		got, err := u.Test(context.Background(), ps[0])
		require.NoError(t, err)
		assert.Equal(t, "ZYXWVUTSRQ", got)
	}
}

// failingMatcher fails Recognize for one symbol and counts calls.
type failingMatcher struct {
	reflex.Exact
	bad   alphabet.Symbol
	calls atomic.Int32
}

var errMatcher = errors.New("matcher exploded")

func (m *failingMatcher) Recognize(ctx context.Context, c *pattern.Set, q *pattern.Pattern, s alphabet.Symbol) (bool, error) {
	m.calls.Add(1)
	if s == m.bad {
		return false, errMatcher
	}
	return m.Exact.Recognize(ctx, c, q, s)
}

// TestTest_StopsOnFirstError expects exactly one error derived from the
// failing symbol.
func TestTest_StopsOnFirstError(t *testing.T) {
	m := &failingMatcher{bad: 1}
	u, err := alphabet.New(mustSet(t,
		pattern.MustNew(gridA, "A"),
		pattern.MustNew(gridB, "B"),
		pattern.MustNew(gridC, "C"),
	), m, alphabet.WithLimits(parallel.Sequential()))
	require.NoError(t, err)

	got, err := u.Test(context.Background(), pattern.MustNew(gridA, "q"))
	require.Error(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, err, errMatcher)
	assert.Contains(t, err.Error(), "symbol 1 (B)")
	assert.Equal(t, int32(2), m.calls.Load(), "symbol 2 must not start after the stop")

	var we *parallel.WorkerError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, 1, we.Index)
}

// TestTest_StopHookFailure surfaces both messages.
func TestTest_StopHookFailure(t *testing.T) {
	errStop := errors.New("stop hook failed")
	l := parallel.Sequential()
	l.OnStop = func(error) error { return errStop }

	u, err := alphabet.New(mustSet(t,
		pattern.MustNew(gridA, "A"),
		pattern.MustNew(gridB, "B"),
	), &failingMatcher{bad: 0}, alphabet.WithLimits(l))
	require.NoError(t, err)

	_, err = u.Test(context.Background(), pattern.MustNew(gridA, "q"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errMatcher)
	assert.ErrorIs(t, err, errStop)
	assert.Contains(t, err.Error(), "\nstop hook failed")
}
