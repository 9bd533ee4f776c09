// File: pattern/set_test.go
package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_OrderAndLabels(t *testing.T) {
	a := MustNew([][]int{{1}}, "a")
	b := MustNew([][]int{{2}}, "Bee")
	c := MustNew([][]int{{3}}, "c")

	s, err := NewSet(a, b)
	require.NoError(t, err)
	require.NoError(t, s.Add(c))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "ABC", s.Labels())

	got, err := s.At(1)
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = s.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

// TestSet_AddRangeAtomic ensures a nil element aborts without partial append.
func TestSet_AddRangeAtomic(t *testing.T) {
	s, err := NewSet(MustNew([][]int{{1}}, "a"))
	require.NoError(t, err)

	err = s.AddRange([]*Pattern{MustNew([][]int{{2}}, "b"), nil})
	require.ErrorIs(t, err, ErrNilPattern)
	assert.Equal(t, 1, s.Len())

	_, err = NewSet(nil)
	assert.ErrorIs(t, err, ErrNilPattern)
}

// TestSet_CloneIndependent verifies appending to a clone leaves the source alone.
func TestSet_CloneIndependent(t *testing.T) {
	s, _ := NewSet(MustNew([][]int{{1}}, "a"))
	c := s.Clone()
	require.NoError(t, c.Add(MustNew([][]int{{2}}, "b")))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}

func TestSet_EquivalentTo(t *testing.T) {
	s, _ := NewSet(
		MustNew([][]int{{1, 0}}, "a"),
		MustNew([][]int{{0, 1}}, "b"),
		MustNew([][]int{{1, 0}}, "c"),
	)
	assert.Equal(t, []int{0, 2}, s.EquivalentTo(MustNew([][]int{{1, 0}}, "q")))
	assert.Empty(t, s.EquivalentTo(MustNew([][]int{{1, 1}}, "q")))
}

func TestSet_NilReceiver(t *testing.T) {
	var s *Set
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Patterns())
}
