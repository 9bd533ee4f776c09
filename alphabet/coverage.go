package alphabet

import (
	"iter"

	"github.com/katalvlaran/relmatch/pattern"
)

// Advance increments counter as a mixed-radix number with every digit in
// [0, radix): scanning from the last position leftward, the first digit
// still below radix-1 is incremented and every digit to its right is reset
// to zero. It reports false once the counter is exhausted (all digits at
// radix-1), leaving counter unchanged.
//
// Complexity: O(len(counter)) worst case, O(1) amortized.
func Advance(counter []int, radix int) bool {
	for k := len(counter) - 1; k >= 0; k-- {
		if counter[k] >= radix-1 {
			continue
		}
		counter[k]++
		for x := k + 1; x < len(counter); x++ {
			counter[x] = 0
		}

		return true
	}

	return false
}

// Tuples lazily yields every selection tuple (one source-pattern index per
// position, N positions, repetition allowed) whose labels cover the whole
// alphabet. The yielded slice is reused between iterations; copy it to
// keep it. Restart by calling Tuples again.
//
// Complexity: O(N^N × N) over a full run.
func (u *Unit) Tuples() iter.Seq[[]int] {
	return u.TuplesWithin(0)
}

// TuplesWithin is Tuples restricted to the first budget counter states,
// covering or not. A budget of 0 or less visits all N^N states.
func (u *Unit) TuplesWithin(budget int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		n := u.Len()
		counter := make([]int, n)
		seen := make(map[rune]struct{}, len(u.symbols))
		for visited := 1; ; visited++ {
			clear(seen)
			for _, idx := range counter {
				seen[u.labels[idx]] = struct{}{}
			}
			if len(seen) == len(u.symbols) {
				if !yield(counter) {
					return
				}
			}
			if budget > 0 && visited >= budget {
				return
			}
			if !Advance(counter, n) {
				return
			}
		}
	}
}

// Selections yields, for every covering tuple of Tuples, the corresponding
// multiset of source patterns in tuple order.
func (u *Unit) Selections() iter.Seq[*pattern.Set] {
	return func(yield func(*pattern.Set) bool) {
		src := u.source.Patterns()
		for tuple := range u.Tuples() {
			ps := make([]*pattern.Pattern, len(tuple))
			for i, idx := range tuple {
				ps[i] = src[idx]
			}
			set, err := pattern.NewSet(ps...)
			if err != nil {
				return
			}
			if !yield(set) {
				return
			}
		}
	}
}

// MinimalCover scans the first limit counter states of TuplesWithin and
// returns the distinct source pattern indices of the first covering tuple
// using the fewest distinct patterns. Non-covering states count against
// limit; 0 means no cap. The scan stops early once a cover uses exactly one
// pattern per distinct label, which is optimal. It reports false when no
// covering tuple lies within limit.
//
// Complexity: O(limit × N).
func (u *Unit) MinimalCover(limit int) ([]int, bool) {
	var (
		best []int
		used = make(map[int]struct{}, u.Len())
	)
	for tuple := range u.TuplesWithin(limit) {
		clear(used)
		for _, idx := range tuple {
			used[idx] = struct{}{}
		}
		if best == nil || len(used) < len(best) {
			best = best[:0]
			for idx := range u.source.Patterns() {
				if _, ok := used[idx]; ok {
					best = append(best, idx)
				}
			}
		}
		if len(best) == len(u.symbols) {
			break
		}
	}

	return best, best != nil
}
