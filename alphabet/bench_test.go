// File: alphabet/bench_test.go
package alphabet_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/relmatch/alphabet"
	"github.com/katalvlaran/relmatch/parallel"
	"github.com/katalvlaran/relmatch/pattern"
	"github.com/katalvlaran/relmatch/reflex"
)

func benchUnit(b *testing.B, n int, l parallel.Limits) (*alphabet.Unit, *pattern.Pattern) {
	b.Helper()
	ps := make([]*pattern.Pattern, n)
	for i := range ps {
		grid := make([][]int, 7)
		for y := range grid {
			grid[y] = []int{i, y, i ^ y, 0, 1}
		}
		ps[i] = pattern.MustNew(grid, string(rune('A'+i%26)))
	}
	u, err := alphabet.New(mustSet(b, ps...), reflex.Exact{}, alphabet.WithLimits(l))
	if err != nil {
		b.Fatal(err)
	}

	return u, ps[n/2]
}

// BenchmarkTest measures one Test over 36 symbols.
func BenchmarkTest(b *testing.B) {
	for _, tc := range []struct {
		name string
		l    parallel.Limits
	}{
		{"sequential", parallel.Sequential()},
		{"parallel", parallel.DefaultLimits()},
	} {
		b.Run(tc.name, func(b *testing.B) {
			u, q := benchUnit(b, 36, tc.l)
			ctx := context.Background()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := u.Test(ctx, q); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTranslate(b *testing.B) {
	u, _ := benchUnit(b, 26, parallel.Sequential())
	for i := 0; i < b.N; i++ {
		_, _ = u.Translate("thequickbrownfoxjumpsoverthelazydog")
	}
}
