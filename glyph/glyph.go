package glyph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/relmatch/pattern"
)

// Raster size of every glyph before scaling.
const (
	Width  = 5
	Height = 7
)

// supported lists characters in the order Supported reports them.
const supported = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Option customizes glyph rasterization.
type Option func(*config)

type config struct {
	ink   pattern.SignValue
	scale int
}

// WithInk sets the sign value written to ink cells.
func WithInk(v pattern.SignValue) Option {
	return func(c *config) { c.ink = v }
}

// WithScale replicates every cell into a k×k block.
func WithScale(k int) Option {
	return func(c *config) { c.scale = k }
}

// Supported returns every character with a bitmap.
func Supported() string { return supported }

// Pattern rasterizes r. The tag is the upper-cased character.
// Complexity: O(Width×Height×scale²).
func Pattern(r rune, opts ...Option) (*pattern.Pattern, error) {
	cfg := config{ink: 1, scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadScale, cfg.scale)
	}
	r = unicode.ToUpper(r)
	bm, ok := bitmaps[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, r)
	}

	k := cfg.scale
	grid := make([][]pattern.SignValue, Height*k)
	for y := range grid {
		row := bm[y/k]
		grid[y] = make([]pattern.SignValue, Width*k)
		for x := range grid[y] {
			if row[x/k] == '1' {
				grid[y][x] = cfg.ink
			}
		}
	}

	return pattern.New(grid, string(r))
}

// Set rasterizes every character of chars, in order, with the same options.
// Duplicates are kept.
func Set(chars string, opts ...Option) (*pattern.Set, error) {
	if chars == "" {
		return nil, ErrEmpty
	}
	ps := make([]*pattern.Pattern, 0, len(chars))
	for _, c := range chars {
		p, err := Pattern(c, opts...)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}

	return pattern.NewSet(ps...)
}

// Render draws p as text, '#' for non-zero cells and '.' otherwise,
// one line per row.
func Render(p *pattern.Pattern) string {
	var sb strings.Builder
	sb.Grow((p.Width() + 1) * p.Height())
	p.Each(func(x, _ int, v pattern.SignValue) {
		if v != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		if x == p.Width()-1 {
			sb.WriteByte('\n')
		}
	})

	return sb.String()
}
