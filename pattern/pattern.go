package pattern

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SignValue is the discrete value stored in one grid cell.
type SignValue int

// Pattern is an immutable grid of sign values with a tag.
// cells is stored row-major: cells[y*width + x].
type Pattern struct {
	width, height int
	cells         []SignValue
	tag           string
}

// New constructs a Pattern from a non-empty, rectangular 2D slice indexed
// as values[y][x]. It deep-copies the input so later mutation of values
// does not leak into the pattern.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrEmptyTag for a blank tag.
// Complexity: O(W×H) time and memory.
func New(values [][]SignValue, tag string) (*Pattern, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if strings.TrimSpace(tag) == "" {
		return nil, ErrEmptyTag
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]SignValue, 0, w*h)
	for y := 0; y < h; y++ {
		cells = append(cells, values[y]...)
	}

	return &Pattern{width: w, height: h, cells: cells, tag: tag}, nil
}

// FromInts is a convenience wrapper around New for plain integer grids.
func FromInts(values [][]int, tag string) (*Pattern, error) {
	conv := make([][]SignValue, len(values))
	for y, row := range values {
		conv[y] = make([]SignValue, len(row))
		for x, v := range row {
			conv[y][x] = SignValue(v)
		}
	}

	return New(conv, tag)
}

// MustNew is like New but panics on error. Intended for fixtures and tests.
func MustNew(values [][]int, tag string) *Pattern {
	p, err := FromInts(values, tag)
	if err != nil {
		panic(err)
	}

	return p
}

// Width returns the number of columns.
func (p *Pattern) Width() int { return p.width }

// Height returns the number of rows.
func (p *Pattern) Height() int { return p.height }

// Tag returns the full tag string.
func (p *Pattern) Tag() string { return p.tag }

// Label returns the upper-cased first rune of the tag: the external
// semantic character of the pattern.
func (p *Pattern) Label() rune {
	r, _ := utf8.DecodeRuneInString(p.tag)

	return unicode.ToUpper(r)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (p *Pattern) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// At returns the sign value at column x, row y.
// Returns ErrIndexOutOfRange for coordinates outside the grid.
func (p *Pattern) At(x, y int) (SignValue, error) {
	if !p.InBounds(x, y) {
		return 0, ErrIndexOutOfRange
	}

	return p.cells[p.index(x, y)], nil
}

// Cells returns a deep copy of the grid as values[y][x].
// Complexity: O(W×H).
func (p *Pattern) Cells() [][]SignValue {
	out := make([][]SignValue, p.height)
	for y := 0; y < p.height; y++ {
		out[y] = make([]SignValue, p.width)
		copy(out[y], p.cells[y*p.width:(y+1)*p.width])
	}

	return out
}

// Each calls fn for every cell in row-major order (rows outer, columns inner).
func (p *Pattern) Each(fn func(x, y int, v SignValue)) {
	for i, v := range p.cells {
		x, y := p.Coordinate(i)
		fn(x, y, v)
	}
}

// Rename returns a new pattern with identical cells and the given tag.
// The receiver is left untouched.
func (p *Pattern) Rename(tag string) (*Pattern, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, ErrEmptyTag
	}
	cells := make([]SignValue, len(p.cells))
	copy(cells, p.cells)

	return &Pattern{width: p.width, height: p.height, cells: cells, tag: tag}, nil
}

// SameCells reports whether o has the same dimensions and cell values.
// Tags are ignored.
// Complexity: O(W×H).
func (p *Pattern) SameCells(o *Pattern) bool {
	if o == nil || p.width != o.width || p.height != o.height {
		return false
	}
	for i, v := range p.cells {
		if o.cells[i] != v {
			return false
		}
	}

	return true
}

// Equal reports whether o has the same cells and the same tag.
func (p *Pattern) Equal(o *Pattern) bool {
	return p.SameCells(o) && p.tag == o.tag
}

// String renders the grid one row per line, cells separated by spaces,
// preceded by the tag. Useful in test failure output.
func (p *Pattern) String() string {
	var sb strings.Builder
	sb.WriteString(p.tag)
	for y := 0; y < p.height; y++ {
		sb.WriteByte('\n')
		for x := 0; x < p.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(p.cells[p.index(x, y)])))
		}
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (p *Pattern) index(x, y int) int {
	return y*p.width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (p *Pattern) Coordinate(idx int) (x, y int) {
	return idx % p.width, idx / p.width
}
