package alphabet

import (
	"fmt"
	"math"
	"strconv"
)

// MaxSymbols is the size of the internal symbol space.
const MaxSymbols = math.MaxUint16 + 1

// Symbol is the dense internal identifier of a pattern within a unit.
type Symbol uint16

// Tag renders s as a working tag. Tags are decimal so that every symbol in
// the space round-trips through a Go string.
func (s Symbol) Tag() string {
	return strconv.Itoa(int(s))
}

// ParseSymbol inverts Symbol.Tag.
func ParseSymbol(tag string) (Symbol, error) {
	v, err := strconv.Atoi(tag)
	if err != nil || v < 0 || v >= MaxSymbols {
		return 0, fmt.Errorf("%w: %q", ErrBadSymbolTag, tag)
	}

	return Symbol(v), nil
}
