// Package pattern models the tagged 2-D sign grids that the relation engine
// matches against, and the ordered containers that hold them.
//
// What:
//
//   - Pattern wraps a rectangular grid of SignValue cells plus a tag string.
//     Only the first rune of the tag carries meaning (its Label).
//   - Set is an ordered, append-only collection of patterns. Positions are
//     significant: alphabet units assign internal symbols by index.
//
// Why:
//
//   - Patterns are value-like. Rename never touches the receiver; it returns a
//     new Pattern sharing nothing mutable with the original.
//   - Sets are frozen by convention once handed to a unit, so concurrent
//     readers need no locks.
//
// Complexity:
//
//   - New, Rename, Cells: O(W×H) time and memory.
//   - SameCells:          O(W×H).
//   - Set.EquivalentTo:   O(N×W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrEmptyTag: tag is empty or whitespace only.
//   - ErrNilPattern: a nil *Pattern was passed to a Set.
//   - ErrIndexOutOfRange: Set.At or Pattern.At outside bounds.
package pattern
