package pattern

import "errors"

// Sentinel errors for pattern operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("pattern: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pattern: all rows must have the same length")
	// ErrEmptyTag indicates a blank tag.
	ErrEmptyTag = errors.New("pattern: tag must not be empty")
	// ErrNilPattern indicates a nil pattern where one is required.
	ErrNilPattern = errors.New("pattern: nil pattern")
	// ErrIndexOutOfRange indicates a cell or set index outside valid bounds.
	ErrIndexOutOfRange = errors.New("pattern: index out of range")
)
