package glyph

import "errors"

var (
	// ErrUnsupported indicates a character with no bitmap.
	ErrUnsupported = errors.New("glyph: unsupported character")
	// ErrBadScale indicates a non-positive scale factor.
	ErrBadScale = errors.New("glyph: scale must be positive")
	// ErrEmpty indicates an empty character list.
	ErrEmpty = errors.New("glyph: no characters")
)
