package alphabet

import "errors"

// Sentinel errors for alphabet operations. Validation failures are returned
// synchronously, before any matcher call or fan-out starts.
var (
	// ErrEmptySet indicates a nil or empty pattern set.
	ErrEmptySet = errors.New("alphabet: pattern set is empty")
	// ErrAlphabetTooLarge indicates more patterns than MaxSymbols.
	ErrAlphabetTooLarge = errors.New("alphabet: pattern set exceeds symbol space")
	// ErrNilMatcher indicates a nil Matcher.
	ErrNilMatcher = errors.New("alphabet: matcher is nil")
	// ErrNilRequest indicates a nil Request.
	ErrNilRequest = errors.New("alphabet: request is nil")
	// ErrNilPattern indicates a nil query or target pattern.
	ErrNilPattern = errors.New("alphabet: pattern is nil")
	// ErrUntranslatable indicates a query with a character outside the alphabet.
	ErrUntranslatable = errors.New("alphabet: query cannot be translated")
	// ErrBadSymbolTag indicates a working tag that does not encode a symbol.
	ErrBadSymbolTag = errors.New("alphabet: tag is not a symbol")
	// ErrForeignSymbol indicates a matcher produced a symbol outside the unit.
	ErrForeignSymbol = errors.New("alphabet: symbol outside unit alphabet")
)
