package federation

import "errors"

// Sentinel errors for federation operations.
var (
	// ErrNotActual indicates the baseline unit does not accept a request.
	ErrNotActual = errors.New("federation: request is not actual for the baseline alphabet")

	// ErrNoUnits indicates Verify was called with no derived units.
	ErrNoUnits = errors.New("federation: no units to test against")

	// ErrNilPattern indicates a nil query pattern.
	ErrNilPattern = errors.New("federation: nil query pattern")
)
