package reflex

import "errors"

var (
	// ErrNilState indicates a nil state or container.
	ErrNilState = errors.New("reflex: state is nil")
	// ErrNilTarget indicates a nil target or query pattern.
	ErrNilTarget = errors.New("reflex: pattern is nil")
	// ErrEmptyQuery indicates an empty internal query.
	ErrEmptyQuery = errors.New("reflex: query is empty")
)
