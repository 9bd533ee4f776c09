package parallel

import (
	"errors"
	"fmt"
)

// Sentinel errors for fan-out configuration.
var (
	// ErrNegativeCount indicates a negative task count.
	ErrNegativeCount = errors.New("parallel: task count must be non-negative")
	// ErrNilTask indicates a nil task function.
	ErrNilTask = errors.New("parallel: task function is nil")
	// ErrBadLimits indicates Limits failed validation.
	ErrBadLimits = errors.New("parallel: invalid limits")
)

// WorkerError is the single combined error surfaced after a stopped fan-out.
// Err is the failure that triggered the stop; StopErr, when non-nil, is the
// failure raised while stopping.
type WorkerError struct {
	Index   int
	Err     error
	StopErr error
}

func (e *WorkerError) Error() string {
	if e.StopErr == nil {
		return e.Err.Error()
	}

	return e.Err.Error() + "\n" + e.StopErr.Error()
}

// Unwrap exposes both the cause and the stop failure to errors.Is / errors.As.
func (e *WorkerError) Unwrap() []error {
	if e.StopErr == nil {
		return []error{e.Err}
	}

	return []error{e.Err, e.StopErr}
}

// PanicError wraps a value recovered from a panicking task or stop hook.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel: task panicked: %v", e.Value)
}
