package parallel

import (
	"fmt"
	"log/slog"
	"runtime"
)

const (
	// DefaultThreshold is the smallest fan-out that is run concurrently.
	DefaultThreshold = 2

	// workersPerCPU scales the default worker cap. Each nesting level
	// (federation units, unit symbols) gets its own cap of this size.
	workersPerCPU = 15
)

// Limits sizes a fan-out.
type Limits struct {
	// Threshold is the minimum task count that triggers concurrent
	// execution. Smaller fan-outs run inline. Values < 1 are treated as 1.
	Threshold int

	// MaxWorkers caps the number of tasks running at once.
	// Zero means no cap; negative values are rejected by Validate.
	MaxWorkers int

	// OnStop, if set, runs exactly once when the first task fails, after
	// siblings have been signalled to stop. Its error is surfaced together
	// with the original cause.
	OnStop func(cause error) error

	// Logger receives debug records about stops. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultLimits returns Limits proportional to the available CPUs:
// Threshold=DefaultThreshold, MaxWorkers=NumCPU×15.
func DefaultLimits() Limits {
	return Limits{
		Threshold:  DefaultThreshold,
		MaxWorkers: runtime.NumCPU() * workersPerCPU,
	}
}

// Sequential returns Limits that always run inline. Handy in tests that
// need a fully deterministic execution order.
func Sequential() Limits {
	return Limits{Threshold: int(^uint(0) >> 1), MaxWorkers: 1}
}

// Validate reports whether l is usable.
func (l Limits) Validate() error {
	if l.MaxWorkers < 0 {
		return fmt.Errorf("%w: MaxWorkers=%d", ErrBadLimits, l.MaxWorkers)
	}

	return nil
}

func (l Limits) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}

	return slog.Default()
}

func (l Limits) inline(n int) bool {
	th := l.Threshold
	if th < 1 {
		th = 1
	}

	return n < th || l.MaxWorkers == 1
}
