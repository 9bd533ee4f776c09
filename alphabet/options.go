package alphabet

import (
	"log/slog"

	"github.com/katalvlaran/relmatch/parallel"
)

// Option configures a Unit before creation.
type Option func(o *options)

type options struct {
	logger *slog.Logger
	limits parallel.Limits
}

func defaultOptions() options {
	return options{
		logger: slog.Default(),
		limits: parallel.DefaultLimits(),
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLimits sizes the per-symbol fan-out used by Test.
func WithLimits(l parallel.Limits) Option {
	return func(o *options) { o.limits = l }
}
