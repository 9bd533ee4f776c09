package federation

import (
	"log/slog"

	"github.com/katalvlaran/relmatch/parallel"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Federation before creation.
type Option func(o *options)

type options struct {
	name       string
	logger     *slog.Logger
	limits     parallel.Limits // fan-out across units
	unitLimits parallel.Limits // fan-out across symbols inside each unit
	registerer prometheus.Registerer
}

func defaultOptions() options {
	return options{
		name:       "default",
		logger:     slog.Default(),
		limits:     parallel.DefaultLimits(),
		unitLimits: parallel.DefaultLimits(),
	}
}

// WithName labels the federation in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the structured logger shared with every unit.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLimits sizes the per-unit fan-out of Verify.
func WithLimits(l parallel.Limits) Option {
	return func(o *options) { o.limits = l }
}

// WithUnitLimits sizes the per-symbol fan-out inside every unit's Test.
func WithUnitLimits(l parallel.Limits) Option {
	return func(o *options) { o.unitLimits = l }
}

// WithRegisterer registers the federation's Prometheus collectors on r.
// Without it no collectors are created.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}
