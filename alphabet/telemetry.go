package alphabet

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for alphabet operations.
var (
	tracer = otel.Tracer("relmatch.alphabet")
	meter  = otel.Meter("relmatch.alphabet")
)

// Metrics for alphabet operations.
var (
	testLatency    metric.Float64Histogram
	symbolsChecked metric.Int64Counter
	growTotal      metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		testLatency, err = meter.Float64Histogram(
			"alphabet_test_duration_seconds",
			metric.WithDescription("Duration of unit Test calls"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		symbolsChecked, err = meter.Int64Counter(
			"alphabet_symbols_checked_total",
			metric.WithDescription("Symbols evaluated by unit Test calls"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		growTotal, err = meter.Int64Counter(
			"alphabet_grow_total",
			metric.WithDescription("Grow calls by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func recordTest(ctx context.Context, start time.Time, symbols int, success bool) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	testLatency.Record(ctx, time.Since(start).Seconds(), attrs)
	symbolsChecked.Add(ctx, int64(symbols), attrs)
}

func recordGrow(ctx context.Context, outcome string) {
	if initMetrics() != nil {
		return
	}
	growTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
