package alphabet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/relmatch/parallel"
	"github.com/katalvlaran/relmatch/pattern"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Test reports which of the unit's characters q matches.
//
// Every symbol in [0, Len) is checked concurrently through the matcher
// against the working set. Matches are buffered per symbol index and
// joined after the fan-out, so the returned string is ordered by symbol
// index regardless of which worker finishes first.
//
// On the first matcher failure the remaining checks are stopped and a
// single *parallel.WorkerError is returned; no partial result is returned.
//
// Complexity: O(N) matcher calls, at most Limits.MaxWorkers at once.
func (u *Unit) Test(ctx context.Context, q *pattern.Pattern) (string, error) {
	if q == nil {
		return "", ErrNilPattern
	}
	ctx, span := tracer.Start(ctx, "alphabet.Test",
		trace.WithAttributes(
			attribute.String("unit", u.id.String()),
			attribute.Int("symbols", u.Len()),
		),
	)
	defer span.End()

	start := time.Now()
	hits, err := parallel.Map(ctx, u.Len(), u.opts.limits, func(ctx context.Context, k int) (bool, error) {
		ok, err := u.matcher.Recognize(ctx, u.working, q, Symbol(k))
		if err != nil {
			return false, fmt.Errorf("alphabet: recognize symbol %d (%c): %w", k, u.labels[k], err)
		}
		return ok, nil
	})
	recordTest(ctx, start, u.Len(), err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		u.opts.logger.Debug("test stopped",
			slog.String("unit", u.id.String()),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	out := make([]rune, 0, len(hits))
	for k, hit := range hits {
		if hit {
			out = append(out, u.labels[k])
		}
	}
	span.SetAttributes(attribute.Int("matched", len(out)))
	span.SetStatus(codes.Ok, "")

	return string(out), nil
}
