package alphabet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/relmatch/pattern"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Grow outcomes reported to metrics.
const (
	growNotActual  = "not_actual"
	growNoPatterns = "no_patterns"
	growRejected   = "rejected"
	growCreated    = "created"
	growFailed     = "failed"
)

// Grow derives a new Unit from the patterns req reveals.
//
// Steps:
//  1. If req does not accept this unit's alphabet, return (nil, nil).
//  2. Translate every query. An untranslatable query or a nil target is a
//     malformed request: ErrUntranslatable / ErrNilPattern, before any
//     matcher call.
//  3. For each pair in order, ask the matcher to extend a private copy of
//     the working set. A nil extension contributes nothing.
//  4. Patterns beyond the working set's length are renamed back to the
//     external character of their symbol and collected.
//  5. If anything was collected and req still accepts the labels of the
//     combined set (source ∪ collected), build and return a new Unit.
//     Otherwise return (nil, nil).
//
// The receiver is never mutated.
func (u *Unit) Grow(ctx context.Context, req Request) (*Unit, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	ctx, span := tracer.Start(ctx, "alphabet.Grow",
		trace.WithAttributes(
			attribute.String("unit", u.id.String()),
			attribute.String("alphabet", u.String()),
		),
	)
	defer span.End()

	next, outcome, err := u.grow(ctx, req)
	recordGrow(ctx, outcome)
	span.SetAttributes(attribute.String("outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")

	u.opts.logger.Debug("grow finished",
		slog.String("unit", u.id.String()),
		slog.String("outcome", outcome),
	)

	return next, nil
}

func (u *Unit) grow(ctx context.Context, req Request) (*Unit, string, error) {
	if !req.IsActual(u.String()) {
		return nil, growNotActual, nil
	}

	queries := req.Queries()
	internal := make([][]Symbol, len(queries))
	for i, q := range queries {
		if q.Target == nil {
			return nil, growFailed, fmt.Errorf("%w: query %d target", ErrNilPattern, i)
		}
		syms, ok := u.Translate(q.Text)
		if !ok {
			return nil, growFailed, fmt.Errorf("%w: query %d %q against %q", ErrUntranslatable, i, q.Text, u.String())
		}
		internal[i] = syms
	}

	var found []*pattern.Pattern
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return nil, growFailed, err
		}
		ext, err := u.matcher.Extend(ctx, u.working.Clone(), q.Target, internal[i])
		if err != nil {
			return nil, growFailed, fmt.Errorf("alphabet: extend query %d %q: %w", i, q.Text, err)
		}
		if ext == nil {
			continue
		}
		ps, err := u.discovered(ext)
		if err != nil {
			return nil, growFailed, err
		}
		found = append(found, ps...)
	}
	if len(found) == 0 {
		return nil, growNoPatterns, nil
	}

	combined := u.source.Clone()
	if err := combined.AddRange(found); err != nil {
		return nil, growFailed, err
	}
	if !req.IsActual(combined.Labels()) {
		return nil, growRejected, nil
	}
	next, err := newUnit(combined, u.matcher, u.opts)
	if err != nil {
		return nil, growFailed, err
	}

	return next, growCreated, nil
}

// discovered returns the patterns ext holds beyond the working set, each
// renamed to the external character of the symbol it was tagged with.
func (u *Unit) discovered(ext *pattern.Set) ([]*pattern.Pattern, error) {
	start := u.working.Len()
	if ext.Len() <= start {
		return nil, nil
	}
	out := make([]*pattern.Pattern, 0, ext.Len()-start)
	for k := start; k < ext.Len(); k++ {
		p, err := ext.At(k)
		if err != nil {
			return nil, err
		}
		sym, err := ParseSymbol(p.Tag())
		if err != nil {
			return nil, err
		}
		label, err := u.Label(sym)
		if err != nil {
			return nil, err
		}
		r, err := p.Rename(string(label))
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}
