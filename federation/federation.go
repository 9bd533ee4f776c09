package federation

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
	"unicode"

	"github.com/katalvlaran/relmatch/alphabet"
	"github.com/katalvlaran/relmatch/parallel"
	"github.com/katalvlaran/relmatch/pattern"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("relmatch.federation")

// Learn and Verify outcomes reported to metrics.
const (
	outcomeLearned    = "learned"
	outcomeNoUnit     = "no_unit"
	outcomeNotActual  = "not_actual"
	outcomeError      = "error"
	outcomeRestored   = "restored"
	outcomeAccepted   = "accepted"
	outcomeMismatched = "mismatched"
)

// Federation is one baseline unit plus the units derived from it.
type Federation struct {
	mu       sync.RWMutex
	baseline *alphabet.Unit
	units    []*alphabet.Unit
	required map[rune]struct{}
	matcher  alphabet.Matcher
	opts     options
	metrics  *Metrics
}

// New builds the baseline unit from set and records its required
// character set. Both fan-out limits are validated up front.
// Other errors are those of alphabet.New.
func New(set *pattern.Set, m alphabet.Matcher, opts ...Option) (*Federation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.limits.Validate(); err != nil {
		return nil, fmt.Errorf("federation limits: %w", err)
	}
	if err := o.unitLimits.Validate(); err != nil {
		return nil, fmt.Errorf("unit limits: %w", err)
	}
	base, err := alphabet.New(set, m,
		alphabet.WithLogger(o.logger),
		alphabet.WithLimits(o.unitLimits),
	)
	if err != nil {
		return nil, err
	}

	required := make(map[rune]struct{}, base.Len())
	for _, c := range base.String() {
		required[unicode.ToUpper(c)] = struct{}{}
	}

	return &Federation{
		baseline: base,
		required: required,
		matcher:  m,
		opts:     o,
		metrics:  newMetrics(o.registerer, o.name),
	}, nil
}

// Query returns the baseline alphabet string.
func (f *Federation) Query() string { return f.baseline.String() }

// Baseline returns the baseline unit. Units are immutable.
func (f *Federation) Baseline() *alphabet.Unit { return f.baseline }

// Units returns a snapshot of the derived units in learn order.
func (f *Federation) Units() []*alphabet.Unit {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Clone(f.units)
}

// IsActual reports whether the baseline accepts req.
func (f *Federation) IsActual(req alphabet.Request) bool {
	return f.baseline.IsActual(req)
}

// Learn grows the baseline with req and appends the resulting unit.
// It reports false when the grow produced no unit.
//
// Errors:
//   - alphabet.ErrNilRequest for a nil request.
//   - ErrNotActual when the baseline rejects req.
//   - any error of alphabet.Unit.Grow.
func (f *Federation) Learn(ctx context.Context, req alphabet.Request) (bool, error) {
	if req == nil {
		return false, alphabet.ErrNilRequest
	}
	ctx, span := tracer.Start(ctx, "federation.Learn",
		trace.WithAttributes(
			attribute.String("federation", f.opts.name),
			attribute.String("alphabet", f.Query()),
		),
	)
	defer span.End()

	if !f.baseline.IsActual(req) {
		f.metrics.recordLearn(outcomeNotActual, len(f.Units()))
		err := fmt.Errorf("%w: %q", ErrNotActual, f.Query())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	next, err := f.baseline.Grow(ctx, req)
	if err != nil {
		f.metrics.recordLearn(outcomeError, len(f.Units()))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}
	if next == nil {
		f.metrics.recordLearn(outcomeNoUnit, len(f.Units()))
		f.opts.logger.Info("learn produced no unit",
			slog.String("federation", f.opts.name),
		)
		span.SetStatus(codes.Ok, "")
		return false, nil
	}

	n := f.add(next)
	f.metrics.recordLearn(outcomeLearned, n)
	f.opts.logger.Info("unit learned",
		slog.String("federation", f.opts.name),
		slog.String("unit", next.ID().String()),
		slog.String("alphabet", next.String()),
		slog.Int("units", n),
	)
	span.SetAttributes(attribute.Int("units", n))
	span.SetStatus(codes.Ok, "")

	return true, nil
}

// Restore appends a unit built directly from set, as when reloading a
// persisted federation. It does not consult any request.
func (f *Federation) Restore(set *pattern.Set) (*alphabet.Unit, error) {
	u, err := alphabet.New(set, f.matcher,
		alphabet.WithLogger(f.opts.logger),
		alphabet.WithLimits(f.opts.unitLimits),
	)
	if err != nil {
		return nil, err
	}
	f.metrics.recordLearn(outcomeRestored, f.add(u))

	return u, nil
}

func (f *Federation) add(u *alphabet.Unit) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.units = append(f.units, u)

	return len(f.units)
}

// Verify reports whether the derived units together recognize q as
// exactly the required character set.
//
// Every derived unit tests q concurrently; each unit's result lands in its
// own slot and the union is built after the fan-out. A unit failure stops
// the remaining tests and is returned as a *parallel.WorkerError.
//
// Errors:
//   - ErrNilPattern for a nil q.
//   - ErrNoUnits when nothing has been learned yet.
func (f *Federation) Verify(ctx context.Context, q *pattern.Pattern) (bool, error) {
	_, ok, err := f.Verdict(ctx, q)

	return ok, err
}

// Verdict is Verify that also returns the sorted union it judged, from the
// same single fan-out. Errors match Verify.
func (f *Federation) Verdict(ctx context.Context, q *pattern.Pattern) (string, bool, error) {
	start := time.Now()
	got, err := f.recognized(ctx, q, "federation.Verify")
	if err != nil {
		f.metrics.recordVerify(outcomeError, start)
		return "", false, err
	}
	ok := sameSet(got, f.required)
	outcome := outcomeMismatched
	if ok {
		outcome = outcomeAccepted
	}
	f.metrics.recordVerify(outcome, start)
	f.opts.logger.Debug("verify finished",
		slog.String("federation", f.opts.name),
		slog.Int("recognized", len(got)),
		slog.Int("required", len(f.required)),
		slog.Bool("accepted", ok),
	)

	return sorted(got), ok, nil
}

// Recognized returns the union of characters the derived units recognize
// in q, sorted. Errors match Verify.
func (f *Federation) Recognized(ctx context.Context, q *pattern.Pattern) (string, error) {
	got, err := f.recognized(ctx, q, "federation.Recognized")
	if err != nil {
		return "", err
	}

	return sorted(got), nil
}

func sorted(set map[rune]struct{}) string {
	out := make([]rune, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	slices.Sort(out)

	return string(out)
}

func (f *Federation) recognized(ctx context.Context, q *pattern.Pattern, op string) (map[rune]struct{}, error) {
	if q == nil {
		return nil, ErrNilPattern
	}
	units := f.Units()
	if len(units) == 0 {
		return nil, ErrNoUnits
	}
	ctx, span := tracer.Start(ctx, op,
		trace.WithAttributes(
			attribute.String("federation", f.opts.name),
			attribute.Int("units", len(units)),
		),
	)
	defer span.End()

	results, err := parallel.Map(ctx, len(units), f.opts.limits, func(ctx context.Context, i int) (string, error) {
		return units[i].Test(ctx, q)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	union := make(map[rune]struct{}, len(f.required))
	for _, s := range results {
		for _, c := range s {
			union[unicode.ToUpper(c)] = struct{}{}
		}
	}
	span.SetAttributes(attribute.Int("recognized", len(union)))
	span.SetStatus(codes.Ok, "")

	return union, nil
}

func sameSet(a, b map[rune]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if _, ok := b[c]; !ok {
			return false
		}
	}

	return true
}
