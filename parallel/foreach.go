package parallel

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Map runs fn for every index in [0, n) and returns the results in index
// order. On the first failure it stops the fan-out and returns a single
// *WorkerError; the partial results are discarded and nil is returned.
//
// If ctx is cancelled by the caller before any task fails, Map returns
// ctx.Err().
//
// Complexity: O(n) tasks, at most l.MaxWorkers running at once.
func Map[T any](ctx context.Context, n int, l Limits, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if fn == nil {
		return nil, ErrNilTask
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		out   = make([]T, n)
		first atomic.Pointer[WorkerError]
	)

	task := func(i int) {
		// Check before starting.
		if runCtx.Err() != nil {
			return
		}
		v, err := call(runCtx, fn, i)
		if err != nil {
			we := &WorkerError{Index: i, Err: err}
			if !first.CompareAndSwap(nil, we) {
				return
			}
			cancel(err)
			if l.OnStop != nil {
				we.StopErr = stop(l.OnStop, err)
			}
			l.logger().Debug("fan-out stopped",
				slog.Int("index", i),
				slog.Int("tasks", n),
				slog.String("cause", err.Error()),
				slog.Bool("stop_failed", we.StopErr != nil),
			)

			return
		}
		// Check after completing.
		if runCtx.Err() != nil {
			return
		}
		out[i] = v
	}

	if l.inline(n) {
		for i := 0; i < n && runCtx.Err() == nil; i++ {
			task(i)
		}
	} else {
		var g errgroup.Group
		if l.MaxWorkers > 0 {
			g.SetLimit(l.MaxWorkers)
		}
		for i := 0; i < n; i++ {
			if runCtx.Err() != nil {
				break
			}
			g.Go(func() error {
				task(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	if we := first.Load(); we != nil {
		return nil, we
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ForEach runs fn for every index in [0, n) with the same stop semantics
// as Map.
func ForEach(ctx context.Context, n int, l Limits, fn func(ctx context.Context, i int) error) error {
	if fn == nil {
		return ErrNilTask
	}
	_, err := Map(ctx, n, l, func(ctx context.Context, i int) (struct{}, error) {
		return struct{}{}, fn(ctx, i)
	})

	return err
}

// call invokes fn, converting a panic into *PanicError.
func call[T any](ctx context.Context, fn func(context.Context, int) (T, error), i int) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	return fn(ctx, i)
}

// stop runs the stop hook, converting a panic into *PanicError.
func stop(hook func(error) error, cause error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	return hook(cause)
}
