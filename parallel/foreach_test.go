// File: parallel/foreach_test.go
package parallel

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// TestMap_IndexOrder ensures results follow index order even when tasks
// finish out of order.
func TestMap_IndexOrder(t *testing.T) {
	const n = 64
	got, err := Map(context.Background(), n, Limits{Threshold: 2, MaxWorkers: 8},
		func(_ context.Context, i int) (int, error) {
			time.Sleep(time.Duration(n-i) * 10 * time.Microsecond)
			return i * i, nil
		})
	require.NoError(t, err)
	require.Len(t, got, n)
	for i, v := range got {
		assert.Equal(t, i*i, v)
	}
}

// TestMap_RespectsMaxWorkers tracks peak concurrency.
func TestMap_RespectsMaxWorkers(t *testing.T) {
	var running, peak atomic.Int32
	err := ForEach(context.Background(), 40, Limits{Threshold: 2, MaxWorkers: 3},
		func(context.Context, int) error {
			cur := running.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			time.Sleep(200 * time.Microsecond)
			running.Add(-1)
			return nil
		})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

// TestForEach_SingleFailure makes exactly one of K tasks fail and expects
// one error carrying that failure.
func TestForEach_SingleFailure(t *testing.T) {
	const k = 32
	err := ForEach(context.Background(), k, DefaultLimits(), func(_ context.Context, i int) error {
		if i == 7 {
			return errBoom
		}
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)

	var we *WorkerError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, 7, we.Index)
	assert.Nil(t, we.StopErr)
	assert.Equal(t, "boom", err.Error())
}

// TestForEach_StopFailureJoined checks that a failing stop hook is
// preserved next to the cause.
func TestForEach_StopFailureJoined(t *testing.T) {
	errStop := errors.New("stop failed")
	var calls atomic.Int32
	l := Sequential()
	l.OnStop = func(cause error) error {
		calls.Add(1)
		assert.ErrorIs(t, cause, errBoom)
		return errStop
	}

	err := ForEach(context.Background(), 5, l, func(_ context.Context, i int) error {
		if i == 2 {
			return errBoom
		}
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, "boom\nstop failed", err.Error())
	assert.Equal(t, int32(1), calls.Load())
}

// TestForEach_NoNewTasksAfterStop runs inline so ordering is deterministic:
// tasks after the failing index must never start.
func TestForEach_NoNewTasksAfterStop(t *testing.T) {
	var started []int
	err := ForEach(context.Background(), 10, Sequential(), func(_ context.Context, i int) error {
		started = append(started, i)
		if i == 3 {
			return errBoom
		}
		return nil
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{0, 1, 2, 3}, started)
}

// TestForEach_OnlyFirstErrorWins fails every task; exactly one cause is kept
// and the stop hook runs once.
func TestForEach_OnlyFirstErrorWins(t *testing.T) {
	var stops atomic.Int32
	l := Limits{Threshold: 2, MaxWorkers: 16, OnStop: func(error) error {
		stops.Add(1)
		return nil
	}}
	err := ForEach(context.Background(), 50, l, func(_ context.Context, i int) error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, int32(1), stops.Load())
	assert.Equal(t, 1, strings.Count(err.Error(), "boom"))
}

// TestMap_PanicRecovered turns a panic into *PanicError.
func TestMap_PanicRecovered(t *testing.T) {
	_, err := Map(context.Background(), 4, DefaultLimits(), func(_ context.Context, i int) (int, error) {
		if i == 1 {
			panic("kaput")
		}
		return i, nil
	})
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "kaput", pe.Value)
	assert.NotEmpty(t, pe.Stack)
}

// TestMap_PartialResultsDiscarded verifies a failed fan-out returns no data.
func TestMap_PartialResultsDiscarded(t *testing.T) {
	got, err := Map(context.Background(), 3, Sequential(), func(_ context.Context, i int) (int, error) {
		if i == 2 {
			return 0, errBoom
		}
		return i + 1, nil
	})
	require.Error(t, err)
	assert.Nil(t, got)
}

// TestMap_CallerCancellation returns the caller's context error.
func TestMap_CallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Map(ctx, 3, DefaultLimits(), func(context.Context, int) (int, error) { return 0, nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMap_Validation(t *testing.T) {
	ctx := context.Background()
	_, err := Map[int](ctx, -1, DefaultLimits(), func(context.Context, int) (int, error) { return 0, nil })
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = Map[int](ctx, 1, DefaultLimits(), nil)
	assert.ErrorIs(t, err, ErrNilTask)

	_, err = Map(ctx, 1, Limits{MaxWorkers: -1}, func(context.Context, int) (int, error) { return 0, nil })
	assert.ErrorIs(t, err, ErrBadLimits)

	got, err := Map(ctx, 0, DefaultLimits(), func(context.Context, int) (int, error) { return 0, nil })
	require.NoError(t, err)
	assert.Empty(t, got)
}

func BenchmarkForEach(b *testing.B) {
	l := DefaultLimits()
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ForEach(ctx, 256, l, func(context.Context, int) error { return nil })
	}
}
