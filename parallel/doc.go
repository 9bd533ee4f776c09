// Package parallel runs bounded fan-outs with stop-on-first-error semantics.
//
// Model:
//
//   - ForEach and Map start one task per index in [0, n). Concurrency is
//     capped by Limits.MaxWorkers through an errgroup limit; fan-outs
//     smaller than Limits.Threshold run inline on the caller's goroutine.
//   - Every task checks cancellation before it starts and again after it
//     completes. Results produced after a stop are discarded.
//   - The first failing task claims a single-assignment error cell, cancels
//     the shared context (the "stop"), then runs Limits.OnStop. In-flight
//     tasks run to their next check point; no new task is started.
//   - A failure inside OnStop is preserved next to the original cause and
//     surfaced as one *WorkerError whose message joins both with a newline.
//   - Task panics are recovered into *PanicError and treated as failures.
//
// Results are written to a presized per-index buffer, so no lock is taken
// on the hot path and output order always follows index order.
//
// Limits are plain configuration passed in by the caller. Nothing here
// mutates global runtime state.
package parallel
