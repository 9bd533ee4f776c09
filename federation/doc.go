// Package federation aggregates derived alphabet units behind one baseline.
//
// What:
//
//	A Federation owns a baseline alphabet.Unit, the list of units derived
//	from it by Learn, and the required character set: the upper-cased,
//	deduplicated labels of the baseline.
//
//	Learn(ctx, req)  grows the baseline with req and keeps the result.
//	Verify(ctx, q)   tests q against every derived unit in parallel and
//	                 reports whether the union of recognized characters is
//	                 exactly the required set.
//
// Why:
//
//	Each derived unit knows only part of the relation. A query pattern is
//	accepted as a whole only when the units together name every character
//	of the baseline alphabet.
//
// Errors:
//
//   - ErrNotActual   if the baseline rejects a Learn request.
//   - ErrNoUnits     if Verify is called before any successful Learn.
//   - ErrNilPattern  for a nil query pattern.
//
// Concurrency:
//
//	Learn and Verify may be called from different goroutines. Verify works
//	on a snapshot of the derived list taken under a read lock; Learn grows
//	outside the lock and appends under the write lock.
//
// Complexity:
//
//	Verify: O(U × N) matcher calls for U units of N symbols each, bounded
//	by the configured Limits.
package federation
