// Package reflex provides Exact, a deterministic reference Matcher for
// alphabet units.
//
// Exact works purely structurally:
//
//   - Recognize: the equivalence class of a query pattern is every pattern
//     in the container with identical cells. The class recognizes symbol s
//     when any member carries s's tag.
//   - Extend: for every distinct symbol of the query, the target is appended
//     to a copy of the state under that symbol's tag unless an identical
//     (cells and tag) pattern is already present. When nothing is appended
//     the pair produced no extension and Extend returns a nil set.
//
// Exact is stateless and safe for concurrent use.
package reflex
