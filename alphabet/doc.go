// Package alphabet implements the alphabet unit: a frozen pattern set with
// a dense internal symbol per pattern and a mapping from external semantic
// characters to those symbols.
//
// A Unit answers three questions:
//
//   - Translate: which internal symbols does a human query string name?
//   - Grow: which new patterns does a Request reveal? The result is a new
//     Unit; the receiver is never mutated.
//   - Test: which of the unit's characters does a query pattern match?
//     Symbols are checked concurrently with stop-on-first-error semantics
//     (see package parallel).
//
// Matching itself is delegated to a Matcher. The package ships only the
// interface; package reflex provides an exact reference implementation.
//
// Symbol assignment:
//
//	pattern k of the source set → Symbol(k), working tag Symbol(k).Tag()
//	alphabet string             → Label() of every pattern, in order
//	label → symbol map          → insert-or-replace, last write wins
//
// Duplicate labels therefore collapse to the later index in the map while
// the alphabet string keeps one entry per pattern.
//
// Selections enumerates the N^N multisets of source patterns whose labels
// cover the unit's alphabet. It is a standalone capability; Grow does not
// use it.
package alphabet
