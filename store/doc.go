// Package store persists pattern sets and federation snapshots in BadgerDB.
//
// Layout:
//
//	set/<name>                   one named pattern set
//	fed/<name>/baseline          baseline set of a federation
//	fed/<name>/unit/<000000i>    derived unit i, in learn order
//
// Every value is a JSON list of Records. Each Record carries the CRC-8 of
// its pattern (package checksum); a record whose checksum does not match
// its decoded pattern is rejected with ErrChecksumMismatch.
//
// Names are non-empty and must not contain '/'.
//
// A Store is safe for concurrent use.
package store
