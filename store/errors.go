package store

import "errors"

var (
	// ErrNotFound indicates a missing set or federation.
	ErrNotFound = errors.New("store: not found")

	// ErrChecksumMismatch indicates a stored pattern failed its CRC-8 check.
	ErrChecksumMismatch = errors.New("store: checksum mismatch")

	// ErrBadName indicates an empty name or one containing '/'.
	ErrBadName = errors.New("store: invalid name")

	// ErrNilSet indicates a nil pattern set.
	ErrNilSet = errors.New("store: nil pattern set")

	// ErrNoPath indicates a persistent store opened without a directory.
	ErrNoPath = errors.New("store: path is required for persistent store")
)
