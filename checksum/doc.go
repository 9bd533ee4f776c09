// Package checksum computes an 8-bit digest of a pattern for identity and
// deduplication checks.
//
// Algorithm:
//
//	Table-driven CRC-8, polynomial x⁸+x⁵+x⁴+1 (0x31), MSB-first, initial
//	value 0xFF, no final XOR. The 256-entry table is built once at package
//	initialization.
//
// Digest order for a pattern:
//  1. Cell values row-major (rows outer, columns inner), each reduced to its
//     low 8 bits.
//  2. Tag runes in order, each reduced to its low 8 bits.
//
// Complexity: O(W×H + len(tag)) time, O(1) memory.
//
// Sum is pure and deterministic; there are no error conditions.
package checksum
