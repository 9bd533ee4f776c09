// Package glyph provides ready-made 5×7 raster patterns for the Latin
// capitals A–Z and the digits 0–9.
//
// Each glyph becomes a pattern.Pattern whose tag is the character itself,
// so a Set built here can seed an alphabet unit or a federation directly:
//
//	set, _ := glyph.Set("ABC")
//	u, _ := alphabet.New(set, reflex.Exact{})
//
// Options:
//   - WithInk(v)   sign value of ink cells (default 1; background is 0).
//   - WithScale(k) replicate every cell into a k×k block (default 1).
//
// Lookups are case-insensitive.
package glyph
