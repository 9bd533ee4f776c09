// Package relmatch is a relation-matching engine over small pattern grids.
//
// What is relmatch?
//
//	A library and CLI that bind 2D sign-value patterns to human characters,
//	grow those bindings from discovery requests, and check whether a family
//	of derived bindings jointly recognizes a query pattern.
//
// Packages:
//
//	pattern/    - Pattern grid (cells + tag) and the ordered Set container
//	checksum/   - CRC-8 (poly 0x31, init 0xFF) over a pattern's cells and tag
//	parallel/   - bounded fan-out with stop-on-first-error semantics
//	alphabet/   - Unit: symbol mapping, Translate, Grow, Test, coverage
//	reflex/     - Exact, the structural reference Matcher
//	federation/ - baseline + derived units; Learn and Verify
//	glyph/      - built-in 5×7 rasters for A–Z and 0–9
//	config/     - YAML + environment configuration
//	store/      - BadgerDB persistence with per-pattern checksums
//	cmd/relmatch - command-line front end
//
// Quick example:
//
//	set, _ := glyph.Set("LR")
//	f, _ := federation.New(set, reflex.Exact{})
//	o, _ := glyph.Pattern('O')
//	f.Learn(ctx, alphabet.NewRequest(alphabet.Query{Target: o, Text: "l"}))
//	f.Learn(ctx, alphabet.NewRequest(alphabet.Query{Target: o, Text: "r"}))
//	ok, _ := f.Verify(ctx, o) // true: the two units name L and R together
//
//	go get github.com/katalvlaran/relmatch
package relmatch
