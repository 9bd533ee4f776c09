package glyph

// bitmaps holds one 5×7 raster per supported character, top row first.
// '1' marks an ink cell.
var bitmaps = map[rune][Height]string{
	'A': {
		".111.",
		"1...1",
		"1...1",
		"11111",
		"1...1",
		"1...1",
		"1...1",
	},
	'B': {
		"1111.",
		"1...1",
		"1...1",
		"1111.",
		"1...1",
		"1...1",
		"1111.",
	},
	'C': {
		".111.",
		"1...1",
		"1....",
		"1....",
		"1....",
		"1...1",
		".111.",
	},
	'D': {
		"1111.",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1111.",
	},
	'E': {
		"11111",
		"1....",
		"1....",
		"111..",
		"1....",
		"1....",
		"11111",
	},
	'F': {
		"11111",
		"1....",
		"1....",
		"111..",
		"1....",
		"1....",
		"1....",
	},
	'G': {
		".111.",
		"1...1",
		"1....",
		"1....",
		"1..11",
		"1...1",
		".111.",
	},
	'H': {
		"1...1",
		"1...1",
		"1...1",
		"11111",
		"1...1",
		"1...1",
		"1...1",
	},
	'I': {
		".111.",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		".111.",
	},
	'J': {
		"....1",
		"....1",
		"....1",
		"....1",
		"....1",
		"1...1",
		".111.",
	},
	'K': {
		"1...1",
		"1..1.",
		"1.1..",
		"11...",
		"1.1..",
		"1..1.",
		"1...1",
	},
	'L': {
		"1....",
		"1....",
		"1....",
		"1....",
		"1....",
		"1....",
		"11111",
	},
	'M': {
		"1...1",
		"11.11",
		"11.11",
		"1.1.1",
		"1...1",
		"1...1",
		"1...1",
	},
	'N': {
		"1...1",
		"11..1",
		"1.1.1",
		"1.1.1",
		"1.1.1",
		"1..11",
		"1...1",
	},
	'O': {
		".111.",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		".111.",
	},
	'P': {
		"1111.",
		"1...1",
		"1...1",
		"1111.",
		"1....",
		"1....",
		"1....",
	},
	'Q': {
		".111.",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1..1.",
		".11.1",
	},
	'R': {
		"1111.",
		"1...1",
		"1...1",
		"1111.",
		"1...1",
		"1...1",
		"1...1",
	},
	'S': {
		".111.",
		"1...1",
		"1....",
		".111.",
		"....1",
		"1...1",
		".111.",
	},
	'T': {
		"11111",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
	},
	'U': {
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		".111.",
	},
	'V': {
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		".1.1.",
		".1.1.",
		"..1..",
	},
	'W': {
		"1...1",
		"1...1",
		"1...1",
		"1...1",
		"1.1.1",
		"1.1.1",
		".1.1.",
	},
	'X': {
		"1...1",
		"1...1",
		".1.1.",
		"..1..",
		".1.1.",
		"1...1",
		"1...1",
	},
	'Y': {
		"1...1",
		"1...1",
		".1.1.",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
	},
	'Z': {
		"11111",
		"....1",
		"...1.",
		"..1..",
		".1...",
		"1....",
		"11111",
	},
	'0': {
		".111.",
		"1...1",
		"1...1",
		"1.1.1",
		"1...1",
		"1...1",
		".111.",
	},
	'1': {
		"..1..",
		".11..",
		"..1..",
		"..1..",
		"..1..",
		"..1..",
		".111.",
	},
	'2': {
		".111.",
		"1...1",
		"....1",
		"...1.",
		"..1..",
		".1...",
		"11111",
	},
	'3': {
		".111.",
		"1...1",
		"....1",
		".111.",
		"....1",
		"1...1",
		".111.",
	},
	'4': {
		"...11",
		"..1.1",
		".1..1",
		"11111",
		"....1",
		"....1",
		"....1",
	},
	'5': {
		"11111",
		"1....",
		"1....",
		"1111.",
		"....1",
		"....1",
		"1111.",
	},
	'6': {
		".111.",
		"1...1",
		"1....",
		"1111.",
		"1...1",
		"1...1",
		".111.",
	},
	'7': {
		"11111",
		"....1",
		"...1.",
		"..1..",
		".1...",
		"1....",
		"1....",
	},
	'8': {
		".111.",
		"1...1",
		"1...1",
		".111.",
		"1...1",
		"1...1",
		".111.",
	},
	'9': {
		".111.",
		"1...1",
		"1...1",
		".1111",
		"....1",
		"....1",
		"..1..",
	},
}
