package checksum

import (
	"github.com/katalvlaran/relmatch/pattern"
	"github.com/sigurn/crc8"
)

const (
	// Polynomial is the CRC-8 generator polynomial (x⁸ omitted).
	Polynomial = 0x31
	// Init is the register value before the first byte is folded in.
	Init = 0xFF
)

// Params describes the CRC-8 variant: MSB-first, no reflection, no final XOR.
var Params = crc8.Params{
	Poly:   Polynomial,
	Init:   Init,
	RefIn:  false,
	RefOut: false,
	XorOut: 0x00,
	Check:  0xF7,
	Name:   "CRC-8/NRSC-5",
}

// crcTable is the precomputed CRC-8 table for Params.
var crcTable = crc8.MakeTable(Params)

// Table returns a copy of the lookup table.
func Table() [256]uint8 {
	var t [256]uint8
	for i := range t {
		// With no input reflection one byte from a zero register is the entry.
		t[i] = crc8.Update(0, []byte{byte(i)}, crcTable)
	}

	return t
}

// Update folds data into crc and returns the new register value.
func Update(crc uint8, data []byte) uint8 {
	return crc8.Update(crc, data, crcTable)
}

// Checksum returns the CRC-8 of data starting from Init.
func Checksum(data []byte) uint8 {
	return crc8.Checksum(data, crcTable)
}

// Sum returns the CRC-8 of p: cell values row-major, then tag runes.
func Sum(p *pattern.Pattern) uint8 {
	buf := make([]byte, 0, p.Width()*p.Height()+len(p.Tag()))
	p.Each(func(_, _ int, v pattern.SignValue) {
		buf = append(buf, uint8(v))
	})
	for _, r := range p.Tag() {
		buf = append(buf, uint8(r))
	}

	return Checksum(buf)
}
