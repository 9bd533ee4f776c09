package store

import (
	"fmt"

	"github.com/katalvlaran/relmatch/checksum"
	"github.com/katalvlaran/relmatch/pattern"
)

// Record is the serialized form of one pattern, used for badger values and
// for the CLI's YAML pattern files.
type Record struct {
	Tag   string                `json:"tag" yaml:"tag"`
	Cells [][]pattern.SignValue `json:"cells" yaml:"cells,flow"`
	CRC   *uint8                `json:"crc,omitempty" yaml:"crc,omitempty"`
}

// Encode converts p into a Record stamped with its checksum.
func Encode(p *pattern.Pattern) Record {
	sum := checksum.Sum(p)

	return Record{Tag: p.Tag(), Cells: p.Cells(), CRC: &sum}
}

// Decode rebuilds the pattern. When the record carries a CRC it must
// match the rebuilt pattern.
func (r Record) Decode() (*pattern.Pattern, error) {
	p, err := pattern.New(r.Cells, r.Tag)
	if err != nil {
		return nil, fmt.Errorf("store: decode %q: %w", r.Tag, err)
	}
	if r.CRC != nil {
		if got := checksum.Sum(p); got != *r.CRC {
			return nil, fmt.Errorf("%w: pattern %q stored 0x%02X, computed 0x%02X",
				ErrChecksumMismatch, r.Tag, *r.CRC, got)
		}
	}

	return p, nil
}

// EncodeSet encodes every pattern of s in order.
func EncodeSet(s *pattern.Set) []Record {
	ps := s.Patterns()
	out := make([]Record, len(ps))
	for i, p := range ps {
		out[i] = Encode(p)
	}

	return out
}

// DecodeSet decodes rs in order into a Set.
func DecodeSet(rs []Record) (*pattern.Set, error) {
	ps := make([]*pattern.Pattern, len(rs))
	for i, r := range rs {
		p, err := r.Decode()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		ps[i] = p
	}

	return pattern.NewSet(ps...)
}
