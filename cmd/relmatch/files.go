package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/relmatch/alphabet"
	"github.com/katalvlaran/relmatch/glyph"
	"github.com/katalvlaran/relmatch/pattern"
	"github.com/katalvlaran/relmatch/store"
	"gopkg.in/yaml.v3"
)

var errNoPatterns = errors.New("pattern file holds no patterns")

// patternFile is the YAML pattern document. Glyphs are rasterized first,
// explicit patterns follow in file order.
type patternFile struct {
	Glyphs   string         `yaml:"glyphs,omitempty"`
	Scale    int            `yaml:"scale,omitempty"`
	Patterns []store.Record `yaml:"patterns,omitempty"`
}

// requestFile is the YAML discovery request. Each query names its target
// either by glyph or by an explicit pattern.
type requestFile struct {
	Queries []struct {
		Text   string        `yaml:"text"`
		Glyph  string        `yaml:"glyph,omitempty"`
		Target *store.Record `yaml:"target,omitempty"`
	} `yaml:"queries"`
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func glyphOpts(scale int) []glyph.Option {
	if scale > 1 {
		return []glyph.Option{glyph.WithScale(scale)}
	}

	return nil
}

func (f patternFile) set() (*pattern.Set, error) {
	var ps []*pattern.Pattern
	if f.Glyphs != "" {
		gs, err := glyph.Set(f.Glyphs, glyphOpts(f.Scale)...)
		if err != nil {
			return nil, err
		}
		ps = append(ps, gs.Patterns()...)
	}
	for i, r := range f.Patterns {
		p, err := r.Decode()
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i, err)
		}
		ps = append(ps, p)
	}
	if len(ps) == 0 {
		return nil, errNoPatterns
	}

	return pattern.NewSet(ps...)
}

func loadSet(path string) (*pattern.Set, error) {
	var f patternFile
	if err := readYAML(path, &f); err != nil {
		return nil, err
	}
	s, err := f.set()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

func loadRequest(path string) (*alphabet.StaticRequest, error) {
	var f requestFile
	if err := readYAML(path, &f); err != nil {
		return nil, err
	}
	qs := make([]alphabet.Query, 0, len(f.Queries))
	for i, q := range f.Queries {
		var (
			p   *pattern.Pattern
			err error
		)
		switch {
		case q.Target != nil:
			p, err = q.Target.Decode()
		case q.Glyph != "":
			p, err = glyph.Pattern([]rune(q.Glyph)[0])
		default:
			err = errors.New("no target")
		}
		if err != nil {
			return nil, fmt.Errorf("%s: query %d: %w", path, i, err)
		}
		qs = append(qs, alphabet.Query{Target: p, Text: q.Text})
	}

	return alphabet.NewRequest(qs...), nil
}

func writeSet(w io.Writer, s *pattern.Set) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(patternFile{Patterns: store.EncodeSet(s)}); err != nil {
		return err
	}

	return enc.Close()
}
