package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/relmatch/alphabet"
	"github.com/katalvlaran/relmatch/checksum"
	"github.com/katalvlaran/relmatch/glyph"
	"github.com/katalvlaran/relmatch/reflex"
	"github.com/spf13/cobra"
)

func (a *app) unit(path string) (*alphabet.Unit, error) {
	set, err := loadSet(path)
	if err != nil {
		return nil, err
	}

	return alphabet.New(set, reflex.Exact{},
		alphabet.WithLogger(a.logger),
		alphabet.WithLimits(a.cfg.Unit.Limits(a.logger)),
	)
}

func (a *app) alphabetCmd() *cobra.Command {
	var coverLimit int
	cmd := &cobra.Command{
		Use:   "alphabet <patterns.yaml>",
		Short: "Print the alphabet of a pattern file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.unit(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "alphabet: %s\n", u)
			fmt.Fprintf(out, "symbols:  %d\n", u.Len())
			fmt.Fprintf(out, "distinct: %d\n", u.Distinct())
			if cover, ok := u.MinimalCover(coverLimit); ok {
				fmt.Fprintf(out, "cover:    %v\n", cover)
			} else {
				fmt.Fprintf(out, "cover:    none within %d tuples\n", coverLimit)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&coverLimit, "cover-limit", 100000, "selection tuples to scan, covering or not (0 = all)")

	return cmd
}

func (a *app) translateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <patterns.yaml> <query>",
		Short: "Map query characters onto internal symbols",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.unit(args[0])
			if err != nil {
				return err
			}
			syms, ok := u.Translate(args[1])
			if !ok {
				return fmt.Errorf("%w: %q against %q", alphabet.ErrUntranslatable, args[1], u.String())
			}
			tags := make([]string, len(syms))
			for i, s := range syms {
				tags[i] = s.Tag()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tags, " "))
			return nil
		},
	}
}

func (a *app) checksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <patterns.yaml>",
		Short: "Print the CRC-8 of every pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(args[0])
			if err != nil {
				return err
			}
			for i, p := range set.Patterns() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t0x%02X\n", i, p.Tag(), checksum.Sum(p))
			}
			return nil
		},
	}
}

func (a *app) glyphsCmd() *cobra.Command {
	var (
		scale  int
		render bool
	)
	cmd := &cobra.Command{
		Use:   "glyphs <chars>",
		Short: "Emit built-in glyphs as a pattern file",
		Long: "Emit built-in 5×7 glyphs as a YAML pattern file.\n\nSupported: " +
			glyph.Supported(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := glyph.Set(args[0], glyphOpts(scale)...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !render {
				return writeSet(out, set)
			}
			for _, p := range set.Patterns() {
				fmt.Fprintf(out, "%s\n%s\n", p.Tag(), glyph.Render(p))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 1, "replicate every cell into a k×k block")
	cmd.Flags().BoolVar(&render, "render", false, "draw the glyphs instead of emitting YAML")

	return cmd
}
