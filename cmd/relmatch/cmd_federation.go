package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [name] <patterns.yaml>",
		Short: "Store a new federation baseline, dropping any learned units",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := a.target(args)
			set, err := loadSet(path)
			if err != nil {
				return err
			}
			f, err := a.rebuild(name, set, nil)
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.SaveFederation(cmd.Context(), name, set, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: baseline %s\n", name, f.Query())
			return nil
		},
	}
}

func (a *app) learnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "learn [name] <request.yaml>",
		Short: "Grow the baseline with a request and store the new unit",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, path := a.target(args)
			req, err := loadRequest(path)
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			baseline, units, err := st.LoadFederation(ctx, name)
			if err != nil {
				return err
			}
			f, err := a.rebuild(name, baseline, units)
			if err != nil {
				return err
			}
			ok, err := f.Learn(ctx, req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintf(out, "%s: nothing learned\n", name)
				return nil
			}
			all := f.Units()
			learned := all[len(all)-1]
			idx, err := st.AppendUnit(ctx, name, learned.Patterns())
			if err != nil {
				return err
			}
			a.logger.Debug("unit stored", slog.String("federation", name), slog.Int("index", idx))
			fmt.Fprintf(out, "%s: unit %d %s\n", name, idx, learned)
			return nil
		},
	}
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [name] <query.yaml>",
		Short: "Check every pattern of a file against a stored federation",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, path := a.target(args)
			queries, err := loadSet(path)
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			baseline, units, err := st.LoadFederation(ctx, name)
			if err != nil {
				return err
			}
			f, err := a.rebuild(name, baseline, units)
			if err != nil {
				return err
			}
			for _, q := range queries.Patterns() {
				got, ok, err := f.Verdict(ctx, q)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", q.Tag(), verdict(ok), got)
			}
			return nil
		},
	}
}

// target splits "[name] <file>" arguments. Without a name the configured
// federation.name is used.
func (a *app) target(args []string) (name, path string) {
	if len(args) == 1 {
		return a.cfg.Federation.Name, args[0]
	}

	return args[0], args[1]
}

func verdict(ok bool) string {
	if ok {
		return "accepted"
	}

	return "rejected"
}
