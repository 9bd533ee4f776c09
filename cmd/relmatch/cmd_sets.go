package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) setsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Manage named pattern sets in the store",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "put <name> <patterns.yaml>",
			Short: "Store a pattern file under name",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				set, err := loadSet(args[1])
				if err != nil {
					return err
				}
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				return st.PutSet(cmd.Context(), args[0], set)
			},
		},
		&cobra.Command{
			Use:   "get <name>",
			Short: "Print a stored set as a pattern file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				set, err := st.GetSet(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeSet(cmd.OutOrStdout(), set)
			},
		},
		&cobra.Command{
			Use:   "list [prefix]",
			Short: "List stored set names",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				prefix := ""
				if len(args) == 1 {
					prefix = args[0]
				}
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				names, err := st.ListSets(cmd.Context(), prefix)
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <name>",
			Short: "Delete a stored set",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				return st.DeleteSet(cmd.Context(), args[0])
			},
		},
	)

	return cmd
}
