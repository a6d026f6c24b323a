package main

import (
	"fmt"
	"tugame/loader"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <game.json>",
		Short: "Report structural properties of the feasible family and the game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			family := g.Family()
			monotone, err := g.IsMonotone()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, family)
			fmt.Fprintf(out, "hereditary: %t\n", family.IsHereditary())
			fmt.Fprintf(out, "accessible: %t\n", family.IsAccessible())
			fmt.Fprintf(out, "union-closed: %t\n", family.IsUnionClosed())
			fmt.Fprintf(out, "monotone: %t\n", monotone)
			return nil
		},
	}
}
