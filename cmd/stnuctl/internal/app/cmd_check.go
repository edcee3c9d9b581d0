package app

import (
	"fmt"
	"os"

	"github.com/katalvlaran/stnu/dc"
	"github.com/katalvlaran/stnu/stnujson"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.json>",
		Short: "Load an STNU and report whether it is dynamically controllable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			s, err := stnujson.Import(data)
			if err != nil {
				return err
			}

			res := dc.Check(s, dc.Options{})
			if res.DC {
				fmt.Fprintln(cmd.OutOrStdout(), "dynamically controllable: true")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "dynamically controllable: false")
			fmt.Fprintf(cmd.OutOrStdout(), "cycle weight: %g\n", res.CycleWeight)
			for ref, pol := range res.Lifted.Requirement {
				fmt.Fprintf(cmd.OutOrStdout(), "  requirement (%d,%d): %s\n", ref.From, ref.To, pol)
			}
			for ref, pol := range res.Lifted.Contingent {
				fmt.Fprintf(cmd.OutOrStdout(), "  contingent (%d,%d): %s\n", ref.From, ref.To, pol)
			}
			return nil
		},
	}
}
