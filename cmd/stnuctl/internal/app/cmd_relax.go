package app

import (
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/stnu/lp"
	"github.com/katalvlaran/stnu/lp/gonumsolver"
	"github.com/katalvlaran/stnu/relax"
	"github.com/katalvlaran/stnu/stnujson"
	"github.com/spf13/cobra"
)

func newRelaxCommand() *cobra.Command {
	var solverTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "relax <file.json>",
		Short: "Run the relaxation loop and emit a repaired network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath, DefaultConfig())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("solver-timeout") {
				cfg.SolverTimeout = solverTimeout
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			s, err := stnujson.Import(data)
			if err != nil {
				return err
			}

			ctx, cancel := newRunContext(cmd, cfg.SolverTimeout)
			defer cancel()

			outcome := relax.Run(ctx, s, func() lp.Solver { return gonumsolver.New() }, relax.DefaultMaxIterations, &logger)
			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", outcome.Status)
			fmt.Fprintf(cmd.OutOrStdout(), "iterations: %d\n", outcome.Iterations)
			fmt.Fprintf(cmd.OutOrStdout(), "conflicts seen: %d\n", len(outcome.Cycles))

			out, err := stnujson.Export(outcome.Network)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().DurationVar(&solverTimeout, "solver-timeout", 0, "overall relaxation loop timeout")
	return cmd
}
