package app

import (
	"fmt"
	"os"

	"github.com/katalvlaran/stnu/dispatch"
	"github.com/katalvlaran/stnu/stnujson"
	"github.com/spf13/cobra"
)

func newDispatchCommand() *cobra.Command {
	var trials int
	var seed int64
	var early bool

	cmd := &cobra.Command{
		Use:   "dispatch <file.json>",
		Short: "Simulate dispatch trials and report the empirical success rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath, DefaultConfig())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("trials") {
				cfg.Trials = trials
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			s, err := stnujson.Import(data)
			if err != nil {
				return err
			}

			strategy := dispatch.Late
			if early {
				strategy = dispatch.Early
			}

			ctx, cancel := newRunContext(cmd, cfg.SolverTimeout)
			defer cancel()

			stats := dispatch.Simulate(ctx, s, cfg.Trials, uint64(cfg.Seed), strategy)
			fmt.Fprintf(cmd.OutOrStdout(), "trials: %d\n", stats.Trials)
			fmt.Fprintf(cmd.OutOrStdout(), "successes: %d\n", stats.Successes)
			fmt.Fprintf(cmd.OutOrStdout(), "success rate: %.4f\n", stats.SuccessRate)
			return nil
		},
	}
	cmd.Flags().IntVar(&trials, "trials", 0, "number of dispatch trials")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed for realization sampling")
	cmd.Flags().BoolVar(&early, "early", false, "use the early-execution strategy instead of late-dynamic")
	return cmd
}
