package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/stnu/dc"
	"github.com/katalvlaran/stnu/dispatch"
	"github.com/katalvlaran/stnu/prob"
	"github.com/katalvlaran/stnu/stnujson"
	"github.com/spf13/cobra"
)

// batchEntry is one file's expected-vs-observed controllability report.
type batchEntry struct {
	Expected float64 `json:"expected"`
	Observed float64 `json:"observed"`
	DC       bool    `json:"dc"`
}

func newBatchCommand() *cobra.Command {
	var trials int
	var seed int64

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Sweep a directory of STNU JSON files and report expected-vs-observed controllability",
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

			entries, err := os.ReadDir(args[0])
			if err != nil {
				return err
			}
			var names []string
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
					continue
				}
				names = append(names, e.Name())
			}
			sort.Strings(names)

			ctx, cancel := newRunContext(cmd, cfg.SolverTimeout)
			defer cancel()

			results := make(map[string]batchEntry, len(names))
			for _, name := range names {
				data, err := os.ReadFile(filepath.Join(args[0], name))
				if err != nil {
					logger.Warn().Str("file", name).Err(err).Msg("batch: skipping unreadable file")
					continue
				}
				s, err := stnujson.Import(data)
				if err != nil {
					logger.Warn().Str("file", name).Err(err).Msg("batch: skipping malformed network")
					continue
				}

				res := dc.Check(s, dc.Options{Ctx: ctx, Logger: &logger})
				expected := 1.0
				if !res.DC {
					slack := prob.FromLifted(s, res.Lifted, res.CycleWeight)
					expected = prob.Estimate([]prob.ConflictSlack{slack})
				}

				stats := dispatch.Simulate(ctx, s, cfg.Trials, uint64(cfg.Seed), dispatch.Late)
				results[name] = batchEntry{Expected: expected, Observed: stats.SuccessRate, DC: res.DC}
			}

			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().IntVar(&trials, "trials", 0, "number of dispatch trials per file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed for realization sampling")
	return cmd
}
