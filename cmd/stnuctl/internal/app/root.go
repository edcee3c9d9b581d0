package app

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	logger     zerolog.Logger
)

// NewRootCommand builds the stnuctl command tree: check, relax, dispatch,
// batch.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "stnuctl",
		Short: "Analyze, repair, and dispatch Simple Temporal Networks with Uncertainty",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(cmd.OutOrStderr()).Level(level).With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newCheckCommand())
	root.AddCommand(newRelaxCommand())
	root.AddCommand(newDispatchCommand())
	root.AddCommand(newBatchCommand())
	return root
}
