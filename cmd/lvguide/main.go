// Command lvguide prints turn-by-turn guidance for the legs of a road-map
// fixture.
//
//	lvguide narrate testdata/exit_signs.yaml --config lvguide.yaml --format text
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries the flag values and the logger of one invocation.
type cli struct {
	verbose    bool
	configPath string
	envFiles   []string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "lvguide",
		Short: "Maneuver and narrative generation for road routes",
		Long: `lvguide groups the edges of a route into maneuvers and writes the
instruction, verbal alert, pre- and post-transition texts for each of them,
with pronunciation markup where the map carries it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log debug output")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringSliceVar(&c.envFiles, "env", nil, ".env files with LVGUIDE_* overrides")

	root.AddCommand(newNarrateCmd(c))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
