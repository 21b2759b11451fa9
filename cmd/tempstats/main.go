// Package main provides the tempstats command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sartorproj/tempstats/internal/config"
	"github.com/sartorproj/tempstats/internal/handlers"
	"github.com/sartorproj/tempstats/internal/logging"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
	BuildTime = "unknown" // Injected via ldflags during build
)

// runtime holds what every subcommand needs after the root has started.
type runtime struct {
	cfg    *config.Config
	logger *logging.Logger
}

func main() {
	handlers.Version = Version

	if err := newRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:   "tempstats",
		Short: "Statistics over a series of temperature readings",
		Long: `tempstats validates temperature readings (degrees Celsius, not below -273)
and reports average, deviation, extremes, closest values and filters.

Readings come from arguments and/or a CSV file. Use commas or "--" before
negative readings so they are not taken for flags:

  tempstats summary 3,-5,1,5
  tempstats summary -- 3 -5 1 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg.Logging)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logging.SetGlobal(logger)

			rt.cfg = cfg
			rt.logger = logger.With("command", cmd.Name())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")

	rootCmd.AddCommand(newSummaryCommand(rt))
	rootCmd.AddCommand(newAnalyzeCommand(rt))
	rootCmd.AddCommand(newServeCommand(rt))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// The version needs no config or logger.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tempstats %s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		},
	}
}
