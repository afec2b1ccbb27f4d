package main

import (
	"github.com/spf13/cobra"

	"github.com/TomTonic/numrand/internal/config"
	"github.com/TomTonic/numrand/internal/logger"
)

var version = "dev"

type options struct {
	config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "numrand",
		Short:         "inspect, test and benchmark the numrand generators",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// explicitly set flags win over the environment
			flags := cmd.Flags()
			if flags.Changed("level") {
				cfg.LogLevel = opts.LogLevel
			}
			if flags.Changed("repeats") {
				cfg.Bench.Repeats = opts.Bench.Repeats
			}
			if flags.Changed("inner-loops") {
				cfg.Bench.InnerLoops = opts.Bench.InnerLoops
			}
			if flags.Changed("resamples") {
				cfg.Bench.Resamples = opts.Bench.Resamples
			}
			if flags.Changed("confidence") {
				cfg.Bench.Confidence = opts.Bench.Confidence
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.Config = cfg
			return logger.SetLevel(cfg.LogLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "level", "info",
		"set the logging level (can be one of: trace, debug, info, warn, error)")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newDumpCmd())
	cmd.AddCommand(newChisqCmd())
	cmd.AddCommand(newBenchCmd(opts))

	return cmd
}
