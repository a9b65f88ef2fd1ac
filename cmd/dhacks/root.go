package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dhacks",
		Short: "dhacks - visualize numeric data in the terminal",
		Long: `dhacks summarizes a stream of numbers, one per line.

It reads samples from a file or standard input (plain, gzip or zstd),
prints count, min, max, mean, variance, standard deviation and median,
and can render a text histogram of the distribution.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newSummaryCommand())
	cmd.AddCommand(newHistogramCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
