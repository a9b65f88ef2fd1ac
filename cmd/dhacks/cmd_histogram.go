package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/microsoft/dhacks/internal/histogram"
	"github.com/microsoft/dhacks/internal/projectconfig"
	"github.com/microsoft/dhacks/internal/reporting"
)

func newHistogramCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "histogram [file]",
		Aliases: []string{"histo"},
		Short:   "(alias: \"histo\") Generate histogram from data",
		Long: `Print the summary statistics of the samples followed by a histogram
with equal-width buckets spanning [min, max]. The fullest bucket is drawn
about 75 blocks wide. Reads standard input when no file is given or the
file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistogram,
	}
	cmd.Flags().Int("buckets", projectconfig.DefaultBuckets, "Number of histogram buckets")
	addFormatFlag(cmd)
	return cmd
}

func runHistogram(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cmd, args)
	if err != nil {
		return err
	}

	h, err := histogram.New(ds, cfg.Histogram.BucketCount())
	if err != nil {
		return err
	}
	slog.Debug("Bucketed samples",
		"buckets", h.Buckets().Len(),
		"width", h.Buckets().Width(),
		"samplesPerBlock", h.SamplesPerBlock())

	return reporting.Write(cmd.OutOrStdout(), cfg.Output.Format, ds, h)
}
