package main

import (
	"github.com/spf13/cobra"

	"github.com/microsoft/dhacks/internal/reporting"
)

func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "summary [file]",
		Aliases: []string{"stats"},
		Short:   "(alias: \"stats\") Print descriptive statistics of the data",
		Long: `Print count, min, max, mean, population variance, standard deviation
and median of the samples, one number per line. Reads standard input when
no file is given or the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSummary,
	}
	addFormatFlag(cmd)
	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cmd, args)
	if err != nil {
		return err
	}

	return reporting.Write(cmd.OutOrStdout(), cfg.Output.Format, ds, nil)
}
