package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/microsoft/dhacks/internal/projectconfig"
	"github.com/microsoft/dhacks/internal/reporting"
	"github.com/microsoft/dhacks/internal/samples"
	"github.com/microsoft/dhacks/internal/statistics"
)

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", projectconfig.DefaultFormat, "Output format: text | json")
}

// loadConfig reads .dhacks.yaml from the working directory (or a parent)
// and applies any flags the user set explicitly on cmd.
func loadConfig(cmd *cobra.Command) (*projectconfig.ProjectConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}
	cfg, err := projectconfig.Load(wd)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		slog.Debug("Loaded project config", "path", cfg.Path)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
		if !reporting.ValidFormat(cfg.Output.Format) {
			return nil, fmt.Errorf("--format must be %q or %q, got %q",
				reporting.FormatText, reporting.FormatJSON, cfg.Output.Format)
		}
	}
	if flags.Lookup("buckets") != nil && flags.Changed("buckets") {
		n, err := flags.GetInt("buckets")
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("--buckets must be at least 1, got %d", n)
		}
		cfg.Histogram.Buckets = &n
	}
	return cfg, nil
}

// loadDataset reads the samples named by args (a single path, or stdin when
// absent) and summarizes them. Every failure is an *InputError.
func loadDataset(cmd *cobra.Command, args []string) (*statistics.Dataset, error) {
	path := samples.StdinPath
	if len(args) > 0 {
		path = args[0]
	}

	in := cmd.InOrStdin()
	if path == samples.StdinPath {
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			slog.Info("Reading samples from the terminal, one per line; finish with Ctrl-D")
		}
	}

	values, err := samples.Load(path, in)
	if err != nil {
		return nil, &InputError{Err: err}
	}
	slog.Debug("Loaded samples", "source", path, "count", len(values))

	ds, err := statistics.NewDataset(values)
	if err != nil {
		return nil, &InputError{Err: err}
	}
	return ds, nil
}
