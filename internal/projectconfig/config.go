// Package projectconfig provides the ProjectConfig struct and loader for
// .dhacks.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/microsoft/dhacks/internal/histogram"
	"github.com/microsoft/dhacks/internal/reporting"
)

// FileName is the configuration file looked up from the working directory.
const FileName = ".dhacks.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultBuckets = histogram.DefaultBuckets
	DefaultFormat  = reporting.FormatText
)

// maxSearchDepth bounds how many parent directories Load walks through.
const maxSearchDepth = 10

// HistogramConfig holds histogram rendering settings. Buckets is a pointer
// so an explicit zero in the file is kept apart from an absent key.
type HistogramConfig struct {
	Buckets *int `yaml:"buckets,omitempty"`
}

// BucketCount returns the configured bucket count, or DefaultBuckets when
// none is set.
func (c HistogramConfig) BucketCount() int {
	if c.Buckets == nil {
		return DefaultBuckets
	}
	return *c.Buckets
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .dhacks.yaml.
type ProjectConfig struct {
	Histogram HistogramConfig `yaml:"histogram,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Histogram: HistogramConfig{
			Buckets: intPtr(DefaultBuckets),
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
	}
}

// Load finds .dhacks.yaml by walking up from startDir, unmarshals it and
// fills in missing fields with defaults. If no config file is found, Load
// returns defaults with a nil error. Real I/O errors and invalid values are
// returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c *ProjectConfig) Validate() error {
	if n := c.Histogram.BucketCount(); n < 1 {
		return fmt.Errorf("histogram.buckets must be at least 1, got %d", n)
	}
	if !reporting.ValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format must be %q or %q, got %q",
			reporting.FormatText, reporting.FormatJSON, c.Output.Format)
	}
	return nil
}

// findConfigFile walks up from dir looking for .dhacks.yaml. Returns
// os.ErrNotExist if no config file is found.
func findConfigFile(dir string) (string, []byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < maxSearchDepth; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays the values set in src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Histogram.Buckets != nil {
		dst.Histogram.Buckets = src.Histogram.Buckets
	}
	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
}

func intPtr(n int) *int {
	return &n
}
