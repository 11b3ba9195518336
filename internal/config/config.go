package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/datprobe/datprobe/internal/oscillation"
	"github.com/datprobe/datprobe/internal/tabular"
)

// Global holds the tunable heuristic constants. The defaults are the
// values the detectors were tuned with; none of them is sacred.
type Global struct {
	// Parsing heuristics
	NumericLineThreshold float64 `mapstructure:"numeric_line_threshold" yaml:"numeric_line_threshold"`
	HeaderAlphaThreshold float64 `mapstructure:"header_alpha_threshold" yaml:"header_alpha_threshold"`
	HeaderLookback       int     `mapstructure:"header_lookback" yaml:"header_lookback"`

	// Scale profiling
	LogScaleRatio float64 `mapstructure:"log_scale_ratio" yaml:"log_scale_ratio"`

	// Oscillation detection
	MinSamples          int     `mapstructure:"min_samples" yaml:"min_samples"`
	MaxWindow           int     `mapstructure:"max_window" yaml:"max_window"`
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
	SamplingRate        float64 `mapstructure:"sampling_rate" yaml:"sampling_rate"`

	// Batch analysis
	BatchPattern string `mapstructure:"batch_pattern" yaml:"batch_pattern"`
	SummaryName  string `mapstructure:"summary_name" yaml:"summary_name"`
}

// TabularOptions maps the config onto the parser knobs.
func (c *Global) TabularOptions() tabular.Options {
	return tabular.Options{
		NumericLineThreshold: c.NumericLineThreshold,
		HeaderAlphaThreshold: c.HeaderAlphaThreshold,
		HeaderLookback:       c.HeaderLookback,
	}
}

// DetectorOptions maps the config onto the oscillation knobs.
func (c *Global) DetectorOptions() oscillation.Options {
	return oscillation.Options{
		MinSamples:          c.MinSamples,
		MaxWindow:           c.MaxWindow,
		ConfidenceThreshold: c.ConfidenceThreshold,
	}
}

// Default returns the built-in configuration, used when no config can be
// loaded from disk.
func Default() *Global {
	return &Global{
		NumericLineThreshold: 0.8,
		HeaderAlphaThreshold: 0.5,
		HeaderLookback:       9,
		LogScaleRatio:        100.0,
		MinSamples:           100,
		MaxWindow:            10000,
		ConfidenceThreshold:  0.3,
		SamplingRate:         1.0,
		BatchPattern:         "*.dat",
		SummaryName:          "batch_summary",
	}
}

// Save writes the configuration to cfgFile, or to ~/.datprobe/config.yaml
// when cfgFile is empty.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datprobe")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATPROBE")
	v.AutomaticEnv()

	v.SetDefault("numeric_line_threshold", 0.8)
	v.SetDefault("header_alpha_threshold", 0.5)
	v.SetDefault("header_lookback", 9)
	v.SetDefault("log_scale_ratio", 100.0)
	v.SetDefault("min_samples", 100)
	v.SetDefault("max_window", 10000)
	v.SetDefault("confidence_threshold", 0.3)
	v.SetDefault("sampling_rate", 1.0)
	v.SetDefault("batch_pattern", "*.dat")
	v.SetDefault("summary_name", "batch_summary")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".datprobe")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
