package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tburke/sociograph/pkg/validation"
)

// SourceConfig selects and parameterizes the edge input.
type SourceConfig struct {
	// Kind is "edgelist" or "postgres"
	Kind        string `yaml:"kind"`
	Path        string `yaml:"path"`
	DatabaseURL string `yaml:"database_url"`
	Query       string `yaml:"query"`
	// SkipInvalid drops self-loops and malformed records instead of
	// failing the load
	SkipInvalid bool `yaml:"skip_invalid"`
}

// AnalysisConfig carries the algorithm knobs for a run.
type AnalysisConfig struct {
	// Normalized scales betweenness into [0,1]
	Normalized bool  `yaml:"normalized"`
	SampleK    int   `yaml:"sample_k"`
	Workers    int   `yaml:"workers"`
	Seed       int64 `yaml:"seed"`
	MaxLevels  int   `yaml:"max_levels"`
	TopN       int   `yaml:"top_n"`
}

// MetricsConfig controls the optional Prometheus listener.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Config is the full run configuration for the batch CLI.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	LogLevel string         `yaml:"log_level"`
}

// DefaultConfig returns a config with sensible defaults for a small run.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind: "edgelist",
		},
		Analysis: AnalysisConfig{
			Normalized: true,
			TopN:       10,
		},
		Metrics: MetricsConfig{
			Listen: ":9090",
		},
		LogLevel: "info",
	}
}

// Load reads a YAML config file, fills defaults and applies environment
// overrides. An empty path yields the defaults. Callers validate after
// applying any flag overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Source.Kind = validation.DefaultOr(c.Source.Kind, "edgelist")
	c.Source.Query = validation.DefaultOr(c.Source.Query, "")
	c.Analysis.TopN = validation.DefaultOrInt(c.Analysis.TopN, 10)
	c.Metrics.Listen = validation.DefaultOr(c.Metrics.Listen, ":9090")
	c.LogLevel = validation.DefaultOr(c.LogLevel, "info")
}

// applyEnv lets deployment environments override secrets and log level
// without editing the config file.
func (c *Config) applyEnv() {
	if url := os.Getenv("SOCIOGRAPH_DATABASE_URL"); url != "" {
		c.Source.DatabaseURL = url
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if listen := os.Getenv("SOCIOGRAPH_METRICS_LISTEN"); listen != "" {
		c.Metrics.Listen = listen
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	cv := validation.NewConfigValidator("Config")

	cv.OneOf("Source.Kind", c.Source.Kind, []string{"edgelist", "postgres"}).
		When(c.Source.Kind == "edgelist", func(v *validation.ConfigValidator) {
			v.Required("Source.Path", c.Source.Path)
		}).
		When(c.Source.Kind == "postgres", func(v *validation.ConfigValidator) {
			v.Required("Source.DatabaseURL", c.Source.DatabaseURL)
		}).
		OneOf("LogLevel", c.LogLevel, []string{"debug", "info", "warn", "error"}).
		Custom("Analysis", func() error {
			return validation.ValidateAnalysisRequest(&validation.AnalysisRequest{
				SampleK:    c.Analysis.SampleK,
				Workers:    c.Analysis.Workers,
				TopN:       c.Analysis.TopN,
				MaxLevels:  c.Analysis.MaxLevels,
				Seed:       c.Analysis.Seed,
				Normalized: c.Analysis.Normalized,
			})
		})

	return cv.Validate()
}
