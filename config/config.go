// Package config loads Roundtable configuration from YAML with environment
// variable overrides. Precedence: defaults, then file values, then env.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the complete configuration structure.
type Config struct {
	// Tracing configures span export to a collector.
	Tracing TracingConfig `yaml:"tracing"`
	// Model holds default generation parameters.
	Model ModelConfig `yaml:"model"`
	// Team holds orchestration defaults.
	Team TeamConfig `yaml:"team"`
	// Log configures the structured logger.
	Log LogConfig `yaml:"log"`
}

// TracingConfig configures the OTLP span recorder. When Enabled is false no
// exporter is created and recording is a no-op.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"` // collector host:port
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
	// DatasetDir is where FileDatasetStore keeps persisted span datasets.
	DatasetDir string `yaml:"dataset_dir"`
}

// ModelConfig holds provider-agnostic generation defaults.
type ModelConfig struct {
	Provider        string  `yaml:"provider"` // "openai" or "anthropic"
	Name            string  `yaml:"name"`
	Temperature     float64 `yaml:"temperature"`
	MaxOutputTokens int64   `yaml:"max_output_tokens"`
}

// TeamConfig holds orchestration defaults.
type TeamConfig struct {
	// MaxTurns is the safety ceiling applied when none is set explicitly.
	MaxTurns int `yaml:"max_turns"`
	// TerminationMarker configures the default text-mention condition.
	TerminationMarker string `yaml:"termination_marker"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Tracing: TracingConfig{
			Endpoint:    "localhost:4317",
			ServiceName: "roundtable",
			Insecure:    true,
			DatasetDir:  "datasets",
		},
		Model: ModelConfig{
			Provider:        "openai",
			Temperature:     0.7,
			MaxOutputTokens: 4096,
		},
		Team: TeamConfig{
			MaxTurns:          20,
			TerminationMarker: "TERMINATE",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a YAML file over the defaults then applies env overrides. A
// missing file is not an error; defaults plus env are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	return cfg, nil
}

// applyEnv overrides fields from ROUNDTABLE_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("ROUNDTABLE_TRACING_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Tracing.Enabled = b
		}
	}
	if v := os.Getenv("ROUNDTABLE_TRACING_ENDPOINT"); v != "" {
		c.Tracing.Endpoint = v
	}
	if v := os.Getenv("ROUNDTABLE_TRACING_SERVICE_NAME"); v != "" {
		c.Tracing.ServiceName = v
	}
	if v := os.Getenv("ROUNDTABLE_TRACING_DATASET_DIR"); v != "" {
		c.Tracing.DatasetDir = v
	}
	if v := os.Getenv("ROUNDTABLE_MODEL_PROVIDER"); v != "" {
		c.Model.Provider = v
	}
	if v := os.Getenv("ROUNDTABLE_MODEL_NAME"); v != "" {
		c.Model.Name = v
	}
	if v := os.Getenv("ROUNDTABLE_TEAM_MAX_TURNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Team.MaxTurns = n
		}
	}
	if v := os.Getenv("ROUNDTABLE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ROUNDTABLE_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}
