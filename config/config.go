package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the classroom tool.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Batch    BatchConfig    `yaml:"batch"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DefaultsConfig holds values applied when a flag is not given.
type DefaultsConfig struct {
	Seed           string `yaml:"seed"` // raw seed text; blank means non-reproducible
	SampleSize     int    `yaml:"sample_size"`
	IncludeExcused bool   `yaml:"include_excused"`
	Delimiters     string `yaml:"delimiters"` // whitespace-separated literal delimiters
}

// BatchConfig holds roster discovery patterns for --batch runs.
type BatchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// OutputConfig holds rendering configuration.
type OutputConfig struct {
	Format       string `yaml:"format"` // "table", "csv", "json"
	GroupsPerRow int    `yaml:"groups_per_row"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

var (
	validFormats = map[string]bool{"table": true, "csv": true, "json": true}
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			SampleSize: 1,
			Delimiters: ",",
		},
		Batch: BatchConfig{
			Includes: []string{"**/*.csv", "**/*.txt"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/.classroom/**"},
		},
		Output: OutputConfig{
			Format:       "table",
			GroupsPerRow: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("unknown output format %q (want table, csv or json)", c.Output.Format)
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if c.Defaults.SampleSize < 1 {
		return fmt.Errorf("defaults.sample_size must be at least 1, got %d", c.Defaults.SampleSize)
	}
	return nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for classroom.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "classroom.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".classroom", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
