// Package config loads optional run configuration for the pricemerger CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI run settings. Flags override file values.
type Config struct {
	// MaxFileSizeMB caps accepted input file sizes, in megabytes.
	MaxFileSizeMB int64 `yaml:"max_file_size_mb"`
	// OutputDir is where the master workbook is written when no explicit
	// output path is given.
	OutputDir string `yaml:"output_dir"`
	// Verbose enables pipeline progress logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{MaxFileSizeMB: 50, OutputDir: "."}
}

// Load reads a yaml configuration file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.MaxFileSizeMB <= 0 {
		return cfg, fmt.Errorf("config %q: max_file_size_mb must be positive", path)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg, nil
}

// MaxFileSizeBytes converts the configured limit to bytes.
func (c Config) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}
