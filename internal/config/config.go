// Package config loads the converter's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"trackconv/internal/record"
)

type Config struct {
	Format  FormatConfig  `yaml:"format"`
	Output  OutputConfig  `yaml:"output"`
	Scanner ScannerConfig `yaml:"scanner"`
}

type FormatConfig struct {
	// ElevationScale is the sub-meter divisor for D elevation deltas.
	// Known format revisions use 10 (decimetres) or 100 (hundredths).
	ElevationScale int64 `yaml:"elevation_scale"`
}

type OutputConfig struct {
	Path      string `yaml:"path"`
	TrackName string `yaml:"track_name"`
}

type ScannerConfig struct {
	MaxLineBytes int `yaml:"max_line_bytes"`
}

// Default is the configuration used when no config file is given.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates a YAML config file.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Format.ElevationScale != 0 &&
		cfg.Format.ElevationScale != 10 && cfg.Format.ElevationScale != 100 {
		return Config{}, fmt.Errorf("format.elevation_scale must be 10 or 100")
	}
	if cfg.Scanner.MaxLineBytes < 0 {
		return Config{}, fmt.Errorf("scanner.max_line_bytes must be positive")
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Format.ElevationScale == 0 {
		cfg.Format.ElevationScale = record.DefaultElevationScale
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "out.gpx"
	}
	if cfg.Output.TrackName == "" {
		cfg.Output.TrackName = "track"
	}
	if cfg.Scanner.MaxLineBytes == 0 {
		cfg.Scanner.MaxLineBytes = 64 * 1024
	}
}

// Schema returns the record decoder constants selected by this config.
func (cfg Config) Schema() record.Schema {
	return record.Schema{ElevationScale: cfg.Format.ElevationScale}
}
