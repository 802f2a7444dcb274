// Package config loads engine configuration from a YAML file, applying
// defaults for anything the file omits or when it is absent entirely.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the engine's tunable, non-protocol settings: the sort of
// thing a UCI "setoption" doesn't cover because it's a deployment choice
// rather than a per-game one.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
}

// EngineConfig groups the settings that affect search and I/O.
type EngineConfig struct {
	HashMB           int    `yaml:"hash_mb"`
	DefaultDepth     int    `yaml:"default_depth"`
	MoveTimeMarginMS int    `yaml:"move_time_margin_ms"`
	LogFile          string `yaml:"log_file"`
	DataDir          string `yaml:"data_dir"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			HashMB:           64,
			DefaultDepth:     8,
			MoveTimeMarginMS: 25,
			LogFile:          "",
			DataDir:          "",
		},
	}
}

// Load reads and parses the YAML config file at path. A missing file is
// not an error: Default is returned instead. A present but malformed
// file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills in zero-valued fields left unset by a partial YAML
// document, so a file that only overrides one setting still gets sane
// values for the rest.
func applyDefaults(cfg *Config) {
	defaults := Default()
	if cfg.Engine.HashMB == 0 {
		cfg.Engine.HashMB = defaults.Engine.HashMB
	}
	if cfg.Engine.DefaultDepth == 0 {
		cfg.Engine.DefaultDepth = defaults.Engine.DefaultDepth
	}
	if cfg.Engine.MoveTimeMarginMS == 0 {
		cfg.Engine.MoveTimeMarginMS = defaults.Engine.MoveTimeMarginMS
	}
}
