package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"sampledir/core/logger"
)

type Config struct {
	SampleSize int      `yaml:"sample_size"`
	SampleExts string   `yaml:"sample_exts"`
	Exclude    []string `yaml:"exclude"`
}

// Default mirrors every directory and samples every extension. Excludes are
// opt-in via the config file so a bare invocation replicates the full tree.
func Default() *Config {
	return &Config{
		SampleSize: 5,
	}
}

// Load reads sampledir.yaml from the working directory if present,
// otherwise returns the defaults. Positional arguments always override
// config values, so a missing file changes nothing.
func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}

	paths := []string{
		filepath.Join(wd, "sampledir.yaml"),
	}

	var filePath string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			filePath = p
			break
		}
	}

	if filePath == "" {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}
