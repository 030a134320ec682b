package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSpec unmarshals a yaml file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := os.ReadFile(filename)
	if err != nil {
		return zero, fmt.Errorf("config: read %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// Load reads and validates the configuration at path. When the file
// does not exist, the embedded defaults are written there first so
// players have a file to edit.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
			return nil, fmt.Errorf("config: write defaults to %s: %w", path, err)
		}
	}

	cfg, err := LoadSpec[Config](path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal embedded defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
