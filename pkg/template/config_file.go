package template

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a Config. Pointer fields so keys
// absent from the file keep their defaults instead of zeroing.
type fileConfig struct {
	MaxInputSize *uint64 `yaml:"max_input_size"`
	Validation   *bool   `yaml:"validation"`
}

// LoadConfig reads a Config from a YAML file. A missing file is not an
// error: the defaults are returned. Keys present in the file override
// the defaults individually.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if fc.MaxInputSize != nil {
		cfg.maxInputSize = *fc.MaxInputSize
	}
	if fc.Validation != nil {
		cfg.validation = *fc.Validation
	}
	return cfg, nil
}

// Save writes the Config to a YAML file, creating parent directories
// as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	fc := fileConfig{MaxInputSize: &c.maxInputSize, Validation: &c.validation}
	data, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
