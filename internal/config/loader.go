package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "floppy.yaml"

// Load loads the game tuning.
// Search order: customPath -> ~/.floppy/configs/floppy.yaml -> ./configs/floppy.yaml -> embedded default
func Load(customPath string) (FloppyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FloppyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FloppyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFloppyYAML)
	if err != nil {
		return DefaultFloppyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Resolve returns the file Load would read for customPath, or "" when the
// embedded default would be used.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Parse decodes a YAML document on top of the built-in defaults and
// validates the result. Keys missing from data keep their default value.
func Parse(data []byte) (FloppyConfig, error) {
	cfg := DefaultFloppyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FloppyConfig{}, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FloppyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg FloppyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floppy", "configs", fileName)
}
