package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the platform configuration.
// Search order: customPath -> ~/.merge48/merge48.yaml -> ./configs/merge48.yaml -> embedded default
//
// An explicit path must exist and parse. For the implicit locations a
// missing or unreadable file falls through to the next location, but a
// file that exists and fails to parse is an error: silently ignoring a
// broken config hides user mistakes.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	if userPath := userConfigPath(); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return loadFile(userPath)
		}
	}

	localPath := filepath.Join("configs", "merge48.yaml")
	if _, err := os.Stat(localPath); err == nil {
		return loadFile(localPath)
	}

	return DefaultConfig(), nil
}

func loadFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// the home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".merge48", "merge48.yaml")
}
