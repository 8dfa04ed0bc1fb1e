package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/merge48.yaml
var defaultYAML []byte

// DefaultConfig returns the embedded default configuration. Panics if
// the embedded document does not parse: that is a build defect, not a
// runtime condition.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded default is corrupt: " + err.Error())
	}
	return cfg
}

// DefaultYAML returns the embedded default configuration document,
// useful as a template for user config files.
func DefaultYAML() []byte {
	return defaultYAML
}
