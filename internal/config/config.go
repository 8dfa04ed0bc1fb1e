// Package config provides YAML-based board variant configuration and
// difficulty presets for the puzzle platform.
package config

import "fmt"

// Variant describes a playable board configuration. Built-in variants
// are registered by the game package; config files may add more.
type Variant struct {
	ID         string  `yaml:"id"`
	Title      string  `yaml:"title"`
	Size       int     `yaml:"size"`
	FourChance float64 `yaml:"four_chance"`
}

// Validate checks that the variant describes a playable board.
func (v Variant) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("config: variant with empty id")
	}
	if v.Size < 2 {
		return fmt.Errorf("config: variant %q: size %d is below the minimum of 2", v.ID, v.Size)
	}
	if v.FourChance < 0 || v.FourChance >= 1 {
		return fmt.Errorf("config: variant %q: four_chance %v is outside [0, 1)", v.ID, v.FourChance)
	}
	return nil
}

// Config is the root configuration document.
type Config struct {
	// DefaultVariant is played when no variant is named on the
	// command line. May refer to a built-in or a configured variant.
	DefaultVariant string `yaml:"default_variant"`

	// Variants are additional boards layered over the built-ins.
	Variants []Variant `yaml:"variants"`
}

// Validate checks every configured variant and rejects duplicate IDs
// within the document. Whether DefaultVariant resolves is checked at
// startup, after built-ins and configured variants are registered.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if err := v.Validate(); err != nil {
			return err
		}
		if seen[v.ID] {
			return fmt.Errorf("config: duplicate variant %q", v.ID)
		}
		seen[v.ID] = true
	}
	return nil
}
