package tilegame

import (
	"fmt"

	"github.com/merge48/merge48/internal/config"
	"github.com/merge48/merge48/internal/engine"
	"github.com/merge48/merge48/internal/registry"
)

// Built-in board variants, always available. Config files may add more
// via RegisterVariant.
var builtins = []config.Variant{
	{ID: "mini", Title: "Mini 3x3", Size: 3, FourChance: engine.DefaultFourChance},
	{ID: "classic", Title: "Classic 4x4", Size: 4, FourChance: engine.DefaultFourChance},
	{ID: "big", Title: "Big 5x5", Size: 5, FourChance: engine.DefaultFourChance},
	{ID: "huge", Title: "Huge 6x6", Size: 6, FourChance: engine.DefaultFourChance},
}

func init() {
	for _, v := range builtins {
		registry.Register(v.ID, func() registry.Game { return NewGame(v) })
	}
}

// RegisterVariant adds a configured variant to the registry. Unlike
// built-in registration, configured variants are user input, so
// collisions and invalid boards are errors rather than panics.
func RegisterVariant(v config.Variant) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if registry.Exists(v.ID) {
		return fmt.Errorf("tilegame: variant %q already registered", v.ID)
	}
	registry.Register(v.ID, func() registry.Game { return NewGame(v) })
	return nil
}

// CustomVariant builds an ad-hoc variant for a bare board size, as
// requested with the --size flag.
func CustomVariant(size int) config.Variant {
	return config.Variant{
		ID:         fmt.Sprintf("custom-%d", size),
		Title:      fmt.Sprintf("Custom %dx%d", size, size),
		Size:       size,
		FourChance: engine.DefaultFourChance,
	}
}
