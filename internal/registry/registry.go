// Package registry provides a global registry for board-variant
// factories. Variants register themselves in init() functions (or from
// configuration at startup), letting the platform discover and
// instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/merge48/merge48/internal/core"
)

// Game is the interface every playable variant implements. Games
// contain pure logic with no external dependencies (especially no
// Bubble Tea); the platform handles input mapping, timing, and
// terminal rendering.
type Game interface {
	// ID returns the unique variant identifier (e.g., "classic",
	// "big"). Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g.,
	// "Classic 4x4").
	Title() string

	// Size returns the board dimension of this variant.
	Size() int

	// Reset initializes or resets the game state. Called once at
	// start and again when restarting. The RuntimeConfig provides
	// screen dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. Input is
	// abstracted to platform-level actions.
	Step(in core.InputFrame) core.StepResult

	// Resize informs the game of new screen dimensions. The board is
	// unaffected; games recompute layout and minimum-size checks.
	Resize(w, h int)

	// Render draws the current game state into the provided screen
	// buffer, clearing it first.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
	Size  int
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]VariantInfo)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry. Typically called
// from an init() function. Panics if the ID is empty or already taken:
// a duplicate built-in registration is a programmer error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty variant ID")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	// Capture metadata from a temporary instance
	g := f()
	infos[id] = VariantInfo{ID: id, Title: g.Title(), Size: g.Size()}
}

// List returns all registered variants, sorted by board size and then
// by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Size != result[j].Size {
			return result[i].Size < result[j].Size
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID. Returns an error if the ID
// is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
