// Package tilegame adapts the sliding-tile engine to the platform game
// loop, one playable Game per board variant.
package tilegame

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/merge48/merge48/internal/config"
	"github.com/merge48/merge48/internal/core"
	"github.com/merge48/merge48/internal/engine"
)

// Game implements registry.Game for one board variant.
type Game struct {
	variant config.Variant
	eng     *engine.Game
	cfg     core.RuntimeConfig
	tick    uint64
	moves   int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	paused   bool
	tooSmall bool
}

// Package-level difficulty preset, applied on every Reset. Set from
// the CLI before games are created.
var selectedDifficulty = config.DifficultyNormal

// SetDifficulty selects the preset applied to subsequent games. The
// preset only shifts the four-tile spawn chance around the variant's
// base value.
func SetDifficulty(p config.DifficultyPreset) {
	selectedDifficulty = p
}

// NewGame creates an unstarted game for the given variant. The engine
// is built on Reset, which the platform calls before the first Step.
func NewGame(v config.Variant) *Game {
	if v.Title == "" {
		v.Title = fmt.Sprintf("%dx%d", v.Size, v.Size)
	}
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.variant.Size
}

// Reset initializes/restarts the game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rules := engine.Rules{
		Size:       g.variant.Size,
		FourChance: config.FourChanceFor(selectedDifficulty, g.variant.FourChance),
	}
	eng, err := engine.New(rules, rand.New(rand.NewSource(seed)))
	if err != nil {
		// Variants are validated at registration, so a bad board
		// reaching Reset is a programmer error.
		panic("tilegame: " + err.Error())
	}

	g.eng = eng
	g.cfg = cfg
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the HUD, the board, and
// the controls footer for this variant.
func (g *Game) checkScreenSize() {
	boardW := g.variant.Size*cellWidth + 1
	boardH := g.variant.Size*cellHeight + 1
	g.tooSmall = g.screenW < boardW+4 || g.screenH < boardH+hudHeight+2
}

// Resize records new screen dimensions. The board survives; only the
// layout and the minimum-size check change.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Window too small: wait for a resize, ignore input.
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Restart a finished board with a fresh seed. The platform also
	// restarts via Reset, so this only matters for embedded use.
	if in.Has(core.ActionRestart) && g.eng.IsTerminal() {
		cfg := g.cfg
		cfg.Seed = 0
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	// Pause toggles only while the game is live; a finished board has
	// nothing to pause.
	if in.Has(core.ActionPause) && !g.eng.IsTerminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := moveFor(in); ok {
		// moveFor yields only the four valid directions, so ApplyMove
		// cannot fail here. Post-terminal slides no-op by contract.
		moved, _ := g.eng.ApplyMove(dir)
		if moved {
			g.moves++
		}
	}

	return core.StepResult{State: g.State()}
}

// moveFor maps an input frame to at most one slide direction per tick.
func moveFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		MaxTile:  g.eng.MaxTile(),
		Moves:    g.moves,
		GameOver: g.eng.IsTerminal(),
		Paused:   g.paused || g.tooSmall,
	}
}
