package tilegame

import "github.com/merge48/merge48/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateTooSmall GameStateType = "too_small"
)

// Snapshot captures the complete game state for determinism testing
// and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Size    int
	Board   engine.Grid
	Score   int
	MaxTile int
	Moves   int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism
// verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.eng.IsTerminal():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Size:    g.variant.Size,
		Board:   g.eng.Grid(),
		Score:   g.eng.Score(),
		MaxTile: g.eng.MaxTile(),
		Moves:   g.moves,
		State:   state,
	}
}
