package core

// RuntimeConfig is passed to the game on Reset. The game uses it to
// adapt to the screen size and to seed deterministic play.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState communicates game status to the platform after each tick.
type GameState struct {
	Score    int  // Points accumulated by merges
	MaxTile  int  // Highest tile on the board
	Moves    int  // Effective moves made since reset
	GameOver bool // No move can change the board
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
