// Package engine implements a deterministic tile-merging puzzle: an
// N×N grid of power-of-two tiles slid in one of four directions,
// adjacent equal tiles merging into their doubled value, and a new
// tile spawning after every effective move. The engine is a pure
// library with no I/O; rendering and input dispatch live elsewhere.
package engine

import (
	"errors"
	"fmt"
)

// Default game parameters.
const (
	DefaultSize       = 4
	DefaultFourChance = 0.1
)

// Rand is the source of randomness for tile spawning. *math/rand.Rand
// satisfies it; tests may supply a scripted implementation to pin down
// exact spawn sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Rules configures a game.
type Rules struct {
	// Size is the board dimension; the minimum is 2.
	Size int
	// FourChance is the probability that a spawned tile is a 4
	// rather than a 2. Zero disables fours entirely; use
	// DefaultRules for the classic 90/10 split.
	FourChance float64
}

// DefaultRules returns the classic 4×4 game with the 90/10 spawn rule.
func DefaultRules() Rules {
	return Rules{Size: DefaultSize, FourChance: DefaultFourChance}
}

// Game is a single puzzle session: a grid, a score, and a terminal
// flag. All mutation goes through ApplyMove and Reset. A Game is not
// safe for concurrent use; callers serialize access to it.
type Game struct {
	rules    Rules
	grid     Grid
	score    int
	terminal bool
	rng      Rand
}

// New creates a game with the given rules and randomness source and
// resets it, spawning the two starting tiles.
func New(rules Rules, rng Rand) (*Game, error) {
	if rules.Size < 2 {
		return nil, fmt.Errorf("engine: board size %d is below the minimum of 2", rules.Size)
	}
	if rules.FourChance < 0 || rules.FourChance >= 1 {
		return nil, fmt.Errorf("engine: four-chance %v outside [0, 1)", rules.FourChance)
	}
	if rng == nil {
		return nil, errors.New("engine: nil randomness source")
	}

	g := &Game{rules: rules, rng: rng}
	g.Reset()
	return g, nil
}

// Reset clears the grid and score, clears the terminal flag, and
// spawns exactly two starting tiles.
func (g *Game) Reset() {
	g.grid = NewGrid(g.rules.Size)
	g.score = 0
	g.terminal = false
	g.spawnTile()
	g.spawnTile()
}

// ApplyMove slides the grid in the given direction and reports whether
// the move changed anything. Only an effective move adds merge points,
// spawns a tile, and refreshes the terminal flag; a move that changes
// nothing is a defined no-op, not an error. Moves after the game is
// terminal cannot change the grid and therefore no-op as well. An
// unknown direction returns ErrInvalidDirection.
func (g *Game) ApplyMove(dir Direction) (bool, error) {
	next, gained, changed, err := Slide(g.grid, dir)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	g.grid = next
	g.score += gained
	g.spawnTile()
	g.terminal = !g.grid.CanMove()
	return true, nil
}

// spawnTile places a 2, or a 4 with FourChance probability, on an
// empty cell chosen uniformly at random. No-op on a full grid.
func (g *Game) spawnTile() {
	empty := g.grid.EmptyCells()
	if len(empty) == 0 {
		return
	}

	cell := empty[g.rng.Intn(len(empty))]
	value := 2
	if g.rng.Float64() < g.rules.FourChance {
		value = 4
	}
	g.grid[cell.Y][cell.X] = value
}

// IsTerminal reports whether no move can change the grid: every cell
// is occupied and no two adjacent tiles share a value.
func (g *Game) IsTerminal() bool {
	return g.terminal
}

// Score returns the points accumulated by merges since the last reset.
func (g *Game) Score() int {
	return g.score
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.rules.Size
}

// Grid returns a copy of the board. Mutating the copy does not affect
// the game.
func (g *Game) Grid() Grid {
	return g.grid.Clone()
}

// MaxTile returns the highest tile value on the board.
func (g *Game) MaxTile() int {
	return g.grid.MaxTile()
}
