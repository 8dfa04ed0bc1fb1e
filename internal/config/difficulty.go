package config

import "fmt"

// DifficultyPreset represents a named difficulty level. Difficulty
// only affects how often a spawned tile is a 4 instead of a 2: more
// fours fill the board faster.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a user-supplied string to a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, or hard)", s)
}

// FourChanceFor returns the four-tile spawn probability for a preset.
// Normal keeps the variant's own base chance.
func FourChanceFor(preset DifficultyPreset, base float64) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.2
	default:
		return base
	}
}
