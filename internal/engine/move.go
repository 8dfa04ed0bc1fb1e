package engine

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidDirection reports a move direction outside the four valid
// values. Directions are never silently defaulted: an unknown value is
// a caller bug.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// Direction is one of the four slide directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{"up", "right", "down", "left"}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if d < Up || d > Left {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// slideRow compacts a row toward index 0 and merges adjacent equal
// tiles left to right. A tile produced by a merge never merges again
// within the same call. Returns the new row and the score gained,
// which is the sum of the merged (doubled) values.
func slideRow(row []int) ([]int, int) {
	result := make([]int, len(row))
	writePos := 0
	lastMerge := -1
	score := 0

	for _, v := range row {
		if v == 0 {
			continue
		}

		if writePos > 0 && result[writePos-1] == v && lastMerge != writePos-1 {
			// Merge with the previous tile
			result[writePos-1] *= 2
			score += result[writePos-1]
			lastMerge = writePos - 1
		} else {
			// Move tile
			result[writePos] = v
			writePos++
		}
	}

	return result, score
}

// SlideLeft slides every row toward index 0 and merges. Pure: g is not
// modified. Returns the next grid, the score gained, and whether any
// cell changed.
func SlideLeft(g Grid) (Grid, int, bool) {
	out := make(Grid, len(g))
	totalScore := 0
	changed := false

	for y, row := range g {
		newRow, score := slideRow(row)
		out[y] = newRow
		totalScore += score

		if !slices.Equal(row, newRow) {
			changed = true
		}
	}

	return out, totalScore, changed
}

// SlideRight mirrors each row, slides left, and mirrors back.
func SlideRight(g Grid) (Grid, int, bool) {
	slid, score, changed := SlideLeft(g.FlipRows())
	return slid.FlipRows(), score, changed
}

// SlideUp transposes, slides left, and transposes back.
func SlideUp(g Grid) (Grid, int, bool) {
	slid, score, changed := SlideLeft(g.Transpose())
	return slid.Transpose(), score, changed
}

// SlideDown transposes, slides right, and transposes back.
func SlideDown(g Grid) (Grid, int, bool) {
	slid, score, changed := SlideRight(g.Transpose())
	return slid.Transpose(), score, changed
}

// Slide performs a move in the given direction. Pure: g is not
// modified. Returns the next grid, the score gained, and whether any
// cell changed. An unknown direction returns ErrInvalidDirection.
func Slide(g Grid, dir Direction) (Grid, int, bool, error) {
	switch dir {
	case Left:
		next, score, changed := SlideLeft(g)
		return next, score, changed, nil
	case Right:
		next, score, changed := SlideRight(g)
		return next, score, changed, nil
	case Up:
		next, score, changed := SlideUp(g)
		return next, score, changed, nil
	case Down:
		next, score, changed := SlideDown(g)
		return next, score, changed, nil
	default:
		return nil, 0, false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
}
