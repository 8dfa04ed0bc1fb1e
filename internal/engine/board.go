package engine

import "slices"

// Cell addresses a grid position; X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Grid is a square board of tile values. 0 marks an empty cell; every
// other value is a power of two.
type Grid [][]int

// NewGrid returns an empty size×size grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]int, size)
	}
	return g
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = slices.Clone(row)
	}
	return out
}

// Equal reports whether two grids hold the same values cell by cell.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y, row := range g {
		if !slices.Equal(row, other[y]) {
			return false
		}
	}
	return true
}

// Transpose mirrors the grid across its main diagonal. Applying it
// twice returns the original grid.
func (g Grid) Transpose() Grid {
	size := len(g)
	out := NewGrid(size)
	for y := range size {
		for x := range size {
			out[y][x] = g[x][y]
		}
	}
	return out
}

// FlipRows mirrors the grid across its vertical axis, reversing each
// row. Applying it twice returns the original grid.
func (g Grid) FlipRows() Grid {
	size := len(g)
	out := NewGrid(size)
	for y, row := range g {
		for x, v := range row {
			out[y][size-1-x] = v
		}
	}
	return out
}

// EmptyCells returns the coordinates of all empty cells.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for y, row := range g {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell reports whether at least one cell is empty.
func (g Grid) HasEmptyCell() bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentEqual reports whether any two horizontally or vertically
// adjacent tiles share a value. Empty cells never match.
func (g Grid) HasAdjacentEqual() bool {
	size := len(g)
	for y := range size {
		for x := range size {
			v := g[y][x]
			if v == 0 {
				continue
			}
			if x < size-1 && g[y][x+1] == v {
				return true
			}
			if y < size-1 && g[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any slide could still change the grid.
func (g Grid) CanMove() bool {
	return g.HasEmptyCell() || g.HasAdjacentEqual()
}

// MaxTile returns the highest tile value on the grid, 0 when empty.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}
