package engine

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestSlideRowMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile must not merge again",
			input:    []int{2, 2, 4, 0},
			expected: []int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "two pairs of different values",
			input:    []int{2, 2, 4, 4},
			expected: []int{4, 8, 0, 0},
			score:    12,
		},
		{
			name:     "three equal tiles pair left to right",
			input:    []int{4, 4, 4, 0},
			expected: []int{8, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merge across gap",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "no change needed",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile slides without score",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "short row",
			input:    []int{2, 2},
			expected: []int{4, 0},
			score:    4,
		},
		{
			name:     "wide row with chained equals",
			input:    []int{2, 2, 2, 2, 2},
			expected: []int{4, 4, 2, 0, 0},
			score:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideRow(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlideLeft(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	result, score, changed := SlideLeft(g)

	if !result.Equal(expected) {
		t.Errorf("SlideLeft: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideLeft should report the grid changed")
	}
	if want := 4 + 8 + 4 + 4; score != want {
		t.Errorf("SlideLeft score = %d, want %d", score, want)
	}
}

func TestSlideRight(t *testing.T) {
	g := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Grid{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	result, _, changed := SlideRight(g)

	if !result.Equal(expected) {
		t.Errorf("SlideRight: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideRight should report the grid changed")
	}
}

func TestSlideUp(t *testing.T) {
	g := Grid{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Grid{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	result, _, changed := SlideUp(g)

	if !result.Equal(expected) {
		t.Errorf("SlideUp: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideUp should report the grid changed")
	}
}

func TestSlideDown(t *testing.T) {
	g := Grid{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	result, _, changed := SlideDown(g)

	if !result.Equal(expected) {
		t.Errorf("SlideDown: got\n%v\nwant\n%v", result, expected)
	}
	if !changed {
		t.Error("SlideDown should report the grid changed")
	}
}

func TestSlideNoChange(t *testing.T) {
	// Tiles already packed against the target edge must not register
	// as a change in any direction.
	tests := []struct {
		name string
		grid Grid
		dir  Direction
	}{
		{
			name: "left-aligned rows",
			grid: Grid{{4, 2, 0, 0}, {8, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			dir:  Left,
		},
		{
			name: "right-aligned rows",
			grid: Grid{{0, 0, 4, 2}, {0, 0, 0, 8}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			dir:  Right,
		},
		{
			name: "top-aligned columns",
			grid: Grid{{2, 8, 0, 4}, {4, 0, 0, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			dir:  Up,
		},
		{
			name: "bottom-aligned columns",
			grid: Grid{{0, 0, 0, 0}, {0, 0, 0, 0}, {2, 0, 0, 4}, {4, 8, 0, 2}},
			dir:  Down,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, changed, err := Slide(tt.grid, tt.dir)
			if err != nil {
				t.Fatalf("Slide returned error: %v", err)
			}
			if changed {
				t.Errorf("Slide(%s) reported a change for an already packed grid", tt.dir)
			}
			if score != 0 {
				t.Errorf("Slide(%s) score = %d, want 0", tt.dir, score)
			}
			if !result.Equal(tt.grid) {
				t.Errorf("Slide(%s) altered the grid:\ngot  %v\nwant %v", tt.dir, result, tt.grid)
			}
		})
	}
}

func TestSlideInvalidDirection(t *testing.T) {
	g := Grid{{2, 0}, {0, 2}}

	for _, dir := range []Direction{Direction(-1), Direction(4), Direction(42)} {
		_, _, _, err := Slide(g, dir)
		if !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("Slide(%d) error = %v, want ErrInvalidDirection", int(dir), err)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{Up, "up"},
		{Right, "right"},
		{Down, "down"},
		{Left, "left"},
		{Direction(9), "direction(9)"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.expected {
			t.Errorf("Direction(%d).String() = %q, want %q", int(tt.dir), got, tt.expected)
		}
	}
}

// oracleMergeLine is an independent reference implementation of the
// compact-merge-compact step: it pairs adjacent equal values of the
// compacted line left to right, skipping past each merge.
func oracleMergeLine(line []int) ([]int, int) {
	compact := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			compact = append(compact, v)
		}
	}

	out := make([]int, 0, len(line))
	score := 0
	for i := 0; i < len(compact); i++ {
		if i+1 < len(compact) && compact[i] == compact[i+1] {
			out = append(out, compact[i]*2)
			score += compact[i] * 2
			i++
		} else {
			out = append(out, compact[i])
		}
	}

	for len(out) < len(line) {
		out = append(out, 0)
	}
	return out, score
}

// oracleSlide implements each direction directly, without the
// canonical transform, by extracting lines in movement order.
func oracleSlide(g Grid, dir Direction) (Grid, int) {
	size := g.Size()
	out := NewGrid(size)
	total := 0

	switch dir {
	case Left:
		for y := range size {
			merged, score := oracleMergeLine(g[y])
			copy(out[y], merged)
			total += score
		}
	case Right:
		for y := range size {
			line := make([]int, size)
			for x := range size {
				line[x] = g[y][size-1-x]
			}
			merged, score := oracleMergeLine(line)
			for x := range size {
				out[y][size-1-x] = merged[x]
			}
			total += score
		}
	case Up:
		for x := range size {
			line := make([]int, size)
			for y := range size {
				line[y] = g[y][x]
			}
			merged, score := oracleMergeLine(line)
			for y := range size {
				out[y][x] = merged[y]
			}
			total += score
		}
	case Down:
		for x := range size {
			line := make([]int, size)
			for y := range size {
				line[y] = g[size-1-y][x]
			}
			merged, score := oracleMergeLine(line)
			for y := range size {
				out[size-1-y][x] = merged[y]
			}
			total += score
		}
	}

	return out, total
}

func randomGrid(rng *rand.Rand, size int) Grid {
	// Weighted toward empties and low tiles so merges stay frequent.
	values := []int{0, 0, 0, 2, 2, 4, 4, 8, 16, 32}
	g := NewGrid(size)
	for y := range size {
		for x := range size {
			g[y][x] = values[rng.Intn(len(values))]
		}
	}
	return g
}

func TestTransformEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{2, 3, 4, 5, 6}

	for _, dir := range []Direction{Up, Right, Down, Left} {
		t.Run(dir.String(), func(t *testing.T) {
			for trial := range 150 {
				g := randomGrid(rng, sizes[trial%len(sizes)])

				got, gotScore, _, err := Slide(g, dir)
				if err != nil {
					t.Fatalf("Slide returned error: %v", err)
				}
				want, wantScore := oracleSlide(g, dir)

				if !got.Equal(want) {
					t.Fatalf("Slide(%s) diverged from direct implementation on %v:\ngot  %v\nwant %v",
						dir, g, got, want)
				}
				if gotScore != wantScore {
					t.Fatalf("Slide(%s) score on %v = %d, want %d", dir, g, gotScore, wantScore)
				}
			}
		})
	}
}

func TestSlideDoesNotMutateInput(t *testing.T) {
	g := Grid{
		{2, 2, 4, 0},
		{0, 4, 4, 8},
		{2, 0, 2, 0},
		{0, 0, 0, 2},
	}
	saved := g.Clone()

	for _, dir := range []Direction{Up, Right, Down, Left} {
		if _, _, _, err := Slide(g, dir); err != nil {
			t.Fatalf("Slide(%s) returned error: %v", dir, err)
		}
		if !g.Equal(saved) {
			t.Fatalf("Slide(%s) mutated its input grid", dir)
		}
	}
}
