package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a
	// non-positive row or column count.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfRange is returned when a cell address lies outside the grid.
	ErrOutOfRange = errors.New("cell address out of range")
)

// Boundary selects how neighbour lookups behave at the grid edges.
type Boundary uint8

const (
	// Bounded treats addresses outside the grid as absent.
	Bounded Boundary = iota
	// Toroidal wraps addresses to the opposite edge.
	Toroidal
)

func (b Boundary) String() string {
	switch b {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// ParseBoundary converts a boundary name into a Boundary value.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "bound", "edge":
		return Bounded, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("unknown boundary %q", s)
}

// Grid is an immutable rows x cols matrix of dead (0) and alive (1) cells
// stored in row-major order. Every transformation returns a new Grid.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid returns an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}, nil
}

// BuildGrid allocates a grid and asks fn for the state of every cell.
func BuildGrid(rows, cols int, fn func(row, col int) bool) (Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return Grid{}, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if fn(r, c) {
				g.data[r*cols+c] = 1
			}
		}
	}
	return g, nil
}

// ParseGrid reads a grid from lines of '#'/'O' (alive) and '.' (dead).
// Blank lines are skipped.
func ParseGrid(s string) (Grid, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return Grid{}, fmt.Errorf("%w: empty input", ErrInvalidDimensions)
	}
	cols := len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return Grid{}, fmt.Errorf("line %d has %d cells, want %d", i, len(line), cols)
		}
	}
	return BuildGrid(len(lines), cols, func(r, c int) bool {
		ch := lines[r][c]
		return ch == '#' || ch == 'O' || ch == '*'
	})
}

// Rows reports the row count.
func (g Grid) Rows() int { return g.rows }

// Cols reports the column count.
func (g Grid) Cols() int { return g.cols }

// Size reports the grid dimensions as width (cols) and height (rows).
func (g Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Empty reports whether g is the zero Grid.
func (g Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// Contains reports whether (row, col) addresses a cell of g.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear slice index for (row, col).
func (g Grid) Index(row, col int) int { return row*g.cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Alive reports whether the cell at (row, col) is alive. The address must be
// in range.
func (g Grid) Alive(row, col int) bool { return g.data[row*g.cols+col] != 0 }

// Population counts the live cells.
func (g Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Cells returns a copy of the row-major cell values.
func (g Grid) Cells() []uint8 {
	out := make([]uint8, len(g.data))
	copy(out, g.data)
	return out
}

// Map builds a new grid of the same dimensions by evaluating fn for every
// cell of g. fn only ever observes g, never the grid being built.
func (g Grid) Map(fn func(row, col int, alive bool) bool) Grid {
	next := Grid{rows: g.rows, cols: g.cols, data: make([]uint8, len(g.data))}
	for r := 0; r < g.rows; r++ {
		base := r * g.cols
		for c := 0; c < g.cols; c++ {
			if fn(r, c, g.data[base+c] != 0) {
				next.data[base+c] = 1
			}
		}
	}
	return next
}

// Toggle returns a copy of g with the cell at (row, col) flipped.
func (g Grid) Toggle(row, col int) (Grid, error) {
	if !g.Contains(row, col) {
		return Grid{}, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, g.rows, g.cols)
	}
	next := Grid{rows: g.rows, cols: g.cols, data: g.Cells()}
	idx := row*g.cols + col
	next.data[idx] = 1 - next.data[idx]
	return next, nil
}

// Equal reports whether both grids have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.data[r*g.cols+c] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
