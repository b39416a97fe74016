package life

import (
	"errors"
	"fmt"

	"life-engine/internal/core"
)

var (
	// ErrEmptyPattern is returned for patterns without rows or columns.
	ErrEmptyPattern = errors.New("pattern is empty")
	// ErrRaggedPattern is returned when pattern rows differ in length.
	ErrRaggedPattern = errors.New("pattern rows differ in length")
	// ErrInvalidCell is returned when a pattern cell is neither 0 nor 1.
	ErrInvalidCell = errors.New("pattern cell must be 0 or 1")
)

// Pattern is a named, immutable bitmap used to initialise grids.
type Pattern struct {
	name       string
	rows, cols int
	cells      []uint8
}

// NewPattern validates and copies a rectangular bitmap.
func NewPattern(name string, bitmap [][]uint8) (Pattern, error) {
	if len(bitmap) == 0 || len(bitmap[0]) == 0 {
		return Pattern{}, fmt.Errorf("%s: %w", name, ErrEmptyPattern)
	}
	rows, cols := len(bitmap), len(bitmap[0])
	cells := make([]uint8, 0, rows*cols)
	for r, row := range bitmap {
		if len(row) != cols {
			return Pattern{}, fmt.Errorf("%s: row %d has %d cells, want %d: %w", name, r, len(row), cols, ErrRaggedPattern)
		}
		for c, v := range row {
			if v > 1 {
				return Pattern{}, fmt.Errorf("%s: cell (%d,%d)=%d: %w", name, r, c, v, ErrInvalidCell)
			}
		}
		cells = append(cells, row...)
	}
	return Pattern{name: name, rows: rows, cols: cols, cells: cells}, nil
}

// MustPattern is like NewPattern but panics on invalid input. It is meant
// for package-level pattern tables.
func MustPattern(name string, bitmap [][]uint8) Pattern {
	p, err := NewPattern(name, bitmap)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the display name.
func (p Pattern) Name() string { return p.name }

// Rows returns the bitmap height.
func (p Pattern) Rows() int { return p.rows }

// Cols returns the bitmap width.
func (p Pattern) Cols() int { return p.cols }

// Alive reports whether the bitmap cell at (row, col) is set.
func (p Pattern) Alive(row, col int) bool { return p.cells[row*p.cols+col] != 0 }

// Population counts the set cells.
func (p Pattern) Population() int {
	n := 0
	for _, v := range p.cells {
		n += int(v)
	}
	return n
}

// Offset returns the top-left placement of p centred in a rows x cols grid.
// Offsets are floored, so they go negative when p is larger than the grid.
func (p Pattern) Offset(rows, cols int) (int, int) {
	return floorDiv(rows-p.rows, 2), floorDiv(cols-p.cols, 2)
}

// LoadPattern stamps p centred into an all-dead rows x cols grid. Pattern
// cells that would land outside the grid are dropped.
func LoadPattern(rows, cols int, p Pattern) (core.Grid, error) {
	if p.rows == 0 || p.cols == 0 {
		return core.Grid{}, fmt.Errorf("%s: %w", p.name, ErrEmptyPattern)
	}
	offRow, offCol := p.Offset(rows, cols)
	return core.BuildGrid(rows, cols, func(r, c int) bool {
		pr, pc := r-offRow, c-offCol
		if pr < 0 || pr >= p.rows || pc < 0 || pc >= p.cols {
			return false
		}
		return p.Alive(pr, pc)
	})
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
