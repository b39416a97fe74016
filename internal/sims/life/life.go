// Package life implements Conway's Game of Life over immutable core.Grid
// snapshots: stepping, random seeding and centred pattern stamping.
package life

import "life-engine/internal/core"

// Rule applies B3/S23 to a cell with n live neighbours.
func Rule(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

// Neighbors counts the live cells among the eight neighbours of (row, col).
func Neighbors(g core.Grid, row, col int, b core.Boundary) int {
	rows, cols := g.Rows(), g.Cols()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny, nx := row+dy, col+dx
			if b == core.Toroidal {
				ny, nx = g.Wrap(ny, nx)
			} else if ny < 0 || ny >= rows || nx < 0 || nx >= cols {
				continue
			}
			if g.Alive(ny, nx) {
				n++
			}
		}
	}
	return n
}

// Step computes the next generation of g. The result is a new grid; g is
// only read.
func Step(g core.Grid, b core.Boundary) core.Grid {
	if g.Empty() {
		return g
	}
	return g.Map(func(row, col int, alive bool) bool {
		return Rule(alive, Neighbors(g, row, col, b))
	})
}

// Toggle flips a single cell, returning a new grid.
func Toggle(g core.Grid, row, col int) (core.Grid, error) {
	return g.Toggle(row, col)
}
