package life

import (
	"errors"
	"fmt"
	"math"

	"life-engine/internal/core"
)

// ErrInvalidDensity is returned for live-cell densities outside [0, 1].
var ErrInvalidDensity = errors.New("density must be within [0, 1]")

// Seed returns a rows x cols grid where every cell is independently alive
// with probability density.
func Seed(rows, cols int, density float64, rng *core.RNG) (core.Grid, error) {
	if density < 0 || density > 1 || math.IsNaN(density) {
		return core.Grid{}, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	return core.BuildGrid(rows, cols, func(int, int) bool {
		return rng.Chance(density)
	})
}

// Clear returns an all-dead grid.
func Clear(rows, cols int) (core.Grid, error) {
	return core.NewGrid(rows, cols)
}
