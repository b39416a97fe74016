package life

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-engine/internal/core"
)

func TestSeedDensityBounds(t *testing.T) {
	rng := core.NewRNG(7)

	dead, err := Seed(12, 9, 0, rng)
	require.NoError(t, err)
	assert.Zero(t, dead.Population())

	full, err := Seed(12, 9, 1, rng)
	require.NoError(t, err)
	assert.Equal(t, 12*9, full.Population())
}

func TestSeedDeterministic(t *testing.T) {
	a, err := Seed(20, 30, 0.25, core.NewRNG(42))
	require.NoError(t, err)
	b, err := Seed(20, 30, 0.25, core.NewRNG(42))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must produce the same grid")

	c, err := Seed(20, 30, 0.25, core.NewRNG(43))
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seeds should diverge")
}

func TestSeedApproximatesDensity(t *testing.T) {
	g, err := Seed(100, 100, 0.25, core.NewRNG(1))
	require.NoError(t, err)
	ratio := float64(g.Population()) / 10000
	assert.InDelta(t, 0.25, ratio, 0.03)
}

func TestSeedRejectsInvalidInput(t *testing.T) {
	rng := core.NewRNG(1)
	for _, d := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := Seed(4, 4, d, rng)
		assert.ErrorIs(t, err, ErrInvalidDensity, "density %v", d)
	}
	_, err := Seed(0, 4, 0.5, rng)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestClear(t *testing.T) {
	g, err := Clear(3, 5)
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 5, H: 3}, g.Size())
	assert.Zero(t, g.Population())

	_, err = Clear(3, 0)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}
