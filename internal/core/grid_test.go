package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -2}} {
		_, err := NewGrid(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d,%d) err=%v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestNewGridIsAllDead(t *testing.T) {
	g, err := NewGrid(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, Size{W: 4, H: 3}, g.Size())
	assert.Zero(t, g.Population())
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	g, err := ParseGrid(`
		.#..
		##.#
		....
	`)
	require.NoError(t, err)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			once, err := g.Toggle(r, c)
			require.NoError(t, err)
			assert.NotEqual(t, g.Alive(r, c), once.Alive(r, c))
			twice, err := once.Toggle(r, c)
			require.NoError(t, err)
			if diff := cmp.Diff(g.String(), twice.String()); diff != "" {
				t.Fatalf("toggle(toggle(g,%d,%d)) mismatch (-want +got):\n%s", r, c, diff)
			}
		}
	}
}

func TestToggleLeavesSourceUntouched(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	next, err := g.Toggle(1, 1)
	require.NoError(t, err)
	assert.False(t, g.Alive(1, 1))
	assert.True(t, next.Alive(1, 1))
}

func TestToggleOutOfRange(t *testing.T) {
	g, err := NewGrid(2, 3)
	require.NoError(t, err)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := g.Toggle(rc[0], rc[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "address %v", rc)
	}
}

func TestMapReadsOnlyTheSource(t *testing.T) {
	g, err := ParseGrid("#..")
	require.NoError(t, err)
	// Each cell copies its left neighbour. Reading the destination would
	// smear the live cell across the whole row.
	shifted := g.Map(func(r, c int, _ bool) bool {
		if c == 0 {
			return false
		}
		return g.Alive(r, c-1)
	})
	assert.Equal(t, ".#.\n", shifted.String())
	assert.Equal(t, "#..\n", g.String())
}

func TestWrap(t *testing.T) {
	g, err := NewGrid(4, 5)
	require.NoError(t, err)
	r, c := g.Wrap(-1, 5)
	assert.Equal(t, 3, r)
	assert.Equal(t, 0, c)
	r, c = g.Wrap(9, -6)
	assert.Equal(t, 1, r)
	assert.Equal(t, 4, c)
}

func TestCellsReturnsCopy(t *testing.T) {
	g, err := ParseGrid("#.")
	require.NoError(t, err)
	cells := g.Cells()
	cells[0] = 0
	assert.True(t, g.Alive(0, 0))
}

func TestParseGridRejectsRaggedInput(t *testing.T) {
	_, err := ParseGrid("##\n#")
	assert.Error(t, err)
	_, err = ParseGrid("  \n")
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestEqual(t *testing.T) {
	a, _ := ParseGrid("#.\n.#")
	b, _ := ParseGrid("#.\n.#")
	c, _ := ParseGrid("#..\n.#.")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestParseBoundary(t *testing.T) {
	b, err := ParseBoundary("Toroidal")
	require.NoError(t, err)
	assert.Equal(t, Toroidal, b)
	b, err = ParseBoundary("bounded")
	require.NoError(t, err)
	assert.Equal(t, Bounded, b)
	_, err = ParseBoundary("mobius")
	assert.Error(t, err)
	assert.Equal(t, "toroidal", Toroidal.String())
}
