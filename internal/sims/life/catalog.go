package life

import "strings"

var (
	// Block is the 2x2 still life.
	Block = MustPattern("Block", [][]uint8{
		{1, 1},
		{1, 1},
	})

	// Blinker is the simplest oscillator, alternating between horizontal
	// and vertical states.
	Blinker = MustPattern("Blinker", [][]uint8{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})

	// Glider moves one cell diagonally every four generations.
	Glider = MustPattern("Glider", [][]uint8{
		{0, 0, 1},
		{1, 0, 1},
		{0, 1, 1},
	})

	// Toad is a period 2 oscillator that appears to hop back and forth.
	Toad = MustPattern("Toad", [][]uint8{
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
	})

	// Beacon is a period 2 oscillator where two blocks flash on and off.
	Beacon = MustPattern("Beacon", [][]uint8{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	})

	// Pulsar is a period 3 oscillator with fourfold symmetry.
	Pulsar = MustPattern("Pulsar", [][]uint8{
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
	})

	// GosperGliderGun emits a glider every 30 generations.
	GosperGliderGun = mustPlaintext("Gosper Glider Gun", `
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................
`)
)

var catalog = []Pattern{Blinker, Glider, Toad, Beacon, Pulsar, GosperGliderGun}

// Catalog returns the preview patterns in display order.
func Catalog() []Pattern {
	out := make([]Pattern, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog pattern (or Block) by name. Matching ignores case,
// spaces, dashes and underscores, so "gosper-glider-gun" finds the gun.
func Lookup(name string) (Pattern, bool) {
	key := patternKey(name)
	if key == patternKey(Block.Name()) {
		return Block, true
	}
	for _, p := range catalog {
		if patternKey(p.Name()) == key {
			return p, true
		}
	}
	return Pattern{}, false
}

func patternKey(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

func mustPlaintext(name, text string) Pattern {
	p, err := ParsePlaintext(name, strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	return p
}
