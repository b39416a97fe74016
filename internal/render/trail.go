package render

// Trail keeps a fading intensity per cell so recently dead cells linger for
// a few frames. Live cells are always at full intensity.
type Trail struct {
	levels []uint8
	decay  uint8
}

// NewTrail allocates a trail for n cells. decay is subtracted from every
// dead cell's intensity on each Update.
func NewTrail(n int, decay uint8) *Trail {
	if decay == 0 {
		decay = 1
	}
	return &Trail{levels: make([]uint8, n), decay: decay}
}

// Update folds the latest cell values into the trail. A length mismatch
// (the grid was rebuilt) resets the trail.
func (t *Trail) Update(cells []uint8) {
	if len(cells) != len(t.levels) {
		t.levels = make([]uint8, len(cells))
	}
	for i, c := range cells {
		switch {
		case c != 0:
			t.levels[i] = 255
		case t.levels[i] > t.decay:
			t.levels[i] -= t.decay
		default:
			t.levels[i] = 0
		}
	}
}

// Levels exposes the current intensities.
func (t *Trail) Levels() []uint8 { return t.levels }
