package engine

// Toggler flips single cells of a grid owner.
type Toggler interface {
	Toggle(row, col int) error
}

type cell struct{ row, col int }

// Interaction turns pointer events into single-cell toggles: clicks toggle
// one cell, and dragging with the pointer held toggles each cell entered.
type Interaction struct {
	target   Toggler
	dragging bool
	hovered  cell
	hovering bool
}

// NewInteraction returns an interaction layer targeting t.
func NewInteraction(t Toggler) *Interaction {
	return &Interaction{target: t}
}

// Dragging reports whether the pointer is held down.
func (in *Interaction) Dragging() bool { return in.dragging }

// PointerDown starts a drag session.
func (in *Interaction) PointerDown() { in.dragging = true }

// PointerUp ends the drag session.
func (in *Interaction) PointerUp() { in.dragging = false }

// PointerEnter records that the pointer entered (row, col) and toggles it
// while dragging. Entering the cell already hovered is ignored until the
// pointer leaves it.
func (in *Interaction) PointerEnter(row, col int) error {
	c := cell{row, col}
	if in.hovering && in.hovered == c {
		return nil
	}
	in.hovered, in.hovering = c, true
	if !in.dragging {
		return nil
	}
	return in.target.Toggle(row, col)
}

// PointerLeave records that the pointer left (row, col).
func (in *Interaction) PointerLeave(row, col int) {
	if in.hovering && in.hovered == (cell{row, col}) {
		in.hovering = false
	}
}

// Hovered returns the cell under the pointer, if any.
func (in *Interaction) Hovered() (row, col int, ok bool) {
	return in.hovered.row, in.hovered.col, in.hovering
}

// Click toggles (row, col) regardless of the drag state.
func (in *Interaction) Click(row, col int) error {
	return in.target.Toggle(row, col)
}
