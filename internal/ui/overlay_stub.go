//go:build !ebiten

package ui

// HoverSource reports the cell currently under the pointer.
type HoverSource interface {
	Hovered() (row, col int, ok bool)
	Dragging() bool
}

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay(HoverSource) *Overlay { return nil }

// Update is a no-op in the headless build.
func (o *Overlay) Update() {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any, int, int, int) {}
