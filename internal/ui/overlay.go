//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HoverSource reports the cell currently under the pointer.
type HoverSource interface {
	Hovered() (row, col int, ok bool)
	Dragging() bool
}

// Overlay draws pointer feedback on top of the grid: an outline around the
// hovered cell, tinted while a drag is in progress.
type Overlay struct {
	hover   HoverSource
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(hover HoverSource) *Overlay {
	return &Overlay{hover: hover, visible: true}
}

// Update toggles visibility with the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw outlines the hovered cell of a grid drawn at (originX, originY).
func (o *Overlay) Draw(screen *ebiten.Image, cellSize, originX, originY int) {
	if o == nil || !o.visible || o.hover == nil || cellSize <= 0 {
		return
	}
	row, col, ok := o.hover.Hovered()
	if !ok {
		return
	}
	clr := color.RGBA{R: 255, G: 255, B: 255, A: 160}
	if o.hover.Dragging() {
		clr = color.RGBA{R: 255, G: 210, B: 90, A: 220}
	}
	x := float32(originX + col*cellSize)
	y := float32(originY + row*cellSize)
	size := float32(cellSize)
	vector.StrokeRect(screen, x+0.5, y+0.5, size-1, size-1, 1, clr, false)
}
