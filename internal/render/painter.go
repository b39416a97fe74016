//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads cell data into a one-pixel-per-cell image and draws
// it scaled to the cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of w columns and h rows.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws live and dead cells in flat colours at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, p Palette, cellSize int, x, y float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillBinary(gp.buf, cells, p.Alive, p.Dead)
	gp.draw(dst, cellSize, x, y)
}

// BlitTrail draws fading trail intensities at (x, y).
func (gp *GridPainter) BlitTrail(dst *ebiten.Image, levels []uint8, p Palette, cellSize int, x, y float64) {
	if len(levels) != gp.w*gp.h {
		return
	}
	FillIntensity(gp.buf, levels, p.Alive, p.Dead)
	gp.draw(dst, cellSize, x, y)
}

// Lines strokes the cell borders on top of a drawn grid.
func (gp *GridPainter) Lines(dst *ebiten.Image, clr color.Color, cellSize int, x, y float64) {
	if cellSize < 4 {
		return
	}
	cs := float32(cellSize)
	ox, oy := float32(x), float32(y)
	width, height := cs*float32(gp.w), cs*float32(gp.h)
	for c := 0; c <= gp.w; c++ {
		lx := ox + float32(c)*cs
		vector.StrokeLine(dst, lx, oy, lx, oy+height, 1, clr, false)
	}
	for r := 0; r <= gp.h; r++ {
		ly := oy + float32(r)*cs
		vector.StrokeLine(dst, ox, ly, ox+width, ly, 1, clr, false)
	}
}

func (gp *GridPainter) draw(dst *ebiten.Image, cellSize int, x, y float64) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
