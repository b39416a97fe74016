//go:build ebiten

package app

import (
	"image/color"

	"life-engine/internal/engine"
	"life-engine/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type tile struct {
	name    string
	handle  engine.Handle
	sim     *engine.Simulation
	painter *render.GridPainter
	palette render.Palette
	cell    int
}

// GalleryGame tiles every preview of a gallery. Clicking a tile toggles its
// playback; right-clicking restores its pattern.
type GalleryGame struct {
	gallery *engine.Gallery
	tiles   []tile
	tileW   int
	tileH   int
	columns int
}

// NewGalleryGame lays the gallery previews out in a near-square grid of
// tileW x tileH tiles.
func NewGalleryGame(g *engine.Gallery, tileW, tileH int) *GalleryGame {
	previews := g.Previews()
	gg := &GalleryGame{
		gallery: g,
		tileW:   tileW,
		tileH:   tileH,
		columns: GalleryColumns(len(previews)),
	}
	for _, sim := range previews {
		h, _ := g.Handle(sim.Name())
		size := sim.Size()
		gg.tiles = append(gg.tiles, tile{
			name:    sim.Name(),
			handle:  h,
			sim:     sim,
			painter: render.NewGridPainter(size.W, size.H),
			palette: render.PreviewPalette(sim.Name()),
			cell:    fitCell(tileW, tileH, size.H, size.W),
		})
	}
	return gg
}

// WindowSize returns the pixel size needed to show every tile.
func (gg *GalleryGame) WindowSize() (int, int) {
	rows := (len(gg.tiles) + gg.columns - 1) / gg.columns
	return gg.columns * gg.tileW, max(rows, 1) * gg.tileH
}

// Update handles clicks and polls every preview.
func (gg *GalleryGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	mx, my := ebiten.CursorPosition()
	if i, ok := gg.tileAt(mx, my); ok {
		t := gg.tiles[i]
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if t.handle.IsPlaying() {
				t.handle.Stop()
			} else {
				t.handle.Start()
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			logError("reset "+t.name, t.handle.ResetPattern())
		}
	}
	gg.gallery.Poll()
	return nil
}

// Draw renders each preview centred in its tile with a name label.
func (gg *GalleryGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	face := basicfont.Face7x13
	for i, t := range gg.tiles {
		tx, ty := gg.tileOrigin(i)
		size := t.sim.Size()
		x := tx + (gg.tileW-size.W*t.cell)/2
		y := ty + (gg.tileH-size.H*t.cell)/2
		t.painter.Blit(screen, t.sim.Cells(), t.palette, t.cell, float64(x), float64(y))
		label := t.name
		if !t.handle.IsPlaying() {
			label += " (paused)"
		}
		text.Draw(screen, label, face, tx+6, ty+16, t.palette.Alive)
	}
}

// Layout keeps the logical size fixed to the tile grid.
func (gg *GalleryGame) Layout(int, int) (int, int) {
	return gg.WindowSize()
}

func (gg *GalleryGame) tileOrigin(i int) (int, int) {
	return (i % gg.columns) * gg.tileW, (i / gg.columns) * gg.tileH
}

func (gg *GalleryGame) tileAt(x, y int) (int, bool) {
	if x < 0 || y < 0 || gg.tileW <= 0 || gg.tileH <= 0 {
		return 0, false
	}
	col, row := x/gg.tileW, y/gg.tileH
	if col >= gg.columns {
		return 0, false
	}
	i := row*gg.columns + col
	return i, i < len(gg.tiles)
}
