//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"life-engine/internal/core"
	"life-engine/internal/engine"
	"life-engine/internal/render"
	"life-engine/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type player interface {
	TogglePlay() bool
	Poll()
}

type seeder interface {
	Seed() error
	Clear() error
}

type patternResetter interface {
	ResetPattern() error
}

// Game adapts a life simulation to the ebiten.Game interface.
type Game struct {
	sim         core.Sim
	painter     *render.GridPainter
	palette     render.Palette
	hud         *ui.HUD
	overlay     *ui.Overlay
	interaction *engine.Interaction
	trail       *render.Trail

	cellSize int
	viewW    int
	viewH    int
	originX  int
	originY  int
	lines    bool
	seed     int64

	pointer  *pointerState
	lastSize core.Size
}

// New constructs a Game for the provided simulation sized to the configured
// viewport.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		palette:  paletteFor(sim.Name()),
		viewW:    cfg.Width,
		viewH:    cfg.Height,
		lines:    cfg.Lines,
		seed:     cfg.Seed,
		lastSize: size,
	}
	if t, ok := sim.(engine.Toggler); ok && sim.Name() == "interactive" {
		g.interaction = engine.NewInteraction(t)
		g.pointer = &pointerState{in: g.interaction}
		g.overlay = ui.NewOverlay(g.interaction)
		g.hud = ui.NewHUD(sim, cfg.Width, speedOf(sim))
	}
	if sim.Name() == "background" {
		g.trail = render.NewTrail(size.W*size.H, 24)
		g.lines = false
	}
	g.relayout()
	return g
}

// Update handles per-frame input and polls frame-driven simulations.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	if g.hud != nil {
		g.hud.Update()
	}
	if g.overlay != nil {
		g.overlay.Update()
	}
	g.handlePointer()

	if p, ok := g.sim.(player); ok {
		p.Poll()
	}
	if g.trail != nil {
		g.trail.Update(g.sim.Cells())
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if p, ok := g.sim.(player); ok {
			p.TogglePlay()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.lines = !g.lines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if r, ok := g.sim.(patternResetter); ok {
			if err := r.ResetPattern(); err == nil {
				return
			}
		}
		g.sim.Reset(g.seed)
	}
	if s, ok := g.sim.(seeder); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			logError("seed", s.Seed())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			logError("clear", s.Clear())
		}
	}
	if g.hud == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.hud.CycleSpeed()
	}
	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if inpututil.IsKeyJustPressed(key) {
			g.hud.SelectSpeed(engine.Speeds()[i])
		}
	}
}

// handlePointer feeds this frame's mouse state to the interaction layer.
func (g *Game) handlePointer() {
	if g.interaction == nil {
		return
	}
	size := g.sim.Size()
	mx, my := ebiten.CursorPosition()
	row, col, ok := engine.CellAt(mx-g.originX, my-g.originY, g.cellSize, size.H, size.W)
	if g.hud != nil && g.hud.Contains(mx, my) {
		ok = false
	}

	logError("toggle", g.pointer.frame(row, col, ok,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)))
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})
	size := g.sim.Size()
	if size != g.lastSize {
		g.painter = render.NewGridPainter(size.W, size.H)
		g.lastSize = size
		g.relayout()
	}
	x, y := float64(g.originX), float64(g.originY)
	if g.trail != nil {
		g.painter.BlitTrail(screen, g.trail.Levels(), g.palette, g.cellSize, x, y)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.palette, g.cellSize, x, y)
	}
	if g.lines {
		g.painter.Lines(screen, g.palette.Border, g.cellSize, x, y)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen, g.cellSize, g.originX, g.originY)
	}
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout tracks the window size. Resizing only recomputes the cell size and
// origin; the grid and its schedule are untouched.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewW || outsideHeight != g.viewH {
		g.viewW, g.viewH = outsideWidth, outsideHeight
		if g.hud != nil {
			g.hud.Resize(outsideWidth)
		}
		g.relayout()
	}
	return g.viewW, g.viewH
}

func (g *Game) relayout() {
	size := g.sim.Size()
	top := 0
	if g.hud != nil {
		top = g.hud.Height()
	}
	if g.interaction != nil {
		g.cellSize = engine.InteractiveCellSize(g.viewW, g.viewH, size.H, size.W)
	} else {
		g.cellSize = fitCell(g.viewW, g.viewH-top, size.H, size.W)
	}
	g.originX = (g.viewW - size.W*g.cellSize) / 2
	g.originY = top + (g.viewH-top-size.H*g.cellSize)/2
	if g.originX < 0 {
		g.originX = 0
	}
	if g.originY < top {
		g.originY = top
	}
}

// speedOf maps the simulation's interval back to a speed option.
func speedOf(sim core.Sim) engine.Speed {
	if iv, ok := sim.(interface{ Interval() time.Duration }); ok {
		for _, s := range engine.Speeds() {
			if s.Interval() == iv.Interval() {
				return s
			}
		}
	}
	return engine.Fast
}

func paletteFor(name string) render.Palette {
	switch name {
	case "interactive":
		return render.InteractivePalette
	case "background":
		return render.BackgroundPalette
	default:
		return render.PreviewPalette(name)
	}
}

func logError(op string, err error) {
	if err != nil {
		log.Printf("%s: %v", op, err)
	}
}
