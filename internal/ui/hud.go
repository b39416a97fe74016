//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"life-engine/internal/core"
	"life-engine/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Controls is the part of a simulation the control bar drives.
type Controls interface {
	TogglePlay() bool
	IsPlaying() bool
	Seed() error
	Clear() error
	SetSpeed(engine.Speed) error
}

type hudAction int

const (
	actionPlay hudAction = iota
	actionSeed
	actionClear
	actionSpeed
)

type hudButton struct {
	action hudAction
	rect   image.Rectangle
}

// HUD renders the control bar above the simulation view: play/pause, seed,
// clear, a speed selector and a status line.
type HUD struct {
	sim      core.Sim
	controls Controls
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image

	buttons []hudButton
	speed   engine.Speed
	status  string
	err     string
}

// NewHUD constructs a control bar for sim. Simulations that do not
// implement Controls get a status-only bar.
func NewHUD(sim core.Sim, width int, speed engine.Speed) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, speed: speed}
	if c, ok := sim.(Controls); ok {
		h.controls = c
		h.layoutButtons()
	}
	return h
}

// Height is the pixel height reserved for the bar.
func (h *HUD) Height() int { return barHeight }

// Speed returns the currently selected speed.
func (h *HUD) Speed() engine.Speed { return h.speed }

// CycleSpeed selects the next speed option and applies it.
func (h *HUD) CycleSpeed() {
	if h == nil || h.controls == nil {
		return
	}
	next := h.speed.Next()
	if err := h.controls.SetSpeed(next); err != nil {
		h.err = err.Error()
		return
	}
	h.speed = next
}

// SelectSpeed applies a specific speed option.
func (h *HUD) SelectSpeed(s engine.Speed) {
	if h == nil || h.controls == nil {
		return
	}
	if err := h.controls.SetSpeed(s); err != nil {
		h.err = err.Error()
		return
	}
	h.speed = s
}

// Update refreshes the status line and handles clicks on the bar.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.status = buildStatus(h.sim)
	h.handleInput()
}

// Contains reports whether the screen position lies on the bar.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && x >= 0 && x < h.width && y >= 0 && y < barHeight
}

// Draw paints the bar anchored to the top of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	if h.pixel == nil {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width {
		h.panel = ebiten.NewImage(h.width, barHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for _, b := range h.buttons {
		h.drawButton(b.rect, h.label(b.action))
	}
	statusX := panelPadding
	if len(h.buttons) > 0 {
		statusX = h.buttons[len(h.buttons)-1].rect.Max.X + buttonGap*2
	}
	text.Draw(h.panel, h.status, face, statusX, panelPadding+labelBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if h.err != "" {
		text.Draw(h.panel, h.err, face, statusX, panelPadding+labelBaseline+14, color.RGBA{R: 240, G: 120, B: 120, A: 255})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}

// Resize updates the bar width after a window resize.
func (h *HUD) Resize(width int) {
	if h == nil || width == h.width {
		return
	}
	h.width = width
}

func (h *HUD) handleInput() {
	if h.controls == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for _, b := range h.buttons {
		if pointInRect(mx, my, b.rect) {
			h.apply(b.action)
			return
		}
	}
}

func (h *HUD) apply(action hudAction) {
	h.err = ""
	var err error
	switch action {
	case actionPlay:
		h.controls.TogglePlay()
	case actionSeed:
		err = h.controls.Seed()
	case actionClear:
		err = h.controls.Clear()
	case actionSpeed:
		h.CycleSpeed()
	}
	if err != nil {
		h.err = err.Error()
	}
}

func (h *HUD) label(action hudAction) string {
	switch action {
	case actionPlay:
		if h.controls.IsPlaying() {
			return "Pause"
		}
		return "Play"
	case actionSeed:
		return "Seed"
	case actionClear:
		return "Clear"
	default:
		s := h.speed.String()
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutButtons() {
	actions := []hudAction{actionPlay, actionSeed, actionClear, actionSpeed}
	h.buttons = make([]hudButton, len(actions))
	x := panelPadding
	for i, action := range actions {
		h.buttons[i] = hudButton{
			action: action,
			rect:   image.Rect(x, panelPadding, x+buttonWidth, panelPadding+buttonHeight),
		}
		x += buttonWidth + buttonGap
	}
}

func buildStatus(sim core.Sim) string {
	provider, ok := sim.(parameterProvider)
	if !ok {
		return sim.Name()
	}
	snap := provider.Parameters()
	parts := []string{sim.Name()}
	for _, key := range []string{"generation", "population", "interval_ms"} {
		if p, ok := snap.Lookup(key); ok {
			parts = append(parts, strings.ToLower(p.Label)+" "+p.Value)
		}
	}
	return strings.Join(parts, "  ")
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding  = 8
	buttonWidth   = 72
	buttonHeight  = 24
	buttonGap     = 6
	labelBaseline = 16
	barHeight     = panelPadding*2 + buttonHeight
)
