package app

import "life-engine/internal/engine"

type cellPos struct{ row, col int }

// pointerState turns per-frame mouse samples into interaction events: moving
// between cells leaves and enters them, a press starts a drag, and a release
// over the pressed cell counts as a click.
type pointerState struct {
	in      *engine.Interaction
	pressed bool
	pressAt cellPos
}

// frame applies one frame's sample. ok reports whether (row, col) is a grid
// cell. The hover is recorded before the press so a press landing on a
// freshly entered cell does not toggle it twice.
func (p *pointerState) frame(row, col int, ok, pressed, released bool) error {
	if hr, hc, hovering := p.in.Hovered(); hovering && (!ok || hr != row || hc != col) {
		p.in.PointerLeave(hr, hc)
	}
	if ok {
		if err := p.in.PointerEnter(row, col); err != nil {
			return err
		}
	}
	if pressed && ok {
		p.in.PointerDown()
		p.pressed = true
		p.pressAt = cellPos{row, col}
	}
	if !released {
		return nil
	}
	p.in.PointerUp()
	click := p.pressed && ok && p.pressAt == (cellPos{row, col})
	p.pressed = false
	if click {
		return p.in.Click(row, col)
	}
	return nil
}
