// Package render converts grid snapshots into RGBA pixel buffers.
package render

import "image/color"

// FillBinary writes one RGBA pixel per cell into buf: on for live cells and
// off for dead ones. buf must hold 4*len(cells) bytes.
func FillBinary(buf []byte, cells []uint8, on, off color.Color) {
	onRGBA := toRGBA(on)
	offRGBA := toRGBA(off)
	for i, c := range cells {
		col := offRGBA
		if c != 0 {
			col = onRGBA
		}
		put(buf, i, col)
	}
}

// FillIntensity writes one pixel per intensity value, scaling base by the
// intensity (0 transparent, 255 full) and compositing over off.
func FillIntensity(buf []byte, levels []uint8, base color.RGBA, off color.Color) {
	offRGBA := toRGBA(off)
	for i, level := range levels {
		if level == 0 {
			put(buf, i, offRGBA)
			continue
		}
		put(buf, i, blend(offRGBA, base, level))
	}
}

func put(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// blend mixes fg over bg with weight level/255 per channel.
func blend(bg, fg color.RGBA, level uint8) color.RGBA {
	w := uint32(level)
	mix := func(a, b uint8) uint8 {
		return uint8((uint32(a)*(255-w) + uint32(b)*w) / 255)
	}
	return color.RGBA{R: mix(bg.R, fg.R), G: mix(bg.G, fg.G), B: mix(bg.B, fg.B), A: mix(bg.A, fg.A)}
}
