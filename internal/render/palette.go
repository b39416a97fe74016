package render

import (
	"image/color"
	"strings"
)

// Palette holds the colours used to draw one simulation context.
type Palette struct {
	Alive  color.RGBA
	Dead   color.RGBA
	Border color.RGBA
}

var (
	// InteractivePalette matches the editable grid's purple theme.
	InteractivePalette = Palette{
		Alive:  color.RGBA{R: 0xad, G: 0x7b, B: 0xee, A: 0xff},
		Dead:   color.RGBA{R: 0x24, G: 0x06, B: 0x43, A: 0xff},
		Border: color.RGBA{R: 0x90, G: 0x50, B: 0xe9, A: 0xff},
	}
	// BackgroundPalette draws pale blue cells over black.
	BackgroundPalette = Palette{
		Alive: color.RGBA{R: 180, G: 230, B: 255, A: 255},
		Dead:  color.RGBA{A: 255},
	}
)

var previewColors = map[string]color.RGBA{
	"blinker": {R: 255, G: 150, B: 150, A: 255},
	"glider":  {R: 150, G: 255, B: 150, A: 255},
	"toad":    {R: 150, G: 180, B: 255, A: 255},
	"beacon":  {R: 255, G: 255, B: 150, A: 255},
	"pulsar":  {R: 255, G: 150, B: 255, A: 255},
}

// PreviewPalette returns the palette for a named pattern preview. Unknown
// names get cyan.
func PreviewPalette(name string) Palette {
	alive, ok := previewColors[strings.ToLower(name)]
	if !ok {
		alive = color.RGBA{R: 150, G: 255, B: 255, A: 255}
	}
	return Palette{Alive: alive, Dead: color.RGBA{A: 230}}
}
