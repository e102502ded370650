package t2048

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient parameters. Each new highest tile is drawn one step darker than the
// previous one; after maxDarkenings steps the hue rotates and starts bright again.
const (
	paletteDelta       = 0.2
	paletteHueStep     = 60.0
	paletteInitialHue  = 60.0
	paletteMaxAngle    = 360.0
	paletteDarkenLimit = 3
)

// HSV is a colour in hue (degrees), saturation and value.
type HSV struct {
	H, S, V float64
}

// White is used for empty cells.
var White = HSV{H: 0, S: 0, V: 1}

// Hex returns the colour as #rrggbb.
func (c HSV) Hex() string {
	return colorful.Hsv(c.H, c.S, c.V).Clamped().Hex()
}

// Light reports whether dark text reads better on this colour.
func (c HSV) Light() bool {
	_, _, l := colorful.Hsv(c.H, c.S, c.V).Clamped().Hcl()
	return l > 0.6
}

// Palette assigns a background colour to every tile value seen so far.
type Palette struct {
	colors  map[int]HSV
	darkest HSV
	steps   int
}

// NewPalette creates a palette seeded with colours for empty cells, Base and NextBase.
func NewPalette() *Palette {
	p := &Palette{colors: make(map[int]HSV)}

	p.darkest = HSV{H: paletteInitialHue, S: 1, V: 1}
	p.colors[0] = White
	p.colors[Base] = p.darkest

	p.darkest = p.darker(p.darkest)
	p.colors[NextBase] = p.darkest
	return p
}

func (p *Palette) darker(c HSV) HSV {
	p.steps++
	if p.steps == paletteDarkenLimit {
		p.steps = 0
		return HSV{H: math.Mod(c.H+paletteHueStep, paletteMaxAngle), S: 1, V: 1}
	}
	return HSV{H: c.H, S: math.Max(c.S-paletteDelta, 0), V: math.Max(c.V-paletteDelta, 0)}
}

// Observe registers the current highest tile, adding a new colour the first
// time a value is seen.
func (p *Palette) Observe(highest int) {
	if _, ok := p.colors[highest]; ok {
		return
	}
	p.darkest = p.darker(p.darkest)
	p.colors[highest] = p.darkest
}

// Color returns the colour for a tile value.
func (p *Palette) Color(value int) (HSV, bool) {
	c, ok := p.colors[value]
	return c, ok
}

// Len returns the number of known tile colours.
func (p *Palette) Len() int {
	return len(p.colors)
}
