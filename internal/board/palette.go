package board

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultBaseColor is the hue every palette is rotated from.
const DefaultBaseColor = "#74DDF2"

// hueCorrection maps perceptual hue positions (0..255 scale) to corrected
// ones so evenly spaced steps look evenly spaced.
var hueCorrection = [][2]float64{
	{5, 10}, {45, 30}, {70, 50}, {94, 70}, {100, 110}, {115, 125},
	{148, 145}, {177, 160}, {179, 182}, {185, 188}, {225, 210}, {255, 250},
}

// Palette is a fixed set of visually distinct tile colours.
type Palette struct {
	colors []color.RGBA
}

// NewPalette builds n colours by rotating the hue of base in equal steps.
func NewPalette(n int, base string) (*Palette, error) {
	if n <= 0 {
		return nil, fmt.Errorf("palette needs at least one colour, got %d", n)
	}
	c, err := colorful.Hex(base)
	if err != nil {
		return nil, fmt.Errorf("parse base colour %q: %w", base, err)
	}
	h, s, l := c.Hsl()
	p := &Palette{colors: make([]color.RGBA, n)}
	for i := 0; i < n; i++ {
		hue := correctHue(h + float64(i)/float64(n)*360)
		r, g, b := colorful.Hsl(hue, s, l).Clamped().RGB255()
		p.colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p, nil
}

// MustPalette is NewPalette for constant arguments; it panics on error.
func MustPalette(n int, base string) *Palette {
	p, err := NewPalette(n, base)
	if err != nil {
		panic(err)
	}
	return p
}

// Color returns the colour for a tile type. Out-of-range types, including
// NoColor, get a light neutral.
func (p *Palette) Color(i int) color.RGBA {
	if i < 0 || i >= len(p.colors) {
		return color.RGBA{R: 240, G: 240, B: 236, A: 255}
	}
	return p.colors[i]
}

// Len returns the number of colours.
func (p *Palette) Len() int { return len(p.colors) }

// Colors returns a copy of every colour in type order.
func (p *Palette) Colors() []color.RGBA {
	return append([]color.RGBA(nil), p.colors...)
}

// correctHue maps a hue in degrees through the correction table by linear
// interpolation and returns degrees.
func correctHue(hue float64) float64 {
	hue = math.Mod(math.Mod(hue, 360)*256/360, 255)
	lx, ly := 0.0, 0.0
	for _, pair := range hueCorrection {
		if hue <= pair[0] {
			corrected := ly + (pair[1]-ly)/(pair[0]-lx)*(hue-lx)
			return corrected * 360 / 256
		}
		lx, ly = pair[0], pair[1]
	}
	return ly * 360 / 256
}
