package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// face is the 7×13 bitmap font used for all HUD and panel text.
var face = text.NewGoXFace(basicfont.Face7x13)

const (
	charW = 7
	lineH = 13
)

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, face, op)
}

// textWidth returns the advance of s in pixels.
func textWidth(s string) int {
	w, _ := text.Measure(s, face, lineH)
	return int(w)
}
