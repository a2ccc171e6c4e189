package display

import (
	"math"

	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// viewMargin pads the board view so the border and pulsing tiles fit.
const viewMargin = 1.08

// viewport maps board space (world units, y up) to screen pixels. The
// board rotation is applied here, the way the session expects.
type viewport struct {
	cx, cy float64 // screen centre of the board
	scale  float64 // pixels per world unit
	angle  float64
}

// newViewport fits a square view of half-extent maxCoord into a w×h area
// whose top-left corner is at (x0, y0).
func newViewport(x0, y0, w, h int, maxCoord, angle float64) viewport {
	side := math.Min(float64(w), float64(h))
	return viewport{
		cx:    float64(x0) + float64(w)/2,
		cy:    float64(y0) + float64(h)/2,
		scale: side / (2 * maxCoord * viewMargin),
		angle: angle,
	}
}

// toScreen rotates a board point into view and converts it to pixels.
func (v viewport) toScreen(x, y float64) (float32, float32) {
	rx, ry := hex.Rotate(x, y, v.angle)
	return float32(v.cx + rx*v.scale), float32(v.cy - ry*v.scale)
}

// toView converts a pixel to view coordinates. The caller undoes the
// rotation through the session.
func (v viewport) toView(sx, sy int) (float64, float64) {
	return (float64(sx) - v.cx) / v.scale, (v.cy - float64(sy)) / v.scale
}

// polygon returns n points on a circle of radius r around (x, y) in board
// space, starting at angle phase.
func polygon(x, y, r, phase float64, n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		s, c := math.Sincos(phase + 2*math.Pi*float64(i)/float64(n))
		pts[i] = [2]float64{x + r*c, y + r*s}
	}
	return pts
}

// borderCorners returns the six corners of the board outline in board
// space, just outside the corner cells.
func borderCorners(rings int) [][2]float64 {
	pts := make([][2]float64, len(hex.Directions))
	reach := float64(rings-1)*hex.Spacing + 0.6*hex.Spacing
	for i, d := range hex.Directions {
		dx, dy := hex.CubeToPixel(d)
		a := math.Atan2(dy, dx)
		pts[i] = [2]float64{reach * math.Cos(a), reach * math.Sin(a)}
	}
	return pts
}
