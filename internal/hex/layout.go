package hex

import "math"

// Spacing is the distance between the centres of two neighbouring cells.
var Spacing = math.Sqrt(3)

// Basis vectors along a (q) and c (r).
var (
	iqX, iqY = 1.5, -math.Sqrt(3) / 2
	irX, irY = 0.0, -math.Sqrt(3)
)

// AxialToPixel maps an axial coordinate to its world-space centre.
// Orientation does not enter here; the board rotation is applied by the
// renderer and undone on input with Rotate.
func AxialToPixel(a, c int) (x, y float64) {
	fa, fc := float64(a), float64(c)
	return fa*iqX + fc*irX, fa*iqY + fc*irY
}

// CubeToPixel is AxialToPixel for a cube coordinate.
func CubeToPixel(p Cube) (x, y float64) { return AxialToPixel(p.A, p.C) }

// PixelToAxial returns the cell containing the world-space point (x, y).
func PixelToAxial(x, y float64) Cube {
	a := x / iqX
	c := (y - a*iqY) / irY
	return Round(a, -a-c, c)
}

// Round is the standard cube rounding: round each component, then
// recompute the one with the largest rounding error from the other two.
func Round(a, b, c float64) Cube {
	ra, rb, rc := math.Round(a), math.Round(b), math.Round(c)
	da, db, dc := math.Abs(ra-a), math.Abs(rb-b), math.Abs(rc-c)
	switch {
	case da > db && da > dc:
		ra = -rb - rc
	case db > dc:
		rb = -ra - rc
	default:
		rc = -ra - rb
	}
	return Cube{A: int(ra), B: int(rb), C: int(rc)}
}

// Rotate turns (x, y) counter-clockwise by angle radians about the origin.
func Rotate(x, y, angle float64) (float64, float64) {
	s, c := math.Sincos(angle)
	return x*c - y*s, x*s + y*c
}
