package board

import (
	"image/color"

	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// Shape selects how a Geometry is drawn.
type Shape uint8

const (
	ShapeCircle  Shape = iota // regular tile
	ShapeHexagon              // hex bomb
	ShapeStriped              // row bomb, stripes along Angle
	ShapeWedges               // colour bomb, one wedge per palette colour
)

// DefaultScale is the resting size of a tile; at scale 1 its radius is
// half the cell spacing.
const DefaultScale = 1.0

// Canvas draws geometries. Front ends implement it; world coordinates are
// board space (y up) and the canvas applies the board rotation itself.
type Canvas interface {
	Fill(g *Geometry)
	Outline(g *Geometry)
	Border(rings int, spacing float64)
}

// Geometry is the renderable state a tile owns.
type Geometry struct {
	X, Y      float64
	Scale     float64
	BaseScale float64
	Angle     float64 // spin, radians
	Shape     Shape
	Color     color.RGBA
	Wedges    []color.RGBA
	Hidden    bool
}

// NewGeometry places a shape at (x, y) at the default scale.
func NewGeometry(x, y float64, shape Shape, c color.RGBA) *Geometry {
	return &Geometry{X: x, Y: y, Scale: DefaultScale, BaseScale: DefaultScale, Shape: shape, Color: c}
}

// Move sets the centre.
func (g *Geometry) Move(x, y float64) { g.X, g.Y = x, y }

// Resize scales relative to the base scale; 1 restores the resting size.
func (g *Geometry) Resize(f float64) {
	if f < 0 {
		f = 0
	}
	g.Scale = g.BaseScale * f
}

// Hide stops the geometry from rendering.
func (g *Geometry) Hide() { g.Hidden = true }

// Rotate spins the geometry by delta radians.
func (g *Geometry) Rotate(delta float64) { g.Angle += delta }

// Radius returns the drawn radius in world units.
func (g *Geometry) Radius() float64 { return hex.Spacing / 2 * g.Scale }

// Render draws the geometry filled, or only its outline.
func (g *Geometry) Render(c Canvas, outline bool) {
	if g.Hidden {
		return
	}
	if outline {
		c.Outline(g)
		return
	}
	c.Fill(g)
}
