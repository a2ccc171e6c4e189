package display

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Hexagonal-Zero/internal/board"
)

const (
	circleSegments = 28
	outlineWidth   = 2.5
	borderWidth    = 3.0
)

var (
	outlineColor = color.RGBA{R: 250, G: 250, B: 245, A: 255}
	borderColor  = color.RGBA{R: 90, G: 110, B: 130, A: 255}
	stripeColor  = color.RGBA{R: 255, G: 255, B: 255, A: 220}
	bombRim      = color.RGBA{R: 30, G: 30, B: 36, A: 255}
)

// whiteSub is the 1×1 source image for DrawTriangles.
var whiteSub = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// canvas draws tile geometries onto an ebiten image through a viewport.
type canvas struct {
	dst *ebiten.Image
	vp  viewport
	vs  []ebiten.Vertex
	is  []uint16
}

func (c *canvas) Fill(g *board.Geometry) {
	r := g.Radius()
	switch g.Shape {
	case board.ShapeHexagon:
		c.fan(polygon(g.X, g.Y, r*1.1, g.Angle, 6), g.X, g.Y, g.Color)
		c.ring(polygon(g.X, g.Y, r*1.1, g.Angle, 6), bombRim, 2)
	case board.ShapeStriped:
		c.fan(polygon(g.X, g.Y, r, 0, circleSegments), g.X, g.Y, g.Color)
		c.stripes(g, r)
	case board.ShapeWedges:
		c.wedges(g, r)
	default:
		c.fan(polygon(g.X, g.Y, r, 0, circleSegments), g.X, g.Y, g.Color)
	}
}

func (c *canvas) Outline(g *board.Geometry) {
	n := circleSegments
	if g.Shape == board.ShapeHexagon {
		n = 6
	}
	c.ring(polygon(g.X, g.Y, g.Radius()*1.1, g.Angle, n), outlineColor, outlineWidth)
}

func (c *canvas) Border(rings int, _ float64) {
	c.ring(borderCorners(rings), borderColor, borderWidth)
}

// fan fills a convex polygon as a triangle fan around (cx, cy).
func (c *canvas) fan(pts [][2]float64, cx, cy float64, col color.RGBA) {
	c.vs, c.is = c.vs[:0], c.is[:0]
	r, g, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	sx, sy := c.vp.toScreen(cx, cy)
	c.vs = append(c.vs, ebiten.Vertex{DstX: sx, DstY: sy, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a})
	for _, p := range pts {
		px, py := c.vp.toScreen(p[0], p[1])
		c.vs = append(c.vs, ebiten.Vertex{DstX: px, DstY: py, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a})
	}
	n := uint16(len(pts))
	for i := uint16(0); i < n; i++ {
		c.is = append(c.is, 0, 1+i, 1+(i+1)%n)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(c.vs, c.is, whiteSub, op)
}

// ring strokes a closed polygon.
func (c *canvas) ring(pts [][2]float64, col color.RGBA, width float32) {
	for i := range pts {
		j := (i + 1) % len(pts)
		x0, y0 := c.vp.toScreen(pts[i][0], pts[i][1])
		x1, y1 := c.vp.toScreen(pts[j][0], pts[j][1])
		vector.StrokeLine(c.dst, x0, y0, x1, y1, width, col, true)
	}
}

// stripes draws three chords across a row bomb along its axis.
func (c *canvas) stripes(g *board.Geometry, r float64) {
	s, co := math.Sincos(g.Angle)
	for _, off := range []float64{-0.45, 0, 0.45} {
		ox, oy := -s*off*r, co*off*r
		half := math.Sqrt(1-off*off) * r * 0.9
		x0, y0 := c.vp.toScreen(g.X+ox-co*half, g.Y+oy-s*half)
		x1, y1 := c.vp.toScreen(g.X+ox+co*half, g.Y+oy+s*half)
		vector.StrokeLine(c.dst, x0, y0, x1, y1, 2, stripeColor, true)
	}
}

// wedges draws a colour bomb as one slice per palette colour.
func (c *canvas) wedges(g *board.Geometry, r float64) {
	if len(g.Wedges) == 0 {
		c.fan(polygon(g.X, g.Y, r, 0, circleSegments), g.X, g.Y, g.Color)
		return
	}
	per := circleSegments / len(g.Wedges)
	if per < 2 {
		per = 2
	}
	step := 2 * math.Pi / float64(len(g.Wedges))
	for i, col := range g.Wedges {
		start := g.Angle + float64(i)*step
		arc := make([][2]float64, 0, per+1)
		for k := 0; k <= per; k++ {
			s, co := math.Sincos(start + step*float64(k)/float64(per))
			arc = append(arc, [2]float64{g.X + r*co, g.Y + r*s})
		}
		c.openFan(arc, g.X, g.Y, col)
	}
}

// openFan fills the sector between consecutive arc points and the centre
// without closing back to the first point.
func (c *canvas) openFan(arc [][2]float64, cx, cy float64, col color.RGBA) {
	c.vs, c.is = c.vs[:0], c.is[:0]
	r, g, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	sx, sy := c.vp.toScreen(cx, cy)
	c.vs = append(c.vs, ebiten.Vertex{DstX: sx, DstY: sy, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a})
	for _, p := range arc {
		px, py := c.vp.toScreen(p[0], p[1])
		c.vs = append(c.vs, ebiten.Vertex{DstX: px, DstY: py, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a})
	}
	for i := uint16(1); i < uint16(len(arc)); i++ {
		c.is = append(c.is, 0, i, i+1)
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
