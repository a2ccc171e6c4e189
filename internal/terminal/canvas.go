package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Garsondee/Hexagonal-Zero/internal/board"
	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// Terminal cells are about twice as tall as they are wide.
const cellAspect = 2.0

var (
	backgroundRGB = color.RGBA{R: 16, G: 18, B: 26, A: 255}
	background    = tcell.NewRGBColor(16, 18, 26)
	outlineStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(250, 250, 245)).Background(background)
	borderStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 110, 130)).Background(background)
)

// cellView maps board space (world units, y up) to terminal cells with the
// board rotation applied.
type cellView struct {
	cx, cy float64 // cell of the board centre
	sy     float64 // rows per world unit
	angle  float64
}

// newCellView fits a board of half-extent maxCoord into a w×h cell area
// whose top-left cell is (x0, y0).
func newCellView(x0, y0, w, h int, maxCoord, angle float64) cellView {
	sy := math.Min(float64(h)/(2*maxCoord), float64(w)/(2*maxCoord*cellAspect)) * 0.95
	return cellView{
		cx:    float64(x0) + float64(w)/2,
		cy:    float64(y0) + float64(h)/2,
		sy:    sy,
		angle: angle,
	}
}

func (v cellView) toCell(x, y float64) (int, int) {
	rx, ry := hex.Rotate(x, y, v.angle)
	return int(math.Round(v.cx + rx*v.sy*cellAspect)), int(math.Round(v.cy - ry*v.sy))
}

// toView converts a cell to view coordinates; the caller undoes the
// rotation through the session.
func (v cellView) toView(col, row int) (float64, float64) {
	return (float64(col) - v.cx) / (v.sy * cellAspect), (v.cy - float64(row)) / v.sy
}

// canvas draws tile geometries as single glyphs.
type canvas struct {
	screen tcell.Screen
	view   cellView
}

// glyph picks the rune for a geometry; shrinking tiles fade to a dot.
func glyph(g *board.Geometry) rune {
	if g.Scale < 0.35 {
		return '·'
	}
	switch g.Shape {
	case board.ShapeHexagon:
		return '⬢'
	case board.ShapeStriped:
		return stripeRune(g.Angle)
	case board.ShapeWedges:
		return '✱'
	}
	if g.Scale > 1.05 {
		return '⬤'
	}
	return '●'
}

// stripeRune approximates a stripe direction with a line character.
func stripeRune(angle float64) rune {
	a := math.Mod(angle, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	switch k := int(math.Round(a/(math.Pi/4))) % 4; k {
	case 0:
		return '═'
	case 1:
		return '╱'
	case 2:
		return '║'
	default:
		return '╲'
	}
}

// tint blends c towards the background as the tile shrinks below rest.
func tint(c color.RGBA, scale float64) tcell.Color {
	t := 1 - math.Min(1, math.Max(0, scale))
	if t == 0 {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	if t == 1 {
		return background
	}
	fg, _ := colorful.MakeColor(c)
	bg, _ := colorful.MakeColor(backgroundRGB)
	r, g, b := fg.BlendLab(bg, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c *canvas) Fill(g *board.Geometry) {
	x, y := c.view.toCell(g.X, g.Y)
	style := tcell.StyleDefault.Foreground(tint(g.Color, g.Scale)).Background(background)
	c.screen.SetContent(x, y, glyph(g), nil, style)
}

func (c *canvas) Outline(g *board.Geometry) {
	x, y := c.view.toCell(g.X, g.Y)
	c.screen.SetContent(x-1, y, '[', nil, outlineStyle)
	c.screen.SetContent(x+1, y, ']', nil, outlineStyle)
}

// Border traces the board outline cell by cell.
func (c *canvas) Border(rings int, spacing float64) {
	reach := float64(rings-1)*spacing + 0.7*spacing
	corners := make([][2]int, 0, len(hex.Directions))
	for _, d := range hex.Directions {
		dx, dy := hex.CubeToPixel(d)
		a := math.Atan2(dy, dx)
		x, y := c.view.toCell(reach*math.Cos(a), reach*math.Sin(a))
		corners = append(corners, [2]int{x, y})
	}
	for i := range corners {
		c.line(corners[i], corners[(i+1)%len(corners)])
	}
}

// line plots a Bresenham line between two cells.
func (c *canvas) line(p0, p1 [2]int) {
	x0, y0, x1, y1 := p0[0], p0[1], p1[0], p1[1]
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.screen.SetContent(x0, y0, '·', nil, borderStyle)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
