package board

import (
	"math"

	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// NoColor marks a tile that never takes part in colour matching.
const NoColor = -1

// Kind tags the tile variant.
type Kind uint8

const (
	Regular Kind = iota
	HexBomb
	RowBomb
	ColorBomb
	kindCount
)

// traits is the per-kind behaviour. Every variant decision goes through
// kindTraits rather than switching on the kind at the call site.
type traits struct {
	name      string
	matchable bool // joins colour runs
	fires     bool // detonates when matched or caught in a blast
	spins     bool // turns slowly while on the board
	shape     Shape
	// blast returns the cells hit when a tile of this kind detonates at p.
	blast func(g *Grid, p hex.Cube, ax hex.Axis) []hex.Cube
}

var kindTraits = [kindCount]traits{
	Regular:   {name: "regular", matchable: true, shape: ShapeCircle},
	HexBomb:   {name: "hex-bomb", matchable: true, fires: true, spins: true, shape: ShapeHexagon, blast: blastNeighbors},
	RowBomb:   {name: "row-bomb", matchable: true, fires: true, shape: ShapeStriped, blast: blastLine},
	ColorBomb: {name: "color-bomb", spins: true, shape: ShapeWedges},
}

func blastNeighbors(_ *Grid, p hex.Cube, _ hex.Axis) []hex.Cube {
	n := p.Neighbors()
	return n[:]
}

func blastLine(g *Grid, p hex.Cube, ax hex.Axis) []hex.Cube {
	return hex.Line(g.size, ax, p.Coord(ax))
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindTraits[k].name
}

// Matchable reports whether tiles of this kind join colour runs.
func (k Kind) Matchable() bool { return k < kindCount && kindTraits[k].matchable }

// Fires reports whether tiles of this kind detonate when matched.
func (k Kind) Fires() bool { return k < kindCount && kindTraits[k].fires }

// Spins reports whether tiles of this kind rotate while idle on the board.
// Row bombs keep their stripes aligned with the line they clear.
func (k Kind) Spins() bool { return k < kindCount && kindTraits[k].spins }

// Tile is one cell's occupant. The embedded cube is its current position.
type Tile struct {
	hex.Cube
	Kind       Kind
	Axis       hex.Axis // RowBomb only
	Color      int
	Geometry   *Geometry
	MatchCount int

	// TargetX/TargetY is where the geometry should come to rest.
	TargetX, TargetY float64

	seen uint32 // MatchedGroups generation stamp
}

// Distance returns the cube distance between two tiles.
func Distance(t1, t2 *Tile) int { return hex.Distance(t1.Cube, t2.Cube) }

// Matches reports whether two tiles count as the same colour in a run.
func (t *Tile) Matches(o *Tile) bool {
	return t != nil && o != nil && t.Kind.Matchable() && o.Kind.Matchable() &&
		t.Color != NoColor && t.Color == o.Color
}

// Center returns the world position of the tile's cell.
func (t *Tile) Center() (x, y float64) { return hex.CubeToPixel(t.Cube) }

func (g *Grid) newTile(p hex.Cube, kind Kind, col int, ax hex.Axis) *Tile {
	x, y := hex.CubeToPixel(p)
	t := &Tile{Cube: p, Kind: kind, Axis: ax, Color: col, TargetX: x, TargetY: y}
	if kind == ColorBomb {
		t.Color = NoColor
	}
	t.Geometry = NewGeometry(x, y, ShapeCircle, g.palette.Color(t.Color))
	g.styleGeometry(t)
	return t
}

// styleGeometry refreshes shape and colours after a kind change, keeping
// position and scale.
func (g *Grid) styleGeometry(t *Tile) {
	geo := t.Geometry
	geo.Shape = kindTraits[t.Kind].shape
	geo.Color = g.palette.Color(t.Color)
	geo.Wedges = nil
	switch geo.Shape {
	case ShapeStriped:
		geo.Angle = float64(t.Axis) * math.Pi / 3
	case ShapeWedges:
		geo.Wedges = g.palette.Colors()
	}
}
