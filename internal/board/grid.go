// Package board holds the hexagonal playing field: tile storage, match
// detection, gap closing, refill and bomb-chain resolution.
package board

import (
	"math/rand"

	"github.com/Garsondee/Hexagonal-Zero/internal/hex"
)

// Grid is a hexagon-shaped board stored as trimmed columns indexed by
// hex.AxialToIndex. A nil slot is an empty cell.
type Grid struct {
	size        int
	nColors     int
	cells       [][]*Tile
	orientation hex.Orientation
	palette     *Palette
	rng         *rand.Rand
	epoch       uint32
}

// New builds a full board of the given size (rings including the centre)
// with random regular tiles of nColors colours.
func New(size, nColors int, palette *Palette, rng *rand.Rand) *Grid {
	g := NewEmpty(size, nColors, palette, rng)
	g.Refill()
	return g
}

// NewEmpty builds a board with every slot empty.
func NewEmpty(size, nColors int, palette *Palette, rng *rand.Rand) *Grid {
	if palette == nil {
		palette = MustPalette(max(nColors, 1), DefaultBaseColor)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) // #nosec G404 -- game only
	}
	g := &Grid{
		size:    size,
		nColors: nColors,
		cells:   make([][]*Tile, hex.Columns(size)),
		palette: palette,
		rng:     rng,
	}
	for i := range g.cells {
		g.cells[i] = make([]*Tile, hex.ColumnLen(size, i))
	}
	return g
}

// Size returns the number of rings including the centre.
func (g *Grid) Size() int { return g.size }

// Colors returns the number of tile colours.
func (g *Grid) Colors() int { return g.nColors }

// Palette returns the colour source used for new tiles.
func (g *Grid) Palette() *Palette { return g.palette }

// Orientation returns the current logical rotation.
func (g *Grid) Orientation() hex.Orientation { return g.orientation }

// Get returns the tile at (a, c), or nil when the cell is empty or off the
// board.
func (g *Grid) Get(a, c int) *Tile {
	i, j, ok := hex.AxialToIndex(g.size, a, c)
	if !ok {
		return nil
	}
	return g.cells[i][j]
}

// At is Get for a cube coordinate.
func (g *Grid) At(p hex.Cube) *Tile { return g.Get(p.A, p.C) }

// Contains reports whether p is a cell of the board.
func (g *Grid) Contains(p hex.Cube) bool { return p.Valid() && p.Ring() < g.size }

func (g *Grid) put(p hex.Cube, t *Tile) {
	i, j, ok := hex.AxialToIndex(g.size, p.A, p.C)
	if !ok {
		return
	}
	g.cells[i][j] = t
}

// Place puts a new tile of the given kind at p, replacing any occupant.
// It returns nil if p is off the board.
func (g *Grid) Place(p hex.Cube, kind Kind, col int, ax hex.Axis) *Tile {
	if !g.Contains(p) {
		return nil
	}
	t := g.newTile(p, kind, col, ax)
	g.put(p, t)
	return t
}

// Swap exchanges two tiles' coordinates and slots. Adjacency is the
// caller's responsibility.
func (g *Grid) Swap(t1, t2 *Tile) {
	t1.Cube, t2.Cube = t2.Cube, t1.Cube
	g.put(t1.Cube, t1)
	g.put(t2.Cube, t2)
}

// Remove clears the tile's slot if it still holds that tile.
func (g *Grid) Remove(t *Tile) {
	if g.At(t.Cube) == t {
		g.put(t.Cube, nil)
	}
}

// ChangeType converts t in place into another variant. The tile keeps its
// slot, position and identity; colour bombs lose their colour.
func (g *Grid) ChangeType(t *Tile, kind Kind, ax hex.Axis) {
	t.Kind = kind
	t.Axis = ax
	if kind == ColorBomb {
		t.Color = NoColor
	}
	g.styleGeometry(t)
}

// Rotate turns the logical orientation by 60°. Stored coordinates do not
// move; only the gravity used by CloseGaps changes.
func (g *Grid) Rotate(clockwise bool) {
	g.orientation = g.orientation.Next(clockwise)
}

// Tiles returns every occupied cell in storage order.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, 0, hex.CellCount(g.size))
	for _, col := range g.cells {
		for _, t := range col {
			if t != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, col := range g.cells {
		for _, t := range col {
			if t != nil {
				n++
			}
		}
	}
	return n
}

// Empty returns the number of empty slots.
func (g *Grid) Empty() int { return hex.CellCount(g.size) - g.Count() }

func (g *Grid) randomColor() int {
	if g.nColors <= 0 {
		return 0
	}
	return g.rng.Intn(g.nColors)
}
