package board

import "github.com/Garsondee/Hexagonal-Zero/internal/hex"

// Column is the outcome of compacting one line of the gravity axis.
type Column struct {
	Index   int // value + size-1
	Value   int // constant coordinate along the column axis
	Shifted []*Tile
	Missing int // empty cells left at the top
}

// bottomUp returns the cells of a gravity column ordered from the cell
// tiles fall towards to the top.
func (g *Grid) bottomUp(grav hex.Gravity, v int) []hex.Cube {
	line := hex.Line(g.size, grav.Column, v)
	if grav.Fall.Coord(grav.Column.Perm().K) > 0 {
		for i, j := 0, len(line)-1; i < j; i, j = i+1, j-1 {
			line[i], line[j] = line[j], line[i]
		}
	}
	return line
}

// CloseGaps lets every tile fall along the current orientation's gravity
// until it rests on another tile or the board edge. Order within a column
// is preserved. Shifted tiles get a new target position; their geometry is
// left where it was for the caller to animate.
func (g *Grid) CloseGaps() []Column {
	grav := g.orientation.Gravity()
	cols := make([]Column, 0, hex.Columns(g.size))
	for v := -g.size + 1; v <= g.size-1; v++ {
		col := Column{Index: v + g.size - 1, Value: v}
		cells := g.bottomUp(grav, v)
		w := 0
		for _, p := range cells {
			t := g.At(p)
			if t == nil {
				continue
			}
			if dst := cells[w]; dst != p {
				g.put(p, nil)
				t.Cube = dst
				g.put(dst, t)
				t.TargetX, t.TargetY = hex.CubeToPixel(dst)
				col.Shifted = append(col.Shifted, t)
			}
			w++
		}
		col.Missing = len(cells) - w
		cols = append(cols, col)
	}
	return cols
}

// ColumnOf returns the index into CloseGaps' result for the column that
// holds p under the current orientation.
func (g *Grid) ColumnOf(p hex.Cube) int {
	return p.Coord(g.orientation.Gravity().Column) + g.size - 1
}

// SpawnOffset returns the cube a new tile in p's column should start from
// so it drops in from above the board with the others.
func (g *Grid) SpawnOffset(p hex.Cube, missing int) hex.Cube {
	return p.Sub(g.orientation.Gravity().Fall.Scale(missing))
}

// Refill puts a random regular tile into every empty slot and returns the
// new tiles in storage order.
func (g *Grid) Refill() []*Tile {
	var added []*Tile
	for i, col := range g.cells {
		for j, t := range col {
			if t != nil {
				continue
			}
			p := hex.IndexToAxial(g.size, i, j)
			t = g.newTile(p, Regular, g.randomColor(), hex.AxisA)
			col[j] = t
			added = append(added, t)
		}
	}
	return added
}
