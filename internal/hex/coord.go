// Package hex implements the cube/axial coordinate geometry of the board.
//
// Cube coordinates (A, B, C) always satisfy A+B+C == 0. Axial storage keeps
// (A, C) and derives B. World space has y pointing up; one unit is the
// circumradius of a hexagon.
package hex

// Cube is a cell address in cube coordinates.
type Cube struct {
	A int
	B int
	C int
}

// Axial builds a cube coordinate from its axial pair.
func Axial(a, c int) Cube { return Cube{A: a, B: -a - c, C: c} }

// Valid reports whether the cube invariant holds.
func (p Cube) Valid() bool { return p.A+p.B+p.C == 0 }

// Add returns p+q.
func (p Cube) Add(q Cube) Cube { return Cube{p.A + q.A, p.B + q.B, p.C + q.C} }

// Sub returns p-q.
func (p Cube) Sub(q Cube) Cube { return Cube{p.A - q.A, p.B - q.B, p.C - q.C} }

// Scale multiplies every component by k.
func (p Cube) Scale(k int) Cube { return Cube{p.A * k, p.B * k, p.C * k} }

// Coord returns the component for the given axis.
func (p Cube) Coord(ax Axis) int {
	switch ax {
	case AxisA:
		return p.A
	case AxisB:
		return p.B
	default:
		return p.C
	}
}

// With returns a copy of p with the component for ax replaced.
// The result does not keep the cube invariant on its own.
func (p Cube) With(ax Axis, v int) Cube {
	switch ax {
	case AxisA:
		p.A = v
	case AxisB:
		p.B = v
	default:
		p.C = v
	}
	return p
}

// Ring returns max(|a|,|b|,|c|), the ring the cell sits on (0 = centre).
func (p Cube) Ring() int {
	return max(abs(p.A), abs(p.B), abs(p.C))
}

// Directions lists the six neighbour offsets as (a, c) pairs.
var Directions = [6]Cube{
	Axial(+1, 0), Axial(+1, -1), Axial(0, -1),
	Axial(-1, 0), Axial(-1, +1), Axial(0, +1),
}

// Neighbors returns the six adjacent cells, including ones off the board.
func (p Cube) Neighbors() [6]Cube {
	var out [6]Cube
	for i, d := range Directions {
		out[i] = p.Add(d)
	}
	return out
}

// Distance returns the hex distance max(|Δa|,|Δb|,|Δc|).
func Distance(p, q Cube) int {
	return p.Sub(q).Ring()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
