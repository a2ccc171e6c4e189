package hex

// Axis names one of the three cube components.
type Axis uint8

const (
	AxisA Axis = iota
	AxisB
	AxisC
	axisCount
)

// Axes lists the three axes in scan order.
var Axes = [axisCount]Axis{AxisA, AxisB, AxisC}

func (ax Axis) String() string {
	switch ax {
	case AxisA:
		return "a"
	case AxisB:
		return "b"
	case AxisC:
		return "c"
	default:
		return "?"
	}
}

// Permutation is the cyclic relabelling (i, j, k) belonging to an axis.
// I is the component held constant along a line of that axis, K the one a
// line is walked by, and J is derived as -I-K.
type Permutation struct {
	I, J, K Axis
}

var permutations = [axisCount]Permutation{
	AxisA: {I: AxisA, J: AxisB, K: AxisC},
	AxisB: {I: AxisB, J: AxisC, K: AxisA},
	AxisC: {I: AxisC, J: AxisA, K: AxisB},
}

// Perm returns the fixed permutation for ax.
func (ax Axis) Perm() Permutation { return permutations[ax] }

// Line returns every on-board cell whose ax component equals v, ordered by
// the permutation's K component. Bounds are trimmed per line so no
// off-board coordinate is produced. Returns nil if the line misses the board.
func Line(size int, ax Axis, v int) []Cube {
	if abs(v) >= size {
		return nil
	}
	p := ax.Perm()
	lo := -size + 1 - min(0, v)
	hi := size - 1 - max(0, v)
	out := make([]Cube, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		var c Cube
		c = c.With(p.I, v)
		c = c.With(p.K, k)
		c = c.With(p.J, -v-k)
		out = append(out, c)
	}
	return out
}
