package hex

import "fmt"

// Orientation is the logical rotation of the board in steps of 60 degrees,
// counted counter-clockwise.
type Orientation uint8

// OrientationCount is the number of distinct orientations.
const OrientationCount = 6

// Gravity describes how tiles fall under one orientation: columns are the
// lines of constant Column coordinate and tiles move in Fall direction.
type Gravity struct {
	Column Axis
	Fall   Cube
}

// With the board rotated counter-clockwise, screen-down in board space turns
// clockwise, so each entry is the previous fall direction rotated by -60°.
var gravityTable = [OrientationCount]Gravity{
	{Column: AxisA, Fall: Cube{A: 0, B: -1, C: +1}},
	{Column: AxisB, Fall: Cube{A: -1, B: 0, C: +1}},
	{Column: AxisC, Fall: Cube{A: -1, B: +1, C: 0}},
	{Column: AxisA, Fall: Cube{A: 0, B: +1, C: -1}},
	{Column: AxisB, Fall: Cube{A: +1, B: 0, C: -1}},
	{Column: AxisC, Fall: Cube{A: +1, B: -1, C: 0}},
}

// Gravity returns the column axis and fall direction for o.
func (o Orientation) Gravity() Gravity { return gravityTable[o%OrientationCount] }

// Next returns the orientation after a 60° turn.
func (o Orientation) Next(clockwise bool) Orientation {
	if clockwise {
		return (o + OrientationCount - 1) % OrientationCount
	}
	return (o + 1) % OrientationCount
}

func (o Orientation) String() string {
	g := o.Gravity()
	sign := "+"
	if g.Fall.Coord(g.Column.Perm().K) < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s", sign, g.Column)
}
