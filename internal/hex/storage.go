package hex

// Storage indexing for a hexagon-shaped board of the given size (number of
// rings including the centre). Columns i run over a; each column is trimmed
// to the cells actually on the board, so no corner slot is wasted.

// Columns returns the number of storage columns, 2*size-1.
func Columns(size int) int { return 2*size - 1 }

// ColumnLen returns the number of cells in storage column i.
func ColumnLen(size, i int) int {
	if i < size {
		return size + i
	}
	return 3*size - 2 - i
}

// CellCount returns the number of cells on a board of the given size.
func CellCount(size int) int { return 3*size*(size-1) + 1 }

// AxialToIndex maps (a, c) to its storage slot. ok is false when the cell
// lies outside the board.
func AxialToIndex(size, a, c int) (i, j int, ok bool) {
	if Axial(a, c).Ring() >= size {
		return 0, 0, false
	}
	i = a + size - 1
	j = c + min(i, size-1)
	return i, j, true
}

// IndexToAxial inverts AxialToIndex.
func IndexToAxial(size, i, j int) Cube {
	a := i - (size - 1)
	c := j - min(i, size-1)
	return Axial(a, c)
}
