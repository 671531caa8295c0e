package game

const (
	FieldWidth  = 10
	FieldHeight = 20
)

// Field is the playfield grid, indexed [row][col] with row 0 at the top.
type Field struct {
	Cells [FieldHeight][FieldWidth]bool
}

// Occupied reports whether the in-bounds cell at (x, y) is filled.
// Out-of-bounds coordinates report false.
func (f Field) Occupied(x, y int) bool {
	if x < 0 || x >= FieldWidth || y < 0 || y >= FieldHeight {
		return false
	}
	return f.Cells[y][x]
}

// Collides reports whether placing shape with its top-left corner at (x, y)
// would leave the field through the left, right or bottom edge, or overlap a
// settled cell. Cells above the top edge are only checked against the side walls.
func (f *Field) Collides(shape Shape, x, y int) bool {
	for row := range shape {
		for col, filled := range shape[row] {
			if !filled {
				continue
			}

			fx := x + col
			fy := y + row

			if fx < 0 || fx >= FieldWidth || fy >= FieldHeight {
				return true
			}

			if fy >= 0 && f.Cells[fy][fx] {
				return true
			}
		}
	}

	return false
}

// Merge copies the filled cells of shape at (x, y) into the field.
// Cells outside the field are dropped.
func (f *Field) Merge(shape Shape, x, y int) {
	shape.cells(func(row, col int) {
		fx := x + col
		fy := y + row
		if fy >= 0 && fy < FieldHeight && fx >= 0 && fx < FieldWidth {
			f.Cells[fy][fx] = true
		}
	})
}

// RowFull reports whether every cell of row y is occupied.
func (f Field) RowFull(y int) bool {
	for x := 0; x < FieldWidth; x++ {
		if !f.Cells[y][x] {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the rows above each removed row
// down, fills the top with empty rows and returns the number of rows removed.
// Rows are compacted bottom-up so a row that shifts into a cleared slot is still examined.
func (f *Field) ClearFullRows() int {
	cleared := 0
	dst := FieldHeight - 1

	for src := FieldHeight - 1; src >= 0; src-- {
		if f.RowFull(src) {
			cleared++
			continue
		}
		if dst != src {
			f.Cells[dst] = f.Cells[src]
		}
		dst--
	}

	for ; dst >= 0; dst-- {
		f.Cells[dst] = [FieldWidth]bool{}
	}

	return cleared
}

// Count returns the number of occupied cells.
func (f Field) Count() int {
	n := 0
	for y := range f.Cells {
		for x := range f.Cells[y] {
			if f.Cells[y][x] {
				n++
			}
		}
	}
	return n
}

// ghostRow returns the lowest y at or below y where shape does not collide.
func ghostRow(f *Field, shape Shape, x, y int) int {
	ghost := y
	for !f.Collides(shape, x, ghost+1) {
		ghost++
	}
	return ghost
}

// lineScore is the reward for clearing n rows with a single lock.
func lineScore(n int) int {
	return n * n * 100
}
