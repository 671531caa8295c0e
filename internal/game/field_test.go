package game

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestCollidesBounds(t *testing.T) {
	var f Field
	o := ShapeOf(KindO)

	tests := []struct {
		name    string
		x, y    int
		collide bool
	}{
		{"inside", 4, 4, false},
		{"left wall", -1, 4, true},
		{"right wall", FieldWidth - 1, 4, true},
		{"flush right", FieldWidth - 2, 4, false},
		{"floor", 4, FieldHeight - 1, true},
		{"resting on floor", 4, FieldHeight - 2, false},
		{"above the field", 4, -2, false},
		{"above and past the left wall", -1, -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.collide, f.Collides(o, tt.x, tt.y))
		})
	}
}

func TestCollidesIgnoresEmptyShapeCells(t *testing.T) {
	f := fieldFromRows(t,
		"#.........",
		"..........",
	)
	tShape := ShapeOf(KindT)

	// the T's empty top-left corner sits on the occupied cell
	assert.False(t, f.Collides(tShape, 0, FieldHeight-2))
	assert.True(t, f.Collides(tShape, 0, FieldHeight-3))
}

// collidesReference restates the collision rule cell by cell in absolute coordinates.
func collidesReference(cells []bool, shape Shape, x, y int) bool {
	hit := false
	shape.cells(func(row, col int) {
		fx, fy := x+col, y+row
		switch {
		case fx < 0 || fx >= FieldWidth:
			hit = true
		case fy >= FieldHeight:
			hit = true
		case fy >= 0 && cells[fy*FieldWidth+fx]:
			hit = true
		}
	})
	return hit
}

func TestCollidesProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("collision iff a filled cell is out of bounds or overlaps the field", prop.ForAll(
		func(density []int, kind int, turns int, x int, y int) bool {
			var f Field
			cells := make([]bool, len(density))
			for i, d := range density {
				cells[i] = d == 0
				f.Cells[i/FieldWidth][i%FieldWidth] = cells[i]
			}

			shape := ShapeOf(Kind(kind))
			for range turns {
				shape = shape.Rotate()
			}

			return f.Collides(shape, x, y) == collidesReference(cells, shape, x, y)
		},
		gen.SliceOfN(FieldWidth*FieldHeight, gen.IntRange(0, 4)),
		gen.IntRange(0, KindCount-1),
		gen.IntRange(0, 3),
		gen.IntRange(-4, FieldWidth+2),
		gen.IntRange(-4, FieldHeight+2),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestClearFullRowsShiftsRowsDown(t *testing.T) {
	f := fieldFromRows(t,
		"#.........",
		"##########",
		"..#.......",
		"##########",
	)

	cleared := f.ClearFullRows()

	assert.Equal(t, 2, cleared)
	assert.Equal(t, fieldFromRows(t,
		"#.........",
		"..#.......",
	), f)
}

func TestClearFullRowsAdjacent(t *testing.T) {
	f := fieldFromRows(t,
		".#........",
		"##########",
		"##########",
		"##########",
		"##########",
	)

	assert.Equal(t, 4, f.ClearFullRows())
	assert.Equal(t, fieldFromRows(t, ".#........"), f)
}

func TestClearFullRowsNothingToClear(t *testing.T) {
	f := fieldFromRows(t,
		"#########.",
		".#########",
	)
	before := f

	assert.Equal(t, 0, f.ClearFullRows())
	assert.Equal(t, before, f)
}

func TestMergeDropsCellsOutsideField(t *testing.T) {
	var f Field
	f.Merge(ShapeOf(KindO), 0, -1)

	assert.True(t, f.Cells[0][0])
	assert.True(t, f.Cells[0][1])
	assert.Equal(t, 2, f.Count())
}

func TestOccupied(t *testing.T) {
	f := fieldFromRows(t, "#........#")

	assert.True(t, f.Occupied(0, FieldHeight-1))
	assert.True(t, f.Occupied(FieldWidth-1, FieldHeight-1))
	assert.False(t, f.Occupied(1, FieldHeight-1))
	assert.False(t, f.Occupied(-1, FieldHeight-1))
	assert.False(t, f.Occupied(0, FieldHeight))
	assert.False(t, f.Occupied(FieldWidth, 0))
}

func TestGhostRow(t *testing.T) {
	f := fieldFromRows(t,
		"....#.....",
		"..........",
	)

	assert.Equal(t, FieldHeight-4, ghostRow(&f, ShapeOf(KindO), 4, 0))
	assert.Equal(t, FieldHeight-2, ghostRow(&f, ShapeOf(KindO), 0, 0))
	assert.Equal(t, FieldHeight-4, ghostRow(&f, ShapeOf(KindO), 4, FieldHeight-4))
}

func TestLineScore(t *testing.T) {
	assert.Equal(t, 0, lineScore(0))
	assert.Equal(t, 100, lineScore(1))
	assert.Equal(t, 400, lineScore(2))
	assert.Equal(t, 900, lineScore(3))
	assert.Equal(t, 1600, lineScore(4))
}
