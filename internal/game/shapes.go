package game

// Kind identifies one of the seven tetromino variants.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of variants in the catalog.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "L", "J", "S", "Z"}

func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// Shape is a piece-local occupancy matrix indexed [row][col].
// Shapes are treated as values: operations return new matrices and never mutate the receiver.
type Shape [][]bool

var catalog = [KindCount]Shape{
	KindI: {
		{true, true, true, true},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
	},
	KindL: {
		{true, false},
		{true, false},
		{true, true},
	},
	KindJ: {
		{false, true},
		{false, true},
		{true, true},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
	},
}

// ShapeOf returns a private copy of the catalog shape for k.
func ShapeOf(k Kind) Shape {
	return catalog[k].Clone()
}

// Width is the number of columns in the matrix.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height is the number of rows in the matrix.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// Rotate returns the shape turned 90 degrees clockwise. A w×h shape becomes h×w.
func (s Shape) Rotate() Shape {
	h := s.Height()
	w := s.Width()

	rotated := make(Shape, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
	}

	for y := range h {
		for x := range w {
			rotated[x][h-1-y] = s[y][x]
		}
	}

	return rotated
}

// Equal reports whether both shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// cells calls fn for each filled cell with its piece-local coordinates.
func (s Shape) cells(fn func(row, col int)) {
	for row := range s {
		for col, filled := range s[row] {
			if filled {
				fn(row, col)
			}
		}
	}
}
