package game

// ActivePiece is the falling piece. X and Y locate the top-left corner of Shape in field coordinates.
type ActivePiece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
	Ghost int

	// Live is false between a lock and the next spawn.
	Live bool
	// Landed marks a piece that failed to move down and must lock this frame.
	Landed bool
}

// Preview is the piece that will spawn next.
type Preview struct {
	Kind  Kind
	Shape Shape
}

type Score struct {
	Points int
	Lines  int
	Pieces int
}

type Status struct {
	Over   bool
	Frames uint64
}

// Intent carries the request for the frame being executed. It is reset when the frame ends.
type Intent struct {
	Command Command
	Gravity bool

	// Locked is set by LockSystem when a piece merged into the field this frame.
	Locked bool
}
