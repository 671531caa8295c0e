package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sequence replays a fixed list of kinds, wrapping around at the end.
type sequence struct {
	kinds []Kind
	next  int
}

func newSequence(kinds ...Kind) *sequence {
	return &sequence{kinds: kinds}
}

func (s *sequence) Next() Kind {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return k
}

// memSurface is an in-memory Surface that records every printed rune.
type memSurface struct {
	rows   [][]rune
	clears int
	shows  int
}

func newMemSurface() *memSurface {
	s := &memSurface{}
	s.Clear()
	s.clears = 0
	return s
}

func (s *memSurface) Clear() {
	s.clears++
	s.rows = make([][]rune, 32)
	for i := range s.rows {
		s.rows[i] = []rune(strings.Repeat(" ", 48))
	}
}

func (s *memSurface) Print(row, col int, text string) {
	for i, r := range []rune(text) {
		if row >= 0 && row < len(s.rows) && col+i >= 0 && col+i < len(s.rows[row]) {
			s.rows[row][col+i] = r
		}
	}
}

func (s *memSurface) Show() {
	s.shows++
}

func (s *memSurface) at(row, col, n int) string {
	return string(s.rows[row][col : col+n])
}

// fieldFromRows builds a field from the bottom up: the last string is row 19.
// '#' marks an occupied cell, anything else is empty.
func fieldFromRows(t *testing.T, rows ...string) Field {
	t.Helper()
	require.LessOrEqual(t, len(rows), FieldHeight)

	var f Field
	offset := FieldHeight - len(rows)
	for i, row := range rows {
		require.Len(t, row, FieldWidth, "row %d", i)
		for x, c := range row {
			f.Cells[offset+i][x] = c == '#'
		}
	}
	return f
}

// moveTo shifts the falling piece horizontally until it reaches column x or is blocked.
func moveTo(e *Engine, x int) {
	for range FieldWidth {
		p := e.Piece()
		switch {
		case p.X < x:
			e.Apply(CommandRight)
		case p.X > x:
			e.Apply(CommandLeft)
		default:
			return
		}
	}
}
