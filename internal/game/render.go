package game

import "strconv"

// Surface is a character-cell canvas addressed by (row, col).
type Surface interface {
	Clear()
	Print(row, col int, text string)
	Show()
}

const (
	infoWidth = 15

	cellGlyph  = "[]"
	ghostGlyph = ".."

	// column where the info panel starts, right of the playfield box
	infoCol = FieldWidth*2 + 3
)

var controlsLegend = []string{
	"Controls:",
	"A/D - Left/Right",
	"W - Rotate",
	"S - Soft Drop",
	"Space - Hard Drop",
	"Q - Quit",
}

// Render draws one complete frame: playfield box, settled cells, ghost, falling piece,
// the NEXT/SCORE panel and the controls legend.
func (e *Engine) Render(s Surface) {
	s.Clear()

	score := e.score.Get().Points
	drawFrame(s, score)

	field := e.field.Get()
	for y := 0; y < FieldHeight; y++ {
		for x := 0; x < FieldWidth; x++ {
			if field.Occupied(x, y) {
				s.Print(y+1, x*2+1, cellGlyph)
			}
		}
	}

	piece := e.piece.Get()
	if piece.Live {
		drawShape(s, piece.Shape, piece.Ghost+1, piece.X*2+1, ghostGlyph)
		drawShape(s, piece.Shape, piece.Y+1, piece.X*2+1, cellGlyph)
	}

	drawShape(s, e.preview.Get().Shape, 2, FieldWidth*2+6, cellGlyph)

	s.Show()
}

func drawFrame(s Surface, score int) {
	right := FieldWidth*2 + 1
	for y := 0; y < FieldHeight+2; y++ {
		s.Print(y, 0, "|")
		s.Print(y, right, "|")
	}
	for x := 0; x < FieldWidth*2+2; x++ {
		s.Print(0, x, "-")
		s.Print(FieldHeight+1, x, "-")
	}

	for y := 0; y < 8; y++ {
		s.Print(y, infoCol, "|")
		s.Print(y, infoCol+infoWidth, "|")
	}
	for x := 0; x < infoWidth+1; x++ {
		s.Print(0, infoCol+x, "-")
		s.Print(8, infoCol+x, "-")
	}

	s.Print(1, infoCol+2, "NEXT")
	s.Print(4, infoCol+2, "SCORE")
	s.Print(5, infoCol+4, strconv.Itoa(score))

	for i, line := range controlsLegend {
		s.Print(FieldHeight+3+i, 0, line)
	}
}

// drawShape prints glyph for every filled cell, two columns per cell.
func drawShape(s Surface, shape Shape, row, col int, glyph string) {
	shape.cells(func(r, c int) {
		s.Print(row+r, col+c*2, glyph)
	})
}
