package game

import (
	"log/slog"

	"github.com/plus3/blockfall/ecs"
)

// InputSystem applies the frame's player command to the falling piece.
// Every move is tried against the field first and only committed when it does not collide.
type InputSystem struct {
	Intent ecs.Singleton[Intent]
	Field  ecs.Singleton[Field]
	Piece  ecs.Singleton[ActivePiece]
	Status ecs.Singleton[Status]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	intent := s.Intent.Get()
	if intent == nil {
		return
	}
	cmd := intent.Command
	frame.Commands.ReplaceSingleton(Intent{})

	status := s.Status.Get()
	if status == nil || status.Over {
		return
	}

	field := s.Field.Get()
	piece := s.Piece.Get()
	if field == nil || piece == nil || !piece.Live || piece.Landed {
		return
	}

	switch cmd {
	case CommandLeft:
		if !field.Collides(piece.Shape, piece.X-1, piece.Y) {
			piece.X--
		}
	case CommandRight:
		if !field.Collides(piece.Shape, piece.X+1, piece.Y) {
			piece.X++
		}
	case CommandSoftDrop:
		if field.Collides(piece.Shape, piece.X, piece.Y+1) {
			piece.Landed = true
		} else {
			piece.Y++
		}
	case CommandRotate:
		rotated := piece.Shape.Rotate()
		if !field.Collides(rotated, piece.X, piece.Y) {
			piece.Shape = rotated
		}
	case CommandHardDrop:
		piece.Y = piece.Ghost
		piece.Landed = true
	}
}

// GravitySystem moves the falling piece down one row when the frame carries a gravity tick.
type GravitySystem struct {
	Intent ecs.Singleton[Intent]
	Field  ecs.Singleton[Field]
	Piece  ecs.Singleton[ActivePiece]
	Status ecs.Singleton[Status]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	intent := s.Intent.Get()
	if intent == nil || !intent.Gravity {
		return
	}

	status := s.Status.Get()
	if status == nil || status.Over {
		return
	}

	field := s.Field.Get()
	piece := s.Piece.Get()
	if field == nil || piece == nil || !piece.Live || piece.Landed {
		return
	}

	if field.Collides(piece.Shape, piece.X, piece.Y+1) {
		piece.Landed = true
		return
	}
	piece.Y++
}

// LockSystem merges a landed piece into the field.
type LockSystem struct {
	Intent ecs.Singleton[Intent]
	Field  ecs.Singleton[Field]
	Piece  ecs.Singleton[ActivePiece]
	Score  ecs.Singleton[Score]

	log *slog.Logger
}

func (s *LockSystem) Execute(frame *ecs.UpdateFrame) {
	piece := s.Piece.Get()
	if piece == nil || !piece.Live || !piece.Landed {
		return
	}

	field := s.Field.Get()
	score := s.Score.Get()
	if field == nil || score == nil {
		return
	}

	field.Merge(piece.Shape, piece.X, piece.Y)
	score.Pieces++
	if intent := s.Intent.Get(); intent != nil {
		intent.Locked = true
	}

	kind, x, y := piece.Kind, piece.X, piece.Y
	piece.Live = false
	piece.Landed = false

	if s.log != nil {
		frame.Commands.Defer(func() {
			s.log.Debug("piece locked", "kind", kind.String(), "x", x, "y", y)
		})
	}
}

// LineClearSystem removes full rows after a lock and awards C²×100 points for
// C rows cleared at once. Frames without a lock leave the field untouched.
type LineClearSystem struct {
	Intent ecs.Singleton[Intent]
	Field  ecs.Singleton[Field]
	Score  ecs.Singleton[Score]

	log *slog.Logger
}

func (s *LineClearSystem) Execute(frame *ecs.UpdateFrame) {
	intent := s.Intent.Get()
	if intent == nil || !intent.Locked {
		return
	}

	field := s.Field.Get()
	score := s.Score.Get()
	if field == nil || score == nil {
		return
	}

	cleared := field.ClearFullRows()
	if cleared == 0 {
		return
	}

	score.Points += lineScore(cleared)
	score.Lines += cleared

	if s.log != nil {
		points := score.Points
		frame.Commands.Defer(func() {
			s.log.Debug("lines cleared", "count", cleared, "score", points)
		})
	}
}

// SpawnSystem promotes the preview to the falling piece whenever no piece is live,
// and ends the game when the new piece does not fit at its spawn position.
type SpawnSystem struct {
	Field   ecs.Singleton[Field]
	Piece   ecs.Singleton[ActivePiece]
	Preview ecs.Singleton[Preview]
	Score   ecs.Singleton[Score]
	Status  ecs.Singleton[Status]

	randomizer Randomizer
	log        *slog.Logger
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	status := s.Status.Get()
	if status == nil || status.Over {
		return
	}

	piece := s.Piece.Get()
	if piece == nil || piece.Live {
		return
	}

	field := s.Field.Get()
	preview := s.Preview.Get()
	if field == nil || preview == nil {
		return
	}

	shape := preview.Shape
	*piece = ActivePiece{
		Kind:  preview.Kind,
		Shape: shape,
		X:     FieldWidth/2 - shape.Width()/2,
		Y:     0,
		Live:  true,
	}
	piece.Ghost = ghostRow(field, piece.Shape, piece.X, piece.Y)

	next := s.randomizer.Next()
	*preview = Preview{Kind: next, Shape: ShapeOf(next)}

	if field.Collides(piece.Shape, piece.X, piece.Y) {
		status.Over = true

		if s.log != nil {
			var points int
			if score := s.Score.Get(); score != nil {
				points = score.Points
			}
			kind := piece.Kind
			frame.Commands.Defer(func() {
				s.log.Info("game over", "kind", kind.String(), "score", points)
			})
		}
		return
	}

	if s.log != nil {
		kind, nextKind := piece.Kind, next
		frame.Commands.Defer(func() {
			s.log.Debug("piece spawned", "kind", kind.String(), "next", nextKind.String())
		})
	}
}

// GhostSystem recomputes the ghost row after everything else in the frame has run.
type GhostSystem struct {
	Field  ecs.Singleton[Field]
	Piece  ecs.Singleton[ActivePiece]
	Status ecs.Singleton[Status]
}

func (s *GhostSystem) Execute(frame *ecs.UpdateFrame) {
	status := s.Status.Get()
	if status == nil || status.Over {
		return
	}

	field := s.Field.Get()
	piece := s.Piece.Get()
	if field == nil || piece == nil || !piece.Live {
		return
	}

	piece.Ghost = ghostRow(field, piece.Shape, piece.X, piece.Y)
}
