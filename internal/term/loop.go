package term

import (
	"context"
	"time"

	"github.com/plus3/blockfall/internal/game"
)

// Terminal is what the loop needs from a display.
type Terminal interface {
	game.Surface
	ReadKey() (rune, bool)
}

// Outcome says why Run returned.
type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeGameOver
	OutcomeInterrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeGameOver:
		return "game over"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Run drives eng until the player quits, the game ends or ctx is cancelled.
// Every iteration draws a frame, waits one interval, applies gravity on every
// every-th iteration (starting with the first) and then handles at most one key.
func Run(ctx context.Context, eng *game.Engine, terminal Terminal, every int, interval time.Duration) Outcome {
	if every < 1 {
		every = 1
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		eng.Render(terminal)

		select {
		case <-ctx.Done():
			return OutcomeInterrupted
		case <-ticker.C:
		}

		if i%every == 0 {
			eng.Tick()
			if eng.Over() {
				eng.Render(terminal)
				return OutcomeGameOver
			}
		}

		if key, ok := terminal.ReadKey(); ok {
			if eng.HandleKey(key) {
				return OutcomeQuit
			}
		}

		if eng.Over() {
			eng.Render(terminal)
			return OutcomeGameOver
		}
	}
}
