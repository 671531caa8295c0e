package game

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/ecs"
)

// Engine owns the whole game state and runs the frame systems.
// It is not safe for concurrent use.
type Engine struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	keys      *KeyMap
	dt        float64

	intent  *ecs.Singleton[Intent]
	field   *ecs.Singleton[Field]
	piece   *ecs.Singleton[ActivePiece]
	preview *ecs.Singleton[Preview]
	score   *ecs.Singleton[Score]
	status  *ecs.Singleton[Status]
}

type options struct {
	randomizer Randomizer
	logger     *slog.Logger
	field      *Field
	frame      time.Duration
}

// Option configures an Engine.
type Option func(*options)

// WithRandomizer sets the source of upcoming pieces.
func WithRandomizer(r Randomizer) Option {
	return func(o *options) { o.randomizer = r }
}

// WithLogger sets the logger used for game events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithField starts the game on a copy of f instead of an empty field.
func WithField(f Field) Option {
	return func(o *options) { o.field = &f }
}

// WithFrameInterval sets the delta time reported to systems for each frame.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) { o.frame = d }
}

// New initializes a game: empty field, zero score, a drawn preview and the first
// spawned piece. The game may already be over if the first piece does not fit.
func New(opts ...Option) *Engine {
	o := options{
		logger: slog.New(slog.DiscardHandler),
		frame:  50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.randomizer == nil {
		o.randomizer = NewUniform(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}

	storage := ecs.NewStorage()

	var field Field
	if o.field != nil {
		field = *o.field
	}

	first := o.randomizer.Next()

	e := &Engine{
		storage: storage,
		keys:    DefaultKeyMap(),
		dt:      o.frame.Seconds(),
		intent:  ecs.NewSingleton[Intent](storage),
		field:   ecs.NewSingleton(storage, field),
		piece:   ecs.NewSingleton[ActivePiece](storage),
		preview: ecs.NewSingleton(storage, Preview{Kind: first, Shape: ShapeOf(first)}),
		score:   ecs.NewSingleton[Score](storage),
		status:  ecs.NewSingleton[Status](storage),
	}

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&InputSystem{})
	scheduler.Register(&GravitySystem{})
	scheduler.Register(&LockSystem{log: o.logger})
	scheduler.Register(&LineClearSystem{log: o.logger})
	scheduler.Register(&SpawnSystem{randomizer: o.randomizer, log: o.logger})
	scheduler.Register(&GhostSystem{})
	e.scheduler = scheduler

	e.step(Intent{})
	return e
}

func (e *Engine) step(intent Intent) {
	*e.intent.Get() = intent
	e.status.Get().Frames++
	e.scheduler.Once(e.dt)
}

// Tick advances gravity by one row, locking the piece if it cannot fall.
func (e *Engine) Tick() {
	if e.Over() {
		return
	}
	e.step(Intent{Gravity: true})
}

// Apply performs a single player command. CommandNone and CommandQuit do not change state.
func (e *Engine) Apply(cmd Command) {
	if e.Over() || cmd == CommandNone || cmd == CommandQuit {
		return
	}
	e.step(Intent{Command: cmd})
}

// HandleKey resolves key with the fixed key map and applies it.
// It returns true when the key asks to quit.
func (e *Engine) HandleKey(key rune) bool {
	cmd := e.keys.Lookup(key)
	if cmd == CommandQuit {
		return true
	}
	e.Apply(cmd)
	return false
}

// Over reports whether the game has ended.
func (e *Engine) Over() bool {
	return e.status.Get().Over
}

// Score returns the current points.
func (e *Engine) Score() int {
	return e.score.Get().Points
}

// Stats returns a copy of the score counters.
func (e *Engine) Stats() Score {
	return *e.score.Get()
}

// Field returns a copy of the settled cells.
func (e *Engine) Field() Field {
	return *e.field.Get()
}

// Piece returns a copy of the falling piece.
func (e *Engine) Piece() ActivePiece {
	p := *e.piece.Get()
	p.Shape = p.Shape.Clone()
	return p
}

// Next returns the kind shown in the preview panel.
func (e *Engine) Next() Kind {
	return e.preview.Get().Kind
}

// Frames returns how many frames the engine has executed.
func (e *Engine) Frames() uint64 {
	return e.status.Get().Frames
}

// SchedulerStats exposes the per-system timings of the frame scheduler.
func (e *Engine) SchedulerStats() *ecs.SchedulerStats {
	return e.scheduler.GetStats()
}
