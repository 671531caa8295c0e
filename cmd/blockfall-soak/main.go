package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/internal/game"
	"github.com/plus3/blockfall/internal/logger"
)

// keys pressed by the random player; the zero rune is an idle frame
var playerKeys = []rune{0, 0, 0, 0, 'a', 'd', 's', 'w', ' '}

type settings struct {
	Games      int
	MaxFrames  int
	Every      int
	Seed       uint64
	Randomizer string
}

func main() {
	games := flag.Int("games", 100, "The number of games to play.")
	maxFrames := flag.Int("max-frames", 20000, "Loop iterations after which a game is abandoned.")
	every := flag.Int("gravity", 10, "Loop iterations per gravity step.")
	seed := flag.Uint64("seed", 1, "Seed of the first game; game i uses seed+i.")
	randomizer := flag.String("randomizer", "uniform", "Piece randomizer (uniform, bag).")
	logLevel := flag.String("log-level", "info", "Log level for -log-file.")
	logFile := flag.String("log-file", "", "Write engine logs to this file.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	gameLog, closer, err := logger.New(*logLevel, *logFile)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	if _, err := game.NewRandomizer(*randomizer, *seed); err != nil {
		log.Fatalf("Invalid randomizer: %v", err)
	}
	if *every < 1 {
		log.Fatalf("gravity must be at least 1, got %d", *every)
	}

	s := settings{
		Games:      *games,
		MaxFrames:  *maxFrames,
		Every:      *every,
		Seed:       *seed,
		Randomizer: *randomizer,
	}

	log.Printf("Starting soak run of %d games...\n", s.Games)

	report := &Report{
		Settings:       s,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	startTime := time.Now()
	for i := range s.Games {
		report.Add(play(s, s.Seed+uint64(i), gameLog))
	}
	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// GameResult is the outcome of one headless game.
type GameResult struct {
	Seed      uint64
	Score     game.Score
	Frames    uint64
	Over      bool
	StepTimes []time.Duration
	Systems   []SystemTotals
}

// SystemTotals accumulates scheduler timings for one system.
type SystemTotals struct {
	Name       string
	Executions int64
	Total      time.Duration
	Max        time.Duration
}

// play runs one game the way the terminal loop does, with a random player
// and no waiting between iterations.
func play(s settings, seed uint64, gameLog *slog.Logger) GameResult {
	randomizer, err := game.NewRandomizer(s.Randomizer, seed)
	if err != nil {
		panic(err)
	}
	eng := game.New(game.WithRandomizer(randomizer), game.WithLogger(gameLog))
	player := rand.New(rand.NewPCG(seed, ^seed))

	result := GameResult{Seed: seed}

	for i := 0; i < s.MaxFrames && !eng.Over(); i++ {
		stepStart := time.Now()

		if i%s.Every == 0 {
			eng.Tick()
		}
		if key := playerKeys[player.IntN(len(playerKeys))]; key != 0 {
			eng.HandleKey(key)
		}

		result.StepTimes = append(result.StepTimes, time.Since(stepStart))
	}

	result.Score = eng.Stats()
	result.Frames = eng.Frames()
	result.Over = eng.Over()

	for _, sys := range eng.SchedulerStats().Systems {
		result.Systems = append(result.Systems, SystemTotals{
			Name:       sys.Name,
			Executions: sys.ExecutionCount,
			Total:      sys.TotalDuration,
			Max:        sys.MaxDuration,
		})
	}

	return result
}
