package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plus3/blockfall/internal/config"
	"github.com/plus3/blockfall/internal/game"
	"github.com/plus3/blockfall/internal/logger"
	"github.com/plus3/blockfall/internal/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.ParseArgs(args, os.Stderr)
	if err != nil {
		if config.IsHelp(err) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, closer, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	randomizer, err := game.NewRandomizer(cfg.Randomizer, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	eng := game.New(
		game.WithRandomizer(randomizer),
		game.WithLogger(log),
		game.WithFrameInterval(cfg.FrameInterval),
	)

	display, err := term.Open(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("game started", "randomizer", cfg.Randomizer, "seed", seed, "interval", cfg.FrameInterval)
	outcome := term.Run(ctx, eng, display, cfg.GravityEvery, cfg.FrameInterval)
	display.Close()

	stats := eng.Stats()
	log.Info("game finished",
		"outcome", outcome.String(),
		"score", stats.Points,
		"lines", stats.Lines,
		"pieces", stats.Pieces,
		"frames", eng.Frames(),
	)

	printSummary(os.Stdout, outcome, stats.Points)
	return 0
}

// printSummary reports the final score once the game has ended on its own.
// Quitting or interrupting leaves the terminal silent.
func printSummary(w io.Writer, outcome term.Outcome, points int) {
	if outcome != term.OutcomeGameOver {
		return
	}
	fmt.Fprintf(w, "Game Over! Final Score: %d\n", points)
}
