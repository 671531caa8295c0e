package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ParseLevel maps a level name to its slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the game logger. The terminal owns stdout, so records go to the
// file at path, or nowhere when path is empty. The returned closer releases the file.
func New(level, path string) (*slog.Logger, io.Closer, error) {
	slogLevel, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slogLevel,
	})

	return slog.New(handler), f, nil
}
