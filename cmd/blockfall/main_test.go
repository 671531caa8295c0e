package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/internal/term"
)

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name    string
		outcome term.Outcome
		want    string
	}{
		{"game over", term.OutcomeGameOver, "Game Over! Final Score: 1600\n"},
		{"quit", term.OutcomeQuit, ""},
		{"interrupted", term.OutcomeInterrupted, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printSummary(&buf, tt.outcome, 1600)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunHelpAndBadConfig(t *testing.T) {
	assert.Equal(t, 0, run([]string{"-h"}))
	assert.Equal(t, 1, run([]string{"-gravity", "0"}))
}
