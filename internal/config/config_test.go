package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(nil, env(nil), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 50*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, 10, cfg.GravityEvery)
	assert.Equal(t, "uniform", cfg.Randomizer)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
frame_interval: 20ms
randomizer: bag
seed: 99
`)

	cfg, err := parse([]string{"-config", path}, env(nil), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, "bag", cfg.Randomizer)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 10, cfg.GravityEvery, "absent keys keep defaults")
}

func TestLoadFileErrors(t *testing.T) {
	_, err := parse([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, env(nil), io.Discard)
	assert.ErrorContains(t, err, "failed to read config file")

	path := writeConfig(t, "gravity_every: [1, 2]\n")
	_, err = parse([]string{"-config", path}, env(nil), io.Discard)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, `
gravity_every: 5
randomizer: bag
seed: 1
log_level: warn
`)
	vars := env(map[string]string{
		"BLOCKFALL_GRAVITY_EVERY": "7",
		"BLOCKFALL_SEED":          "2",
	})

	cfg, err := parse([]string{"-config", path, "-seed", "3"}, vars, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "bag", cfg.Randomizer, "file over defaults")
	assert.Equal(t, "warn", cfg.LogLevel, "file over defaults")
	assert.Equal(t, 7, cfg.GravityEvery, "env over file")
	assert.Equal(t, uint64(3), cfg.Seed, "flag over env")
}

func TestFlagEqualToDefaultStillOverrides(t *testing.T) {
	vars := env(map[string]string{"BLOCKFALL_GRAVITY_EVERY": "3"})

	cfg, err := parse([]string{"-gravity", "10"}, vars, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.GravityEvery)
}

func TestApplyEnvFromProcess(t *testing.T) {
	t.Setenv("BLOCKFALL_FRAME_INTERVAL", "15ms")
	t.Setenv("BLOCKFALL_RANDOMIZER", "BAG")

	cfg, err := ParseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, "bag", cfg.Randomizer)
}

func TestApplyEnvBadValue(t *testing.T) {
	_, err := parse(nil, env(map[string]string{"BLOCKFALL_SEED": "-4"}), io.Discard)
	assert.ErrorContains(t, err, "BLOCKFALL_SEED")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero interval", func(c *Config) { c.FrameInterval = 0 }, "frame interval"},
		{"zero gravity", func(c *Config) { c.GravityEvery = 0 }, "gravity every"},
		{"unknown randomizer", func(c *Config) { c.Randomizer = "weighted" }, "weighted"},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, "loud"},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestParseArgsRejectsInvalid(t *testing.T) {
	_, err := parse([]string{"-interval", "-5ms"}, env(nil), io.Discard)
	assert.ErrorContains(t, err, "invalid configuration")

	_, err = parse([]string{"extra"}, env(nil), io.Discard)
	assert.ErrorContains(t, err, "unexpected arguments")

	_, err = parse([]string{"-bogus"}, env(nil), io.Discard)
	assert.Error(t, err)
}

func TestHelp(t *testing.T) {
	_, err := parse([]string{"-h"}, env(nil), io.Discard)
	assert.True(t, IsHelp(err))
}
