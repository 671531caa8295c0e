package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/internal/game"
	"github.com/plus3/blockfall/internal/logger"
)

// EnvPrefix prefixes every environment override, e.g. BLOCKFALL_SEED.
const EnvPrefix = "BLOCKFALL_"

// Config holds the runtime settings of the game.
type Config struct {
	FrameInterval time.Duration `yaml:"frame_interval"` // time between loop iterations
	GravityEvery  int           `yaml:"gravity_every"`  // iterations per gravity tick
	Randomizer    string        `yaml:"randomizer"`     // uniform or bag
	Seed          uint64        `yaml:"seed"`           // 0 picks a time based seed
	LogLevel      string        `yaml:"log_level"`      // debug, info, warn, error
	LogFile       string        `yaml:"log_file"`       // empty disables logging
}

// Default returns the settings the game ships with.
func Default() *Config {
	return &Config{
		FrameInterval: 50 * time.Millisecond,
		GravityEvery:  10,
		Randomizer:    "uniform",
		Seed:          0,
		LogLevel:      "info",
		LogFile:       "",
	}
}

// LoadFile overlays the YAML document at path onto c. Keys absent from the
// document keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays BLOCKFALL_* variables found through getenv onto c.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	for _, key := range []string{"frame_interval", "gravity_every", "randomizer", "seed", "log_level", "log_file"} {
		value := getenv(EnvPrefix + strings.ToUpper(key))
		if value == "" {
			continue
		}
		if err := c.set(key, value); err != nil {
			return fmt.Errorf("environment %s%s: %w", EnvPrefix, strings.ToUpper(key), err)
		}
	}
	return nil
}

func (c *Config) set(key, value string) error {
	switch key {
	case "frame_interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		c.FrameInterval = d
	case "gravity_every":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		c.GravityEvery = n
	case "randomizer":
		c.Randomizer = strings.ToLower(value)
	case "seed":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = n
	case "log_level":
		c.LogLevel = strings.ToLower(value)
	case "log_file":
		c.LogFile = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// Validate reports the first setting the game cannot run with.
func (c *Config) Validate() error {
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %s", c.FrameInterval)
	}
	if c.GravityEvery < 1 {
		return fmt.Errorf("gravity every must be at least 1, got %d", c.GravityEvery)
	}
	if _, err := game.NewRandomizer(c.Randomizer, 1); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w (must be debug, info, warn, or error)", err)
	}
	return nil
}

// ParseArgs builds the configuration from defaults, an optional -config file,
// the environment and finally the command line flags in args.
// flag.ErrHelp is returned unchanged when -h or -help is given.
func ParseArgs(args []string, stderr io.Writer) (*Config, error) {
	return parse(args, os.Getenv, stderr)
}

func parse(args []string, getenv func(string) string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := Default()
	var path string
	flags := *defaults
	fs.StringVar(&path, "config", "", "path to a YAML config file")
	fs.DurationVar(&flags.FrameInterval, "interval", defaults.FrameInterval, "time between loop iterations")
	fs.IntVar(&flags.GravityEvery, "gravity", defaults.GravityEvery, "loop iterations per gravity step")
	fs.StringVar(&flags.Randomizer, "randomizer", defaults.Randomizer, "piece randomizer (uniform, bag)")
	fs.Uint64Var(&flags.Seed, "seed", defaults.Seed, "random seed (0 = time based)")
	fs.StringVar(&flags.LogLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&flags.LogFile, "log-file", defaults.LogFile, "write logs to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interval":
			cfg.FrameInterval = flags.FrameInterval
		case "gravity":
			cfg.GravityEvery = flags.GravityEvery
		case "randomizer":
			cfg.Randomizer = strings.ToLower(flags.Randomizer)
		case "seed":
			cfg.Seed = flags.Seed
		case "log-level":
			cfg.LogLevel = strings.ToLower(flags.LogLevel)
		case "log-file":
			cfg.LogFile = flags.LogFile
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// IsHelp reports whether err only signals a help request.
func IsHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
