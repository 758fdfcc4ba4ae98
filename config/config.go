// Package config reads the command line into a validated Config.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"torus-snake/game/types"
)

// Front ends
const (
	UIWindow   = "gui"
	UITerminal = "term"
)

type Config struct {
	UI       string
	TileSize int
	Speed    time.Duration // Time between snake movements
	Width    int           // Initial window width in pixels
	Height   int           // Initial window height in pixels
	FPS      int
	Seed     uint64 // 0 = time based
	LogLevel string
	LogFile  string
}

func Default() Config {
	return Config{
		UI:       UIWindow,
		TileSize: types.TileSize,
		Speed:    types.TickInterval,
		Width:    800,
		Height:   600,
		FPS:      60,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Parse reads flags from args (without the program name) over the defaults
func Parse(args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)

	speedMs := fs.Int("speed", int(cfg.Speed/time.Millisecond), "Game speed in milliseconds (lower = faster)")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Front end: gui (window) or term (terminal)")
	fs.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "Cell size in pixels (window front end)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Initial window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Initial window height in pixels")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frame rate cap (window front end)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed, 0 for time based")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write JSON logs to this file")

	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "parse flags")
	}
	cfg.Speed = time.Duration(*speedMs) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once
func (c Config) Validate() error {
	var result *multierror.Error

	if c.UI != UIWindow && c.UI != UITerminal {
		result = multierror.Append(result, fmt.Errorf("ui must be %q or %q, got %q", UIWindow, UITerminal, c.UI))
	}
	if c.TileSize <= 0 {
		result = multierror.Append(result, fmt.Errorf("tile must be positive, got %d", c.TileSize))
	}
	if c.Speed <= 0 {
		result = multierror.Append(result, fmt.Errorf("speed must be positive, got %s", c.Speed))
	}
	if c.Width <= 0 || c.Height <= 0 {
		result = multierror.Append(result, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		result = multierror.Append(result, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "log-level"))
	}

	return result.ErrorOrNil()
}

// Level returns the parsed log level, info when unparseable
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
