package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"torus-snake/config"
	"torus-snake/ui"
	"torus-snake/ui/terminal"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.UI {
	case config.UITerminal:
		err = terminal.Run(ctx, cfg, logger)
	default:
		err = ui.Run(ctx, cfg, logger)
	}
	if err != nil {
		logger.Error().Err(err).Str("ui", cfg.UI).Msg("front end failed")
		closeLog()
		os.Exit(1)
	}
}

// newLogger writes JSON to the log file when one is set. Otherwise the window
// front end logs to stderr and the terminal front end, which owns the
// screen, stays silent.
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	var out io.Writer
	closeLog := func() {}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closeLog, errors.Wrap(err, "open log file")
		}
		out = f
		closeLog = func() { f.Close() }
	case cfg.UI == config.UITerminal:
		return zerolog.Nop(), closeLog, nil
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).Level(cfg.Level()).With().Timestamp().Logger()
	return logger, closeLog, nil
}
