package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sirkon/reuseid/internal/config"
	"github.com/sirkon/reuseid/internal/report"
)

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// setup holds what every command needs.
type setup struct {
	cfg     *config.Config
	log     zerolog.Logger
	printer *report.Printer
	jobs    int
}

func newSetup(cmd *cobra.Command) (*setup, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	colorMode, err := flags.GetString("color")
	if err != nil {
		return nil, err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return nil, err
	}

	colorize, err := useColor(colorMode, os.Stderr)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &setup{
		cfg:     cfg,
		log:     newLogger(cmd.ErrOrStderr(), verbose),
		printer: report.NewPrinter(cmd.ErrOrStderr(), colorize),
		jobs:    jobs,
	}, nil
}

func useColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color value %q, must be one of auto, on, off", mode)
	}
}
