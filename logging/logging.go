// Package logging provides structured logging for the CLI.
//
// Output goes to stderr so figures and tables piped to stdout stay clean,
// following the usual Unix convention. The logger is a plain *slog.Logger;
// callers pass it down rather than reaching for a global.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config controls logger construction.
type Config struct {
	// Verbose enables debug-level output.
	Verbose bool
	// Writer overrides the destination (stderr when nil). Tests use this.
	Writer io.Writer
}

// New builds a text-handler logger per the config.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Default returns a stderr logger at info level.
func Default() *slog.Logger {
	return New(Config{})
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
