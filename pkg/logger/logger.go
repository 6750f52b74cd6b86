// Package logger configures the process-wide slog logger for the CLI.
package logger

import (
	"io"
	"log/slog"
)

// Level maps the CLI's verbosity flags to a slog level. Quiet wins over
// verbose.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

// New returns a text logger writing to w at the given verbosity.
func New(w io.Writer, verbose, quiet bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs a logger built by New as the slog default.
func Setup(w io.Writer, verbose, quiet bool) *slog.Logger {
	l := New(w, verbose, quiet)
	slog.SetDefault(l)
	return l
}

// WithComponent tags the default logger with a component name.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
