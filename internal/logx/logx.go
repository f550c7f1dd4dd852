// Package logx sets up the process-wide slog logger.
package logx

import (
	"io"
	"log/slog"
)

// LevelFromFlags maps the command line verbosity to a level:
//   - verbosity >= 2: [slog.LevelDebug]
//   - verbosity == 1: [slog.LevelInfo]
//   - quiet: [slog.LevelError]
//   - default: [slog.LevelWarn]
//
// Verbosity wins over quiet.
func LevelFromFlags(verbosity int, quiet bool) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefault installs a text logger writing to w at level.
func SetDefault(w io.Writer, level slog.Level) *slog.Logger {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	return l
}
