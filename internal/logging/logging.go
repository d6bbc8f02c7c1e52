package logging

import (
	"io"
	"log/slog"
)

// New returns a text slog.Logger writing to w. Verbose enables debug records;
// quiet drops everything below error. Quiet wins when both are set.
func New(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
