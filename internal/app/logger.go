package app

import (
	"io"
	"log/slog"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances. Unknown
// levels fall back to info and unknown formats to text.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if levelStr != "" {
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			level = slog.LevelInfo
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
