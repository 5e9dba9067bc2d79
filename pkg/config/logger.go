package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a *slog.Logger writing to w.
//
// Format "json" produces JSON lines; anything else produces text with source info.
// Level is one of: debug, info, warn, error (case-insensitive); defaults to warn
// so diagnostics stay out of the interactive session.
func NewLogger(env Env, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(env.LogLevel),
		AddSource: !strings.EqualFold(env.LogFormat, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(env.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
