package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds the service logger from the configured level, format and
// output, and installs it as the slog default.
func New(level, format, output string) *slog.Logger {
	var w io.Writer = os.Stdout
	if strings.EqualFold(output, "stderr") {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
