package logging

import (
	"io"
	"log/slog"
)

// New creates a slog logger writing to w and sets it as the default.
// format is "json" or anything else for text.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: level <= slog.LevelDebug,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
