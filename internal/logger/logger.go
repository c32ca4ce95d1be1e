package logger

import (
	"io"
	"log/slog"
	"paymob-course-checkout/internal/config"
	"strings"
)

// New builds the service logger from LOG_LEVEL and LOG_FORMAT. Unknown levels
// fall back to info, unknown formats to json.
func New(cfg config.Log, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}
