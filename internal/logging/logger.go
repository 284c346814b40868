package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup installs a JSON logger on stdout as the slog default.
func Setup(level string) {
	slog.SetDefault(slog.New(NewJSONHandler(os.Stdout, level)))
}

func NewJSONHandler(w io.Writer, level string) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
}

// ParseLevel maps debug/info/warn/error to an slog level. Anything else
// is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Install fans the default logger out to stdout and the database sink.
// Stop the returned handler on shutdown to flush pending records.
func Install(level string, sink Sink) *PGHandler {
	pg := NewPGHandler(sink)
	slog.SetDefault(slog.New(NewMultiHandler(NewJSONHandler(os.Stdout, level), pg)))
	return pg
}
