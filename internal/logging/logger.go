package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a logger writing to w. The terminal belongs to the renderer,
// so w is normally a file and colour is off. A nil w discards everything.
func New(w io.Writer, level slog.Level, version string) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    true,
	})
	return slog.New(h).With("app", "nimbus", "version", version)
}

// Open appends to the log file at path. An empty path returns a discarding
// logger and a no-op close.
func Open(path string, level slog.Level, version string) (*slog.Logger, func() error, error) {
	if path == "" {
		return New(nil, level, version), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level, version), f.Close, nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", s)
	}
}
