package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lgbarn/peg-solitaire-go/internal/errors"
)

// ParseLogLevel converts debug, info, warn or error to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, errors.ErrInvalidConfig)
}

// NewLogger builds the structured logger described by the log settings.
// An invalid level falls back to info.
func (l LogConfig) NewLogger() *slog.Logger {
	level, err := ParseLogLevel(l.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	var w io.Writer = os.Stderr
	if l.Writer != nil {
		w = l.Writer
	}

	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
