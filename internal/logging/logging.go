// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// NewHandler returns a tint console handler.
func NewHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})
}

// Setup installs a tint logger as the slog default and routes the standard
// log package through it.
func Setup(w io.Writer, level string, noColor bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := slog.New(NewHandler(w, lvl, noColor))
	slog.SetDefault(logger)

	// slog.SetDefault already points log at the handler; prefixed lines from
	// dependencies are re-levelled instead.
	lw := &slogWriter{logger: logger}
	log.SetFlags(0)
	log.SetOutput(lw)
	return logger, nil
}

type slogWriter struct {
	logger *slog.Logger
}

func (w *slogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	switch {
	case strings.HasPrefix(msg, "ERROR "):
		w.logger.Error(msg[6:])
	case strings.HasPrefix(msg, "WARN "):
		w.logger.Warn(msg[5:])
	case strings.HasPrefix(msg, "INFO "):
		w.logger.Info(msg[5:])
	default:
		w.logger.Debug(msg)
	}
	return len(p), nil
}
