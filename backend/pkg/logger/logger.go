// backend/pkg/logger/logger.go
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a wrapper around slog.Logger tagged with a component name.
type Logger struct {
	*slog.Logger
}

// Options tunes the handler behind a Logger.
type Options struct {
	Level  string
	JSON   bool
	Writer io.Writer
}

// New creates a new logger instance writing text records to stdout at info level.
func New(prefix string) *Logger {
	return NewWithOptions(prefix, Options{})
}

// NewWithOptions creates a logger for the given component using opts.
func NewWithOptions(prefix string, opts Options) *Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	l := slog.New(handler)
	if prefix != "" {
		l = l.With("component", prefix)
	}
	return &Logger{Logger: l}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// With returns a child logger carrying the extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// ParseLevel maps a config string onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
