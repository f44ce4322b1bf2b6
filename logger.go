package kdtree

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the diagnostics the tree emits.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// LogBuild logs the outcome of a tree construction.
func (l *Logger) LogBuild(count, height int, err error) {
	if err != nil {
		l.Error("construction failed",
			"count", count,
			"error", err,
		)
		return
	}
	l.Debug("tree built",
		"count", count,
		"height", height,
	)
}

// LogInvalidMetric logs a rejected metric assignment.
func (l *Logger) LogInvalidMetric(err error) {
	l.Error("invalid metric", "error", err)
}

// LogInvalidQuery logs a query that was answered with an empty result
// because of invalid arguments.
func (l *Logger) LogInvalidQuery(op string, err error) {
	l.Warn("invalid query",
		"op", op,
		"error", err,
	)
}
