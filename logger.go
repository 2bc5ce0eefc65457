package okm

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with okm-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithName tags every record with the container's name, so several maps can
// share one handler.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("map", name),
	}
}

// LogMiss logs a lookup that found no entry for key.
func (l *Logger) LogMiss(ctx context.Context, op Op, key, firstKey, lastKey any, count int) {
	l.DebugContext(ctx, "lookup miss",
		"op", string(op),
		"key", key,
		"first_key", firstKey,
		"last_key", lastKey,
		"count", count,
	)
}

// LogShift logs an insert or remove that had to move the tail of the buffer.
func (l *Logger) LogShift(ctx context.Context, op Op, key any, pos, count int, grew bool) {
	msg := "shifting in the middle is highly discouraged"
	if pos == 0 {
		msg = "shifting at the beginning is highly discouraged"
	}
	l.WarnContext(ctx, msg,
		"op", string(op),
		"key", key,
		"pos", pos,
		"count", count,
		"grew", grew,
	)
}

// LogGrow logs a buffer reallocation.
func (l *Logger) LogGrow(ctx context.Context, op Op, from, to int) {
	l.DebugContext(ctx, "buffer grown",
		"op", string(op),
		"from_cap", from,
		"to_cap", to,
	)
}

// LogMerge logs a splice of another segment.
func (l *Logger) LogMerge(ctx context.Context, op Op, added int, ok bool) {
	if !ok {
		l.DebugContext(ctx, "merge rejected: ranges overlap or are misordered",
			"op", string(op),
			"added", added,
		)
		return
	}
	l.DebugContext(ctx, "merge completed",
		"op", string(op),
		"added", added,
	)
}
