package wordlego

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with wordlego-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithWords adds a candidate count field to the logger.
func (l *Logger) WithWords(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("words", count),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogApply logs the application of one prior (guess, feedback) pair.
func (l *Logger) LogApply(ctx context.Context, guess, pattern string, remaining, budget int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "apply failed",
			"guess", guess,
			"pattern", pattern,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "guess applied",
			"guess", guess,
			"pattern", pattern,
			"candidates", remaining,
			"budget", budget,
		)
	}
}

// LogBuild logs a compatibility table build or snapshot load.
func (l *Logger) LogBuild(ctx context.Context, words int, fromSnapshot bool) {
	l.InfoContext(ctx, "compatibility table ready",
		"words", words,
		"from_snapshot", fromSnapshot,
	)
}

// LogSolve logs the outcome of a search.
func (l *Logger) LogSolve(ctx context.Context, rec *Recommendation, err error) {
	if err != nil {
		l.InfoContext(ctx, "search finished without a winning strategy", "error", err)
	} else {
		l.InfoContext(ctx, "search finished",
			"word", rec.Word,
			"expected", rec.Expected,
		)
	}
}
