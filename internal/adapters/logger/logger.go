// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/tapplan/internal/core/ports"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger and ports.LogConfigurer using log/slog.
// The console stream goes to stderr; an optional log file receives every
// record at info level and above regardless of console verbosity.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	file   *os.File
}

// New creates a Logger writing to stderr at info level. Configure adjusts
// level and destinations once the CLI flags are known.
func New() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{logger: slog.New(handler)}
}

// Configure rebuilds the handler chain from the given settings.
func (l *Logger) Configure(cfg ports.LogConfig) error {
	consoleLevel := slog.LevelInfo
	switch {
	case cfg.Debug || cfg.Verbose > 0:
		consoleLevel = slog.LevelDebug
	case cfg.Quiet == 1:
		consoleLevel = slog.LevelWarn
	case cfg.Quiet > 1:
		consoleLevel = slog.LevelError
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: consoleLevel}),
	}

	var file *os.File
	if cfg.FilePath != "" {
		f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // path is provided by user
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to open log file"), "path", cfg.FilePath)
		}
		file = f
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = file
	l.logger = slog.New(fanout(handlers))
	return nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Debug logs a debugging message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}

// fanout returns a handler delegating to all given handlers. With a single
// handler it is returned as-is.
func fanout(handlers []slog.Handler) slog.Handler {
	if len(handlers) == 1 {
		return handlers[0]
	}
	return fanoutHandler(handlers)
}

type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs error
	for _, h := range f {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil && errs == nil {
			errs = err
		}
	}
	return errs
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanoutHandler, len(f))
	for i, h := range f {
		next[i] = h.WithAttrs(attrs)
	}
	return next
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	next := make(fanoutHandler, len(f))
	for i, h := range f {
		next[i] = h.WithGroup(name)
	}
	return next
}
