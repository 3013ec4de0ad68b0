package loggerx

import (
	"context"
	"log/slog"
)

// Logger is a thin wrapper over slog used across the module. It keeps the
// attr-based call shape without the value conversions a service logger
// carries.
type Logger struct {
	*slog.Logger
}

// New wraps an slog.Logger.
func New(l *slog.Logger) *Logger {
	return &Logger{l}
}

// Noop returns a logger that discards everything; it is the default for
// library code, which stays silent unless a caller injects a logger.
func Noop() *Logger {
	return &Logger{slog.New(slog.DiscardHandler)}
}

// ErrorAttr returns the canonical attribute under which errors are logged.
func ErrorAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.Logger.With(ErrorAttr(err))}
}

func (l *Logger) WithFields(attrs ...slog.Attr) *Logger {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return &Logger{l.Logger.With(args...)}
}

func (l *Logger) Error(msg string, attrs ...slog.Attr) {
	l.Logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

func (l *Logger) Warn(msg string, attrs ...slog.Attr) {
	l.Logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}

func (l *Logger) Info(msg string, attrs ...slog.Attr) {
	l.Logger.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs...)
}

func (l *Logger) Debug(msg string, attrs ...slog.Attr) {
	l.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
