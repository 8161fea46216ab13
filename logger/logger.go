// Package logger wraps zerolog for structured logging across the solver's
// CLI and HTTP surfaces.
package logger

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger for structured logging.
type Logger struct {
	zerolog.Logger
}

// New creates a new logger instance with JSON output to stderr.
func New() *Logger {
	zerolog.SetGlobalLevel(getLogLevel())
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &Logger{l}
}

// getLogLevel reads the LOG_LEVEL environment variable.
func getLogLevel() zerolog.Level {
	logLevel := os.Getenv("LOG_LEVEL")
	switch strings.ToLower(logLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTag returns a new logger with a tag field set.
func (l *Logger) WithTag(tag string) *Logger {
	newLogger := l.Logger.With().Str("tag", tag).Logger()
	return &Logger{newLogger}
}

// WithTags returns a new logger with multiple string fields set.
func (l *Logger) WithTags(tags map[string]string) *Logger {
	ctx := l.Logger.With()
	for k, v := range tags {
		ctx = ctx.Str(k, v)
	}
	return &Logger{ctx.Logger()}
}

// fields turns a flat key/value arg list into a zerolog field map, dropping
// a trailing unpaired key.
func fields(args []any) map[string]any {
	m := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		m[key] = args[i+1]
	}
	return m
}

// Info logs an info level message with key/value attributes.
func (l *Logger) Info(msg string, args ...any) {
	l.Logger.Info().Fields(fields(args)).Msg(msg)
}

// Warn logs a warning level message with key/value attributes.
func (l *Logger) Warn(msg string, args ...any) {
	l.Logger.Warn().Fields(fields(args)).Msg(msg)
}

// Error logs an error level message with key/value attributes.
func (l *Logger) Error(msg string, args ...any) {
	l.Logger.Error().Fields(fields(args)).Msg(msg)
}

// Debug logs a debug level message with key/value attributes.
func (l *Logger) Debug(msg string, args ...any) {
	l.Logger.Debug().Fields(fields(args)).Msg(msg)
}

// InfoCtx logs an info level message carrying a context, for handlers that
// propagate request-scoped cancellation (spec §7: SSE stream lifecycle).
func (l *Logger) InfoCtx(ctx context.Context, msg string, args ...any) {
	l.Logger.Info().Ctx(ctx).Fields(fields(args)).Msg(msg)
}

// WarnCtx logs a warning level message carrying a context.
func (l *Logger) WarnCtx(ctx context.Context, msg string, args ...any) {
	l.Logger.Warn().Ctx(ctx).Fields(fields(args)).Msg(msg)
}

// ErrorCtx logs an error level message carrying a context.
func (l *Logger) ErrorCtx(ctx context.Context, msg string, args ...any) {
	l.Logger.Error().Ctx(ctx).Fields(fields(args)).Msg(msg)
}

// DebugCtx logs a debug level message carrying a context.
func (l *Logger) DebugCtx(ctx context.Context, msg string, args ...any) {
	l.Logger.Debug().Ctx(ctx).Fields(fields(args)).Msg(msg)
}
