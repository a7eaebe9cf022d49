// Package logging provides the application's slog setup: a weekly
// rotating file plus console output, a global logger, and the request
// logging middleware.
package logging

import (
	"log/slog"
	"os"
)

type LoggingService struct {
	Logger *slog.Logger
}

var DefaultLoggingService *LoggingService

// InitLogger initializes the global logger instance
func InitLogger(logDir string, retentionWeeks int, level slog.Level) {
	DefaultLoggingService = &LoggingService{
		Logger: SetupLogger(logDir, retentionWeeks, level),
	}
	slog.SetDefault(DefaultLoggingService.Logger)
}

// logger returns the configured logger, falling back to a console logger
// before InitLogger has run.
func logger() *slog.Logger {
	if DefaultLoggingService != nil && DefaultLoggingService.Logger != nil {
		return DefaultLoggingService.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Logger exposes the configured logger, with the same console fallback
// as the package-level functions.
func Logger() *slog.Logger {
	return logger()
}

// Package-level functions for direct access

func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}

func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	logger().Debug(msg, args...)
}
