// Package logger provides structured logging functionality for the engine.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/quantprep/mastery-engine/internal/config"
)

// Setup initializes and configures the engine's logging based on the
// provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger.
func Setup(cfg config.EngineConfig) (*slog.Logger, error) {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// If the log level is invalid, use info level as default and log a warning
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)

	// Set this logger as the default so slog package functions can be used
	// directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}
