// Package logging provides a shared, structured logger for clock-dash.
//
// It wraps the standard library's [log/slog] package and provides a single
// initialization point so all components share the same output handler and
// log level. The log level is controlled at startup via the
// CLOCKDASH_LOG_LEVEL environment variable (debug, info, warn, error).
// If unset, the default level is INFO.
//
// Usage:
//
//	log := logging.New("weather")      // creates a logger tagged with component="weather"
//	log.Warn("fetch failed", "error", err)
//
// All log output is written to stderr so it never interferes with the
// terminal UI rendered on stdout.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	// initLogger ensures the base logger is created exactly once, even if
	// multiple components call New concurrently.
	initLogger sync.Once

	// baseLogger is the singleton logger shared by all components.
	// Component-specific loggers are derived from it via With().
	baseLogger *slog.Logger
)

// New returns a structured logger scoped to the given component name.
//
// The component name is attached as a "component" attribute to every entry
// produced by the returned logger, so log output can be filtered by
// subsystem (e.g. "app", "weather", "config"). If component is empty, the
// base logger is returned unadorned. The base logger is lazily initialized
// on the first call and reused afterwards.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLevel(os.Getenv("CLOCKDASH_LOG_LEVEL")),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// parseLevel converts a human-readable log level string to a [slog.Level].
// Unrecognized values fall back to INFO.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
