package logger

import (
	"os"
	"sync"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/env"
	"github.com/philipp01105/drushlog/history"
)

var (
	defaultLogger   *Leveled
	defaultSettings *env.Store
	defaultHistory  *history.Buffer
	defaultMu       sync.RWMutex
)

func init() {
	defaultSettings = env.NewStore(env.Detect(os.Stderr))
	defaultHistory = history.New(0)
	defaultLogger = NewLeveled(NewConsoleBuilder().
		WithSettings(defaultSettings).
		WithHistory(defaultHistory).
		Build())
}

// Default returns the default logger
func Default() *Leveled {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Leveled) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// DefaultSettings returns the settings read by the initial default
// logger. Hosts update it after parsing their flags.
func DefaultSettings() *env.Store {
	return defaultSettings
}

// DefaultHistory returns the history buffer of the initial default
// logger.
func DefaultHistory() *history.Buffer {
	return defaultHistory
}

// Package-level convenience functions using the default logger

// Log logs a message at level using the default logger
func Log(level core.Level, msg string, fields ...core.Field) {
	Default().Log(level, msg, fields...)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	Default().Error(msg, fields...)
}

// Warning logs a warning message using the default logger
func Warning(msg string, fields ...core.Field) {
	Default().Warning(msg, fields...)
}

// Notice logs a notice using the default logger
func Notice(msg string, fields ...core.Field) {
	Default().Notice(msg, fields...)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	Default().Info(msg, fields...)
}

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	Default().Debug(msg, fields...)
}

// Success logs a success message using the default logger
func Success(msg string, fields ...core.Field) {
	Default().Success(msg, fields...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Leveled {
	return Default().With(fields...)
}
