package logger

import (
	"fmt"

	"github.com/philipp01105/drushlog/core"
)

// Leveled wraps a Logger with one method per level. Leveled values are
// immutable; With returns a copy carrying extra fields.
type Leveled struct {
	logger Logger
	fields []core.Field
}

// NewLeveled wraps l.
func NewLeveled(l Logger) *Leveled {
	return &Leveled{logger: l}
}

// Logger returns the wrapped logger.
func (l *Leveled) Logger() Logger {
	return l.logger
}

// With creates a new Leveled with additional fields (immutable operation)
func (l *Leveled) With(fields ...core.Field) *Leveled {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)
	return &Leveled{logger: l.logger, fields: newFields}
}

// Log logs msg at level. Call fields override fields added with With.
func (l *Leveled) Log(level core.Level, msg string, fields ...core.Field) {
	l.log(level, msg, fields)
}

func (l *Leveled) log(level core.Level, msg string, fields []core.Field) {
	if l.logger == nil {
		return
	}
	var ctx core.Context
	switch {
	case len(l.fields) == 0:
		ctx = core.Fields(fields...)
	case len(fields) == 0:
		ctx = core.Fields(l.fields...)
	default:
		all := make([]core.Field, 0, len(l.fields)+len(fields))
		all = append(all, l.fields...)
		all = append(all, fields...)
		ctx = core.Fields(all...)
	}
	l.logger.Log(level, msg, ctx)
}

// Emergency logs that the system is unusable
func (l *Leveled) Emergency(msg string, fields ...core.Field) {
	l.log(core.LevelEmergency, msg, fields)
}

// Alert logs that action must be taken immediately
func (l *Leveled) Alert(msg string, fields ...core.Field) {
	l.log(core.LevelAlert, msg, fields)
}

// Critical logs a critical condition
func (l *Leveled) Critical(msg string, fields ...core.Field) {
	l.log(core.LevelCritical, msg, fields)
}

// Error logs an error message
func (l *Leveled) Error(msg string, fields ...core.Field) {
	l.log(core.LevelError, msg, fields)
}

// Warning logs a warning message
func (l *Leveled) Warning(msg string, fields ...core.Field) {
	l.log(core.LevelWarning, msg, fields)
}

// Notice logs a normal but significant event
func (l *Leveled) Notice(msg string, fields ...core.Field) {
	l.log(core.LevelNotice, msg, fields)
}

// Info logs an info message
func (l *Leveled) Info(msg string, fields ...core.Field) {
	l.log(core.LevelInfo, msg, fields)
}

// Debug logs a debug message
func (l *Leveled) Debug(msg string, fields ...core.Field) {
	l.log(core.LevelDebug, msg, fields)
}

// Bootstrap logs a message from early startup
func (l *Leveled) Bootstrap(msg string, fields ...core.Field) {
	l.log(core.LevelBootstrap, msg, fields)
}

// Preflight logs a message from the preflight phase
func (l *Leveled) Preflight(msg string, fields ...core.Field) {
	l.log(core.LevelPreflight, msg, fields)
}

// Cancel logs that the user cancelled an operation
func (l *Leveled) Cancel(msg string, fields ...core.Field) {
	l.log(core.LevelCancel, msg, fields)
}

// OK logs a generic success
func (l *Leveled) OK(msg string, fields ...core.Field) {
	l.log(core.LevelOK, msg, fields)
}

// Success logs that the command succeeded
func (l *Leveled) Success(msg string, fields ...core.Field) {
	l.log(core.LevelSuccess, msg, fields)
}

// Batch logs progress of a batch process
func (l *Leveled) Batch(msg string, fields ...core.Field) {
	l.log(core.LevelBatch, msg, fields)
}

// Errorf logs a formatted error message
func (l *Leveled) Errorf(format string, args ...interface{}) {
	l.log(core.LevelError, fmt.Sprintf(format, args...), nil)
}

// Warningf logs a formatted warning message
func (l *Leveled) Warningf(format string, args ...interface{}) {
	l.log(core.LevelWarning, fmt.Sprintf(format, args...), nil)
}

// Noticef logs a formatted notice
func (l *Leveled) Noticef(format string, args ...interface{}) {
	l.log(core.LevelNotice, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a formatted debug message
func (l *Leveled) Debugf(format string, args ...interface{}) {
	l.log(core.LevelDebug, fmt.Sprintf(format, args...), nil)
}
