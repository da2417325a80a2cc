package logger

import "github.com/philipp01105/drushlog/core"

// Multi sends every event to each of its loggers in order. Each logger
// applies its own ignore level.
type Multi []Logger

// NewMulti creates a Multi from the non-nil loggers.
func NewMulti(loggers ...Logger) Multi {
	m := make(Multi, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

// Log implements Logger.
func (m Multi) Log(level core.Level, message string, context core.Context) {
	for _, l := range m {
		l.Log(level, message, context)
	}
}
