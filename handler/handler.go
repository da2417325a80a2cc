package handler

import (
	"github.com/philipp01105/drushlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Logger is the logging capability SlogHandler forwards to.
type Logger interface {
	Log(level core.Level, message string, context core.Context)
}
