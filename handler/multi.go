package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/drushlog/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are skipped.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Handle processes a log entry by sending it to all handlers. Every
// handler sees the entry even when an earlier one fails.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
