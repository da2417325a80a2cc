package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/env"
	"github.com/philipp01105/drushlog/formatter"
)

// ConsoleHandler writes rendered log entries to the error stream
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
	stats           *Stats
	closed          bool
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: ConsoleFormatter over Settings)
	Formatter formatter.Formatter
	// Settings feeds the default formatter (default: zero Settings)
	Settings env.Source
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		src := cfg.Settings
		if src == nil {
			src = env.Static{}
		}
		cfg.Formatter = formatter.NewConsoleFormatter(src)
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)
	return h
}

// Handle renders entry and writes it. Entries the formatter hides are
// counted and dropped.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.closed {
			return nil
		}
		h.buf.Reset()
		if !h.bufferFormatter.FormatEntry(entry, &h.buf) {
			h.stats.IncrementSkipped()
			return nil
		}
		return h.write(h.buf.Bytes())
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	if data == nil {
		h.stats.IncrementSkipped()
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	return h.write(data)
}

// write must be called with mu held.
func (h *ConsoleHandler) write(data []byte) error {
	if _, err := h.writer.Write(data); err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementWritten()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops further writes. The writer itself is left open since it is
// usually a standard stream.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
