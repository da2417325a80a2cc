package logger

import (
	"github.com/philipp01105/drushlog/backend"
	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/env"
	"github.com/philipp01105/drushlog/handler"
)

// Console logs to the history buffer, the backend transport and the
// console handler. It is safe for concurrent use.
type Console struct {
	settings  env.Source
	history   History
	transport Transport
	handler   handler.Handler
	ignore    threshold
}

// ConsoleBuilder provides a fluent API for building Console loggers
type ConsoleBuilder struct {
	settings  env.Source
	history   History
	transport Transport
	handler   handler.Handler
	ignore    core.Level
}

// NewConsoleBuilder creates a new console logger builder
func NewConsoleBuilder() *ConsoleBuilder {
	return &ConsoleBuilder{}
}

// WithSettings sets the settings source read on every call. It also
// feeds the default console handler.
func (b *ConsoleBuilder) WithSettings(src env.Source) *ConsoleBuilder {
	b.settings = src
	return b
}

// WithHistory sets the history buffer
func (b *ConsoleBuilder) WithHistory(h History) *ConsoleBuilder {
	b.history = h
	return b
}

// WithTransport sets the backend transport
func (b *ConsoleBuilder) WithTransport(t Transport) *ConsoleBuilder {
	b.transport = t
	return b
}

// WithHandler sets the handler that prints entries
func (b *ConsoleBuilder) WithHandler(h handler.Handler) *ConsoleBuilder {
	b.handler = h
	return b
}

// WithIgnoreLevel sets the initial ignore level
func (b *ConsoleBuilder) WithIgnoreLevel(level core.Level) *ConsoleBuilder {
	b.ignore = level
	return b
}

// Build creates the Console logger. Without a handler, entries are
// printed to stderr by a ConsoleHandler over the configured settings.
func (b *ConsoleBuilder) Build() *Console {
	settings := b.settings
	if settings == nil {
		settings = env.Static{}
	}
	h := b.handler
	if h == nil {
		h = handler.NewConsoleHandler(handler.ConsoleConfig{Settings: settings})
	}

	c := &Console{
		settings:  settings,
		history:   b.history,
		transport: b.transport,
		handler:   h,
	}
	c.ignore.set(b.ignore)
	return c
}

// SetIgnoreLevel changes the ignore level. An empty level disables
// filtering.
func (c *Console) SetIgnoreLevel(level core.Level) {
	c.ignore.set(level)
}

// IgnoreLevel returns the current ignore level.
func (c *Console) IgnoreLevel() core.Level {
	return c.ignore.get()
}

// Log implements Logger. Events that pass the ignore level are always
// recorded and relayed, even when the console hides them.
func (c *Console) Log(level core.Level, message string, context core.Context) {
	level = core.ParseLevel(string(level))
	if !core.ShouldEmit(level, c.IgnoreLevel()) {
		return
	}

	entry := core.NewEntry(level, message, context)
	if c.settings.Settings().Debug {
		entry.Memory = heapBytes()
	}

	if c.history != nil {
		c.history.Append(entry)
	}
	if c.transport != nil {
		_ = c.transport.Send(backend.ChannelLog, entry)
	}
	_ = c.handler.Handle(entry)
}

// Close closes the handler
func (c *Console) Close() error {
	return c.handler.Close()
}
