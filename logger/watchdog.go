package logger

import (
	"time"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/errdecode"
	"github.com/philipp01105/drushlog/watchdog"
)

const modulePath = "github.com/philipp01105/drushlog"

// DefaultFacade matches the frames of this module's loggers and of
// log/slog, so facilities point at the code that called into them.
var DefaultFacade = core.NewFacade(
	modulePath+"/logger",
	modulePath+"/handler",
	"log/slog",
)

// Watchdog logs to the system log. It is safe for concurrent use as long
// as its persister is.
type Watchdog struct {
	severities watchdog.SeverityMap
	facade     core.Facade
	stack      core.StackSource
	decoder    errdecode.Decoder
	persister  watchdog.Persister
	ignore     threshold
}

// WatchdogBuilder provides a fluent API for building Watchdog loggers
type WatchdogBuilder struct {
	severities watchdog.SeverityMap
	facade     core.Facade
	stack      core.StackSource
	decoder    errdecode.Decoder
	persister  watchdog.Persister
	ignore     core.Level
}

// NewWatchdogBuilder creates a builder persisting to p.
func NewWatchdogBuilder(p watchdog.Persister) *WatchdogBuilder {
	return &WatchdogBuilder{
		severities: watchdog.DefaultSeverities,
		facade:     DefaultFacade,
		stack:      core.RuntimeStack{},
		decoder:    errdecode.Default,
		persister:  p,
	}
}

// WithSeverities replaces the level to severity map.
func (b *WatchdogBuilder) WithSeverities(m watchdog.SeverityMap) *WatchdogBuilder {
	b.severities = m
	return b
}

// WithFacade sets the packages skipped when resolving facilities.
func (b *WatchdogBuilder) WithFacade(f core.Facade) *WatchdogBuilder {
	b.facade = f
	return b
}

// WithStack sets the stack source used to resolve facilities.
func (b *WatchdogBuilder) WithStack(s core.StackSource) *WatchdogBuilder {
	b.stack = s
	return b
}

// WithDecoder sets the error decoder.
func (b *WatchdogBuilder) WithDecoder(d errdecode.Decoder) *WatchdogBuilder {
	b.decoder = d
	return b
}

// WithIgnoreLevel sets the initial ignore level.
func (b *WatchdogBuilder) WithIgnoreLevel(level core.Level) *WatchdogBuilder {
	b.ignore = level
	return b
}

// Build creates the Watchdog logger. A nil persister discards records.
func (b *WatchdogBuilder) Build() *Watchdog {
	w := &Watchdog{
		severities: b.severities,
		facade:     b.facade,
		stack:      b.stack,
		decoder:    b.decoder,
		persister:  b.persister,
	}
	if w.severities == nil {
		w.severities = watchdog.DefaultSeverities
	}
	if w.stack == nil {
		w.stack = core.RuntimeStack{}
	}
	if w.decoder == nil {
		w.decoder = errdecode.Default
	}
	if w.persister == nil {
		w.persister = watchdog.PersisterFunc(func(watchdog.Record) error { return nil })
	}
	w.ignore.set(b.ignore)
	return w
}

// SetIgnoreLevel changes the ignore level. An empty level, or one the
// severity map does not know, disables filtering.
func (w *Watchdog) SetIgnoreLevel(level core.Level) {
	w.ignore.set(level)
}

// IgnoreLevel returns the current ignore level.
func (w *Watchdog) IgnoreLevel() core.Level {
	return w.ignore.get()
}

// Log implements Logger.
//
// The facility comes from a string "facility" context value or, when
// absent, from the first stack frame outside the facade. A "link" string
// is stored with the record. An error under "exception" is removed from
// the variables and decoded into them; keys the caller already set win.
func (w *Watchdog) Log(level core.Level, message string, context core.Context) {
	level = core.ParseLevel(string(level))
	if !w.severities.ShouldEmit(level, w.IgnoreLevel()) {
		return
	}

	vars := context.Clone()
	facility, _ := vars[core.FacilityKey].(string)
	delete(vars, core.FacilityKey)
	if facility == "" {
		facility = core.ResolveFacility(w.stack.Frames(0), w.facade.Matches)
	}
	link, _ := vars[core.LinkKey].(string)
	delete(vars, core.LinkKey)

	if err, ok := vars[core.ExceptionKey].(error); ok && err != nil {
		delete(vars, core.ExceptionKey)
		if message == "" {
			message = errdecode.DefaultTemplate
		}
		for k, v := range w.decoder.Decode(err) {
			if _, set := vars[k]; !set {
				vars[k] = v
			}
		}
	}

	_ = w.persister.Persist(watchdog.Record{
		Facility:  facility,
		Message:   message,
		Variables: vars,
		Severity:  w.severities.Severity(level),
		Link:      link,
		Time:      time.Now(),
	})
}
