// Package env holds the process-wide settings the loggers read on every
// call: verbosity, debug, quiet, colour, backend mode, terminal width and
// the process start time.
//
// The loggers never change settings. The host owns a Source and updates
// it as its session changes (for example after parsing CLI flags); every
// log call takes a fresh snapshot, so changes apply to the next event.
package env

import (
	"sync/atomic"
	"time"
)

// DefaultColumns is the terminal width used when it cannot be detected.
const DefaultColumns = 80

// Settings is a snapshot of the process-wide logging flags.
type Settings struct {
	Verbose bool
	Debug   bool
	Quiet   bool
	NoColor bool
	// Backend suppresses console output; events are still forwarded to
	// the backend transport.
	Backend bool
	// Columns is the terminal width. Zero or negative means unknown.
	Columns int
	// Start is the process start time used for the debug timer.
	Start time.Time
}

// Width returns Columns, or DefaultColumns when unknown.
func (s Settings) Width() int {
	if s.Columns <= 0 {
		return DefaultColumns
	}
	return s.Columns
}

// Source provides the current settings.
type Source interface {
	Settings() Settings
}

// Static is a Source that never changes.
type Static Settings

// Settings implements Source.
func (s Static) Settings() Settings {
	return Settings(s)
}

// Store is a Source the host can update at runtime. It is safe for
// concurrent use.
type Store struct {
	current atomic.Pointer[Settings]
}

// NewStore creates a store holding s.
func NewStore(s Settings) *Store {
	st := &Store{}
	st.Set(s)
	return st
}

// Settings implements Source.
func (st *Store) Settings() Settings {
	if s := st.current.Load(); s != nil {
		return *s
	}
	return Settings{}
}

// Set replaces the stored settings.
func (st *Store) Set(s Settings) {
	st.current.Store(&s)
}

// Update applies fn to a copy of the current settings and stores it.
func (st *Store) Update(fn func(*Settings)) {
	for {
		old := st.current.Load()
		next := Settings{}
		if old != nil {
			next = *old
		}
		fn(&next)
		if st.current.CompareAndSwap(old, &next) {
			return
		}
	}
}
