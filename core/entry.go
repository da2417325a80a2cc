package core

import (
	"time"
)

// Context carries the key/value data attached to a log event.
type Context map[string]any

// Reserved context keys.
const (
	// ExceptionKey holds an error to be decoded by the watchdog logger.
	ExceptionKey = "exception"
	// FacilityKey overrides the facility derived from the call stack.
	FacilityKey = "facility"
	// LinkKey holds an optional link stored with a watchdog record.
	LinkKey = "link"
)

// Keys folded into an entry's packet.
const (
	PacketType      = "type"
	PacketMessage   = "message"
	PacketTimestamp = "timestamp"
	PacketMemory    = "memory"
)

// Clone returns a shallow copy of c. A nil Context clones to an empty one.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Entry represents a single log event. It is built by NewEntry and must
// not be modified once it has been handed to a sink.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Context Context
	// Memory is the heap size in bytes when the event was created. It is
	// only captured in debug mode and is zero otherwise.
	Memory uint64
}

// NewEntry creates an entry stamped with the current time. The context is
// copied so later changes by the caller do not leak into the entry.
func NewEntry(level Level, msg string, ctx Context) *Entry {
	return &Entry{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Context: ctx.Clone(),
	}
}

// Packet folds the level, message, timestamp and memory into a copy of
// the context, the shape recorded in the history and sent to the backend.
func (e *Entry) Packet() Context {
	p := e.Context.Clone()
	p[PacketType] = string(e.Level)
	p[PacketMessage] = e.Message
	p[PacketTimestamp] = float64(e.Time.Unix()) + float64(e.Time.Nanosecond())/float64(time.Second)
	p[PacketMemory] = e.Memory
	return p
}
