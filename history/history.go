// Package history keeps the log entries of the current process in
// memory so the host can inspect or replay them, for example to return
// them with a command result.
package history

import (
	"sync"

	"github.com/philipp01105/drushlog/core"
)

// Buffer stores log entries in call order. A positive capacity keeps
// only the most recent entries; zero keeps everything. Buffer is safe
// for concurrent use.
type Buffer struct {
	mu       sync.Mutex
	capacity int
	entries  []*core.Entry
	// head is the index of the oldest entry once a bounded buffer is full.
	head    int
	dropped uint64
}

// New creates a buffer with the given capacity.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{capacity: capacity}
}

// Append records an entry.
func (b *Buffer) Append(entry *core.Entry) {
	if b == nil || entry == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.capacity == 0 || len(b.entries) < b.capacity {
		b.entries = append(b.entries, entry)
		return
	}
	b.entries[b.head] = entry
	b.head = (b.head + 1) % b.capacity
	b.dropped++
}

// Entries returns a copy of the recorded entries, oldest first.
func (b *Buffer) Entries() []*core.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*core.Entry, len(b.entries))
	n := copy(out, b.entries[b.head:])
	copy(out[n:], b.entries[:b.head])
	return out
}

// Packets returns the recorded entries in packet form (context plus
// type, message, timestamp and memory).
func (b *Buffer) Packets() []core.Context {
	entries := b.Entries()
	out := make([]core.Context, len(entries))
	for i, e := range entries {
		out[i] = e.Packet()
	}
	return out
}

// Len returns the number of recorded entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Dropped returns how many entries were discarded because of capacity.
func (b *Buffer) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Reset removes all entries.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = nil
	b.head = 0
	b.dropped = 0
}
