package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// Written counts entries that reached the writer
	Written uint64
	// Skipped counts entries the formatter chose not to render
	Skipped uint64
	// Failed counts format or write errors
	Failed uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter
func (s *Stats) IncrementWritten() {
	atomic.AddUint64(&s.Written, 1)
}

// IncrementSkipped atomically increments the skipped counter
func (s *Stats) IncrementSkipped() {
	atomic.AddUint64(&s.Skipped, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.Failed, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.Written, 0)
	atomic.StoreUint64(&s.Skipped, 0)
	atomic.StoreUint64(&s.Failed, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written uint64
	Skipped uint64
	Failed  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Written: atomic.LoadUint64(&s.Written),
		Skipped: atomic.LoadUint64(&s.Skipped),
		Failed:  atomic.LoadUint64(&s.Failed),
	}
}
