package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/drushlog/core"
)

// Formatter defines the interface for log formatters. A formatter may
// return a nil slice when the entry should not be written at all.
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead. It reports whether anything was written.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer) bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// formatWith runs fn over a pooled buffer and returns a copy of the
// result, or nil when fn wrote nothing.
func formatWith(entry *core.Entry, fn func(*core.Entry, *bytes.Buffer) bool) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	if !fn(entry, buf) {
		return nil
	}
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
