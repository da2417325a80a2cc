package logger

import (
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/handler"
)

// Logger is the logging capability implemented by Console and Watchdog.
// message is a template; context values are not interpolated into it.
type Logger interface {
	Log(level core.Level, message string, context core.Context)
}

// History records log entries.
type History interface {
	Append(entry *core.Entry)
}

// Transport relays log entries to a coordinating process.
type Transport interface {
	Send(channel string, entry *core.Entry) error
}

// threshold holds an ignore level that may change while other
// goroutines log.
type threshold struct {
	level atomic.Pointer[core.Level]
}

func (t *threshold) set(level core.Level) {
	level = core.ParseLevel(string(level))
	t.level.Store(&level)
}

func (t *threshold) get() core.Level {
	if l := t.level.Load(); l != nil {
		return *l
	}
	return ""
}

// heapBytes reports the bytes of allocated heap objects.
func heapBytes() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// Slog returns a log/slog logger that forwards records to l. Records at
// or below ignore are dropped.
func Slog(l Logger, ignore core.Level) *slog.Logger {
	return slog.New(handler.NewSlogHandler(l, ignore))
}
