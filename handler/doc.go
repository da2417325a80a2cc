// Package handler dispatches log entries to outputs.
//
// Handlers run synchronously on the caller's goroutine and guard their
// writer with a mutex, so entries from one goroutine are written in call
// order. A handler never decides whether an entry is visible; that is
// the formatter's job, and a formatter returning nil means "skip".
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to an io.Writer (default:
//     stderr).
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - SlogHandler adapts a Logger to log/slog.Handler so the facade can
//     back the standard library logger.
//
// Handlers count written, skipped and failed entries in a Stats value
// that can be queried at runtime.
package handler
