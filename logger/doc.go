// Package logger is the public API of drushlog. Most users only need to
// import this package.
//
// Two loggers implement the Logger capability:
//
//   - Console records every event in the history buffer, relays it to
//     the backend transport and prints it to stderr when its level is
//     visible under the current settings.
//   - Watchdog maps levels to RFC 3164 severities, works out the
//     calling facility from the stack and persists the event in the
//     system log. Errors logged under the "exception" key are decoded
//     into placeholder variables.
//
// Both keep an ignore level that can be changed at runtime; events at or
// below it are dropped before any work is done. Log never returns an
// error: failures of the history, transport, handler or persister are
// ignored.
//
// Leveled wraps any Logger with one method per level and typed fields:
//
//	log := logger.NewLeveled(console)
//	log.Success("Cache rebuilt", logger.Int("bins", 12))
//	log.Error("", logger.Err(err))
//
// The package initializes a default Leveled console logger on stderr.
// The package-level functions delegate to it, so simple programs can log
// without any setup:
//
//	logger.Notice("ready", logger.Int("port", 8080))
package logger
