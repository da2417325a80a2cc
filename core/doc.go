// Package core defines the shared types used across drushlog.
//
// It provides the Level type together with the rank table that orders
// every known level, the Entry type that represents a single log event,
// the Field type for building structured context, the threshold filter,
// and the call-stack helpers used to derive a facility name.
//
// Levels are open-ended strings. The standard syslog-style levels
// (emergency through debug) and the extended levels (bootstrap,
// preflight, cancel, ok, success, batch) have fixed ranks; any other
// name is still a valid level and ranks as notice. Legacy aliases such
// as "failed" or "status" are folded into their canonical level by
// ParseLevel and never appear in the rank table.
//
// Entries are built once by NewEntry, which copies the caller's context,
// and are treated as read-only afterwards. An Entry may be retained by
// sinks such as the history buffer, so entries are never pooled or
// recycled.
package core
