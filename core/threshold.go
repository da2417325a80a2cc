package core

// ShouldEmit reports whether an event at level passes the ignore
// threshold. Events at or below ignore (same rank or less severe) are
// suppressed. An empty ignore level disables filtering, and so does an
// ignore level that is not in the rank table.
func ShouldEmit(level, ignore Level) bool {
	if ignore == "" || !ignore.Known() {
		return true
	}
	return level.Rank() < ignore.Rank()
}
