package core

import "strings"

// Level is the name of a log severity. It is an open set: names outside
// the rank table are accepted and rank as LevelNotice.
type Level string

// Standard levels, most to least severe.
const (
	LevelEmergency Level = "emergency"
	LevelAlert     Level = "alert"
	LevelCritical  Level = "critical"
	LevelError     Level = "error"
	LevelWarning   Level = "warning"
	LevelNotice    Level = "notice"
	LevelInfo      Level = "info"
	LevelDebug     Level = "debug"
)

// Extended levels kept for historical reasons. Standard levels should be
// preferred in new code.
const (
	// LevelBootstrap and LevelPreflight mark things that happen early on.
	LevelBootstrap Level = "bootstrap"
	LevelPreflight Level = "preflight"
	// LevelCancel notes that the user is cancelling an operation.
	LevelCancel Level = "cancel"
	// LevelOK is a generic success message.
	LevelOK Level = "ok"
	// LevelSuccess means the command was successful. It should appear at
	// most once per command.
	LevelSuccess Level = "success"
	// LevelBatch is used by batch processes.
	LevelBatch Level = "batch"
)

// Rank values. A higher rank is a less severe level.
const (
	rankEmergency = iota
	rankAlert
	rankCritical
	rankError
	rankWarning
	rankNotice
	rankInfo
	rankDebug
)

var ranks = map[Level]int{
	LevelEmergency: rankEmergency,
	LevelAlert:     rankAlert,
	LevelCritical:  rankCritical,
	LevelError:     rankError,
	LevelWarning:   rankWarning,
	LevelCancel:    rankWarning,
	LevelNotice:    rankNotice,
	LevelBootstrap: rankNotice,
	LevelPreflight: rankNotice,
	LevelOK:        rankNotice,
	LevelSuccess:   rankNotice,
	LevelBatch:     rankNotice,
	LevelInfo:      rankInfo,
	LevelDebug:     rankDebug,
}

// ordered lists the registered levels by rank, standard level first
// within a rank.
var ordered = []Level{
	LevelEmergency,
	LevelAlert,
	LevelCritical,
	LevelError,
	LevelWarning,
	LevelCancel,
	LevelNotice,
	LevelBootstrap,
	LevelPreflight,
	LevelOK,
	LevelSuccess,
	LevelBatch,
	LevelInfo,
	LevelDebug,
}

// Legacy names still accepted on input. Only here in case older callers
// use them.
var aliases = map[string]Level{
	"failed":    LevelError,
	"completed": LevelSuccess,
	"status":    LevelSuccess,
	"message":   LevelNotice,
}

// ParseLevel normalizes s and folds legacy aliases into their canonical
// level. Unknown names are returned lower-cased and trimmed.
func ParseLevel(s string) Level {
	name := strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return Level(name)
}

// String returns the level name
func (l Level) String() string {
	return string(l)
}

// Known reports whether l has an entry in the rank table.
func (l Level) Known() bool {
	_, ok := ranks[l]
	return ok
}

// Rank returns the ordinal of l. Unknown levels rank as LevelNotice,
// the same fallback the watchdog severity map applies.
func (l Level) Rank() int {
	if r, ok := ranks[l]; ok {
		return r
	}
	return rankNotice
}

// Compare returns -1 when a is more severe than b, +1 when it is less
// severe and 0 when both share a rank.
func Compare(a, b Level) int {
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// Levels returns the registered levels ordered from most to least severe.
func Levels() []Level {
	out := make([]Level, len(ordered))
	copy(out, ordered)
	return out
}
