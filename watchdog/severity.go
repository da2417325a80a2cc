package watchdog

import "github.com/philipp01105/drushlog/core"

// RFC 3164 severities.
const (
	SeverityEmergency = 0 // system is unusable
	SeverityAlert     = 1 // action must be taken immediately
	SeverityCritical  = 2
	SeverityError     = 3
	SeverityWarning   = 4
	SeverityNotice    = 5 // normal but significant; the default
	SeverityInfo      = 6
	SeverityDebug     = 7
)

// SeverityMap translates levels to RFC 3164 severities.
type SeverityMap map[core.Level]int

// DefaultSeverities maps the standard levels to their RFC 3164 value and
// the extended levels to the severity they behave like.
var DefaultSeverities = SeverityMap{
	core.LevelEmergency: SeverityEmergency,
	core.LevelAlert:     SeverityAlert,
	core.LevelCritical:  SeverityCritical,
	core.LevelError:     SeverityError,
	core.LevelWarning:   SeverityWarning,
	core.LevelNotice:    SeverityNotice,
	core.LevelInfo:      SeverityInfo,
	core.LevelDebug:     SeverityDebug,
	core.LevelCancel:    SeverityWarning,
	core.LevelBootstrap: SeverityNotice,
	core.LevelPreflight: SeverityNotice,
	core.LevelOK:        SeverityNotice,
	core.LevelSuccess:   SeverityNotice,
	core.LevelBatch:     SeverityNotice,
}

// Lookup returns the severity of level and whether the map has it.
func (m SeverityMap) Lookup(level core.Level) (int, bool) {
	s, ok := m[level]
	return s, ok
}

// Severity returns the severity of level. Unmapped levels are treated
// as notices.
func (m SeverityMap) Severity(level core.Level) int {
	if s, ok := m[level]; ok {
		return s
	}
	return SeverityNotice
}

// ShouldEmit reports whether level passes the ignore threshold. Events
// whose severity is at or above (numerically) the ignore severity are
// suppressed. An empty or unmapped ignore level disables filtering.
func (m SeverityMap) ShouldEmit(level, ignore core.Level) bool {
	if ignore == "" {
		return true
	}
	limit, ok := m.Lookup(ignore)
	if !ok {
		return true
	}
	return m.Severity(level) < limit
}
