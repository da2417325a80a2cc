// Package watchdog persists log records in a Drupal-style system log.
//
// A Record carries a facility (the "type" column), an untranslated
// message template, the placeholder variables for that template, an
// RFC 3164 severity and an optional link. Persisters store records;
// Store writes them to a SQL table through sqlx (SQLite via
// modernc.org/sqlite or PostgreSQL via lib/pq) and ZapPersister forwards
// them to a zap logger.
package watchdog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/philipp01105/drushlog/core"
)

// Record is one watchdog entry.
type Record struct {
	ID        int64
	Facility  string
	Message   string
	Variables core.Context
	Severity  int
	Link      string
	Session   string
	Time      time.Time
}

// Persister stores watchdog records.
type Persister interface {
	Persist(rec Record) error
}

// PersisterFunc adapts a function to Persister.
type PersisterFunc func(rec Record) error

// Persist implements Persister.
func (f PersisterFunc) Persist(rec Record) error {
	return f(rec)
}

// Text renders the record's message with its variables.
func (r Record) Text() string {
	return Format(r.Message, r.Variables)
}

// Format substitutes placeholders in template. Keys starting with "@",
// "%" or "!" are replaced by the value's text; other keys are ignored.
// Longer keys are matched first so "%file" never shadows "%filename".
func Format(template string, vars core.Context) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		if k == "" {
			continue
		}
		switch k[0] {
		case '@', '%', '!':
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return template
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, valueText(vars[k]))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func valueText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case error:
		return val.Error()
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
