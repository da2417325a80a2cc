package logger

import (
	"testing"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/env"
	"github.com/philipp01105/drushlog/history"
	"github.com/philipp01105/drushlog/watchdog"
)

func TestMulti(t *testing.T) {
	h := history.New(0)
	console := NewConsoleBuilder().
		WithSettings(env.Static{Backend: true}).
		WithHistory(h).
		Build()

	p := &recordingPersister{}
	wd := newWatchdog(p)
	wd.SetIgnoreLevel(core.LevelWarning)

	m := NewMulti(console, nil, wd)
	if len(m) != 2 {
		t.Fatalf("Expected nil logger skipped, got %d loggers", len(m))
	}

	ctx := core.Context{core.FacilityKey: "cron", "@n": 1}
	m.Log(core.LevelError, "ran @n jobs", ctx)
	m.Log(core.LevelNotice, "only console", nil)

	if h.Len() != 2 {
		t.Errorf("Expected 2 console entries, got: %d", h.Len())
	}
	if len(p.records) != 1 || p.records[0].Severity != watchdog.SeverityError {
		t.Errorf("Expected one error record, got: %+v", p.records)
	}
	if _, ok := h.Entries()[0].Context[core.FacilityKey]; !ok {
		t.Error("Expected console context unaffected by watchdog processing")
	}
	if len(ctx) != 2 {
		t.Errorf("Expected caller context untouched, got: %v", ctx)
	}
}
