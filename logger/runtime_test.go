package logger_test

import (
	"testing"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/logger"
	"github.com/philipp01105/drushlog/watchdog"
)

func newRuntimeWatchdog(records *[]watchdog.Record) *logger.Watchdog {
	return logger.NewWatchdogBuilder(watchdog.PersisterFunc(func(rec watchdog.Record) error {
		*records = append(*records, rec)
		return nil
	})).Build()
}

func TestWatchdog_RuntimeFacility(t *testing.T) {
	var records []watchdog.Record
	w := newRuntimeWatchdog(&records)

	w.Log(core.LevelError, "direct", nil)
	logger.NewLeveled(w).Error("through leveled")
	logger.Slog(w, "").Error("through slog")

	want := "logger_test.TestWatchdog_RuntimeFacility"
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got: %d", len(records))
	}
	for _, rec := range records {
		if rec.Facility != want {
			t.Errorf("%s: expected facility %q, got: %q", rec.Message, want, rec.Facility)
		}
	}
}

type importer struct {
	log *logger.Leveled
}

func (i *importer) Run() {
	i.log.Warning("row skipped")
}

func TestWatchdog_RuntimeFacilityMethod(t *testing.T) {
	var records []watchdog.Record
	imp := &importer{log: logger.NewLeveled(newRuntimeWatchdog(&records))}

	imp.Run()

	if got := records[0].Facility; got != "logger_test.importer::Run" {
		t.Errorf("Expected method facility, got: %q", got)
	}
}
