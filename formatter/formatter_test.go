package formatter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/env"
)

func entry(level core.Level, msg string) *core.Entry {
	return &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   level,
		Message: msg,
		Context: core.Context{},
	}
}

func TestRender_ErrorNoColor(t *testing.T) {
	out, ok := Render(entry(core.LevelError, "Build failed"), env.Settings{Columns: 80, NoColor: true})
	if !ok {
		t.Fatal("Expected error to be visible")
	}

	want := "Build failed" + strings.Repeat(" ", 69-len("Build failed")) + "    [error]\n"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
	if len(strings.TrimSuffix(out, "\n")) != 80 {
		t.Errorf("Expected an 80 column line, got %d", len(out)-1)
	}
}

func TestRender_TagAlignment(t *testing.T) {
	levels := []core.Level{core.LevelWarning, core.LevelCancel, core.LevelError, core.LevelOK, core.LevelSuccess, core.LevelNotice, core.LevelDebug}
	s := env.Settings{Columns: 80, NoColor: true, Verbose: true, Debug: false}

	for _, l := range levels {
		t.Run(string(l), func(t *testing.T) {
			s := s
			if l == core.LevelDebug {
				s.Debug = true
				s.Start = time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC)
			}
			out, ok := Render(entry(l, "short"), s)
			if !ok {
				t.Fatalf("Expected %s to be visible", l)
			}
			line := strings.TrimSuffix(out, "\n")
			if strings.Contains(line, "\n") {
				t.Fatalf("Expected a single line, got %q", out)
			}
			if len(line) != 80 {
				t.Errorf("Expected line width 80, got %d: %q", len(line), line)
			}
			if !strings.HasSuffix(line, "["+string(l)+"]") {
				t.Errorf("Expected tag at the end of the line, got %q", line)
			}
		})
	}
}

func TestRender_Visibility(t *testing.T) {
	tests := []struct {
		name  string
		level core.Level
		s     env.Settings
		want  bool
	}{
		{"warning always", core.LevelWarning, env.Settings{}, true},
		{"cancel always", core.LevelCancel, env.Settings{Quiet: true}, true},
		{"error always", core.LevelError, env.Settings{Quiet: true}, true},
		{"failed alias", core.Level("failed"), env.Settings{}, true},
		{"success", core.LevelSuccess, env.Settings{}, true},
		{"success quiet", core.LevelSuccess, env.Settings{Quiet: true}, false},
		{"ok quiet", core.LevelOK, env.Settings{Quiet: true}, false},
		{"status alias quiet", core.Level("status"), env.Settings{Quiet: true}, false},
		{"notice", core.LevelNotice, env.Settings{}, false},
		{"notice verbose", core.LevelNotice, env.Settings{Verbose: true}, true},
		{"info verbose", core.LevelInfo, env.Settings{Verbose: true}, true},
		{"message alias verbose", core.Level("message"), env.Settings{Verbose: true}, true},
		{"debug", core.LevelDebug, env.Settings{Verbose: true}, false},
		{"debug with debug", core.LevelDebug, env.Settings{Debug: true}, true},
		{"bootstrap", core.LevelBootstrap, env.Settings{Verbose: true}, false},
		{"custom with debug", core.Level("custom"), env.Settings{Debug: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Render(entry(tt.level, "msg"), tt.s)
			if ok != tt.want {
				t.Errorf("Render(%s) visible = %v, want %v", tt.level, ok, tt.want)
			}
		})
	}
}

func TestRender_BackendSuppressesEverything(t *testing.T) {
	s := env.Settings{Backend: true, Verbose: true, Debug: true}
	for _, l := range append(core.Levels(), "custom") {
		if out, ok := Render(entry(l, "msg"), s); ok || out != "" {
			t.Errorf("Expected no console output for %s in backend mode, got %q", l, out)
		}
	}
}

func TestRender_Colors(t *testing.T) {
	s := env.Settings{Columns: 80, Verbose: true, Debug: true}

	for _, l := range []core.Level{core.LevelWarning, core.LevelError, core.LevelSuccess} {
		out, _ := Render(entry(l, "msg"), s)
		if !strings.Contains(out, "\x1b[") {
			t.Errorf("Expected ANSI colour for %s, got %q", l, out)
		}
	}

	out, _ := Render(entry(core.LevelNotice, "msg"), s)
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Expected plain tag for notice, got %q", out)
	}
}

func TestRender_NoColorForEveryLevel(t *testing.T) {
	s := env.Settings{NoColor: true, Verbose: true, Debug: true}
	for _, l := range append(core.Levels(), "custom") {
		out, ok := Render(entry(l, "msg"), s)
		if !ok {
			t.Fatalf("Expected %s to be visible", l)
		}
		if strings.Contains(out, "\x1b") {
			t.Errorf("Expected no escape sequences for %s, got %q", l, out)
		}
		if !strings.Contains(out, "["+string(l)+"]") {
			t.Errorf("Expected literal tag for %s, got %q", l, out)
		}
	}
}

func TestRender_WrapsLongMessages(t *testing.T) {
	msg := strings.Repeat("word ", 30)
	out, ok := Render(entry(core.LevelError, strings.TrimSpace(msg)), env.Settings{Columns: 40, NoColor: true})
	if !ok {
		t.Fatal("Expected error to be visible")
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("Expected wrapped output, got %q", out)
	}
	if !strings.HasSuffix(lines[0], "[error]") {
		t.Errorf("Expected tag on the first line, got %q", lines[0])
	}
	for _, l := range lines[1:] {
		if strings.Contains(l, "[error]") {
			t.Errorf("Expected no tag on continuation lines, got %q", l)
		}
		if len(l) > 29 {
			t.Errorf("Continuation line wider than 29 columns: %q", l)
		}
	}
}

func TestRender_DebugTimer(t *testing.T) {
	start := time.Date(2026, 2, 18, 12, 59, 58, 500000000, time.UTC)
	e := entry(core.LevelDebug, "Loaded")
	e.Memory = 3 * 1024 * 1024

	out, ok := Render(e, env.Settings{Debug: true, NoColor: true, Columns: 120, Start: start})
	if !ok {
		t.Fatal("Expected debug entry to be visible")
	}
	if !strings.HasPrefix(out, "Loaded [1.50 sec, 3.0 MiB]") {
		t.Errorf("Expected timer suffix, got %q", out)
	}
}

func TestRender_NoTimerWithoutDebug(t *testing.T) {
	out, _ := Render(entry(core.LevelError, "Build failed"), env.Settings{NoColor: true})
	if strings.Contains(out, "sec,") {
		t.Errorf("Expected no timer without debug, got %q", out)
	}
}

func TestRender_CanonicalTag(t *testing.T) {
	out, _ := Render(entry(core.Level("failed"), "msg"), env.Settings{NoColor: true})
	if !strings.Contains(out, "[error]") {
		t.Errorf("Expected alias to render as [error], got %q", out)
	}
}

func TestRender_NarrowTerminal(t *testing.T) {
	out, ok := Render(entry(core.LevelError, "a b"), env.Settings{Columns: 5, NoColor: true})
	if !ok {
		t.Fatal("Expected error to be visible")
	}
	if !strings.Contains(out, "[error]") {
		t.Errorf("Expected tag even on a narrow terminal, got %q", out)
	}
}

func TestConsoleFormatter_Format(t *testing.T) {
	f := NewConsoleFormatter(env.Static{NoColor: true})

	data, err := f.Format(entry(core.LevelNotice, "hidden"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if data != nil {
		t.Errorf("Expected nil for a hidden entry, got %q", data)
	}

	data, _ = f.Format(entry(core.LevelWarning, "shown"))
	if !strings.Contains(string(data), "shown") {
		t.Errorf("Expected 'shown' in output, got: %s", data)
	}
}

func TestJSONFormatter_Basic(t *testing.T) {
	f := NewJSONFormatter()
	e := entry(core.LevelNotice, "Task \"complete\"")
	e.Context = core.Context{"count": 3, "ok": true, "tags": []string{"a", "b"}}

	data, err := f.Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Invalid JSON: %v\n%s", err, data)
	}
	if got["type"] != "notice" {
		t.Errorf("Expected type notice, got: %v", got["type"])
	}
	if got["message"] != "Task \"complete\"" {
		t.Errorf("Expected message, got: %v", got["message"])
	}
	if got["count"] != float64(3) {
		t.Errorf("Expected count 3, got: %v", got["count"])
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Errorf("Expected newline-terminated object, got: %s", data)
	}
}

func TestJSONFormatter_TimestampFormat(t *testing.T) {
	f := &JSONFormatter{TimestampFormat: time.RFC3339}
	data, _ := f.Format(entry(core.LevelError, "x"))
	if !strings.Contains(string(data), `"timestamp":"2026-02-18T13:00:00Z"`) {
		t.Errorf("Expected formatted timestamp, got: %s", data)
	}
}
