package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/philipp01105/drushlog/config"
	"github.com/philipp01105/drushlog/env"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drushlog.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved != filepath.Join(tempHome, ".config", "drushlog", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Watchdog.Enabled {
		t.Fatal("expected watchdog disabled by default")
	}
	if cfg.Watchdog.IgnoreLevel != "debug" {
		t.Fatalf("unexpected watchdog ignore level: %q", cfg.Watchdog.IgnoreLevel)
	}
	wantDSN := filepath.Join(tempHome, ".local", "share", "drushlog", "watchdog.db")
	if cfg.Watchdog.DSN != wantDSN {
		t.Fatalf("unexpected dsn: got %q want %q", cfg.Watchdog.DSN, wantDSN)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[console]
verbose = true
no_color = true
columns = 100

[logger]
ignore_level = "Warning"
history_capacity = 50

[watchdog]
enabled = true
driver = "SQLite"
dsn = ":memory:"
ignore_level = "info"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected %q to exist, got %q (exists=%v)", path, resolved, exists)
	}
	if !cfg.Console.Verbose || !cfg.Console.NoColor || cfg.Console.Columns != 100 {
		t.Fatalf("unexpected console section: %+v", cfg.Console)
	}
	if cfg.Logger.IgnoreLevel != "warning" || cfg.Logger.HistoryCapacity != 50 {
		t.Fatalf("unexpected logger section: %+v", cfg.Logger)
	}
	if cfg.Watchdog.Driver != "sqlite" || cfg.Watchdog.DSN != ":memory:" {
		t.Fatalf("unexpected watchdog section: %+v", cfg.Watchdog)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "[console]\nverbose = false\n")
	t.Setenv("DRUSHLOG_VERBOSE", "true")
	t.Setenv("DRUSHLOG_COLUMNS", "120")
	t.Setenv("DRUSHLOG_IGNORE_LEVEL", "failed")
	t.Setenv("DRUSHLOG_WATCHDOG_DSN", "file:test.db?mode=memory")

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Console.Verbose || cfg.Console.Columns != 120 {
		t.Fatalf("expected env overrides, got %+v", cfg.Console)
	}
	if cfg.Logger.IgnoreLevel != "error" {
		t.Fatalf("expected alias folded to error, got %q", cfg.Logger.IgnoreLevel)
	}
	if cfg.Watchdog.DSN != "file:test.db?mode=memory" {
		t.Fatalf("expected URI dsn kept as is, got %q", cfg.Watchdog.DSN)
	}
}

func TestLoadInvalidEnvValue(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("DRUSHLOG_DEBUG", "sometimes")

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "DRUSHLOG_DEBUG") {
		t.Fatalf("expected DRUSHLOG_DEBUG error, got %v", err)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown level", "[logger]\nignore_level = \"loud\"\n", "logger.ignore_level"},
		{"negative columns", "[console]\ncolumns = -1\n", "console.columns"},
		{"quiet and verbose", "[console]\nquiet = true\nverbose = true\n", "quiet"},
		{"negative capacity", "[logger]\nhistory_capacity = -5\n", "history_capacity"},
		{"bad driver", "[watchdog]\nenabled = true\ndriver = \"oracle\"\ndsn = \"x\"\n", "watchdog.driver"},
		{"missing dsn", "[watchdog]\nenabled = true\ndsn = \"\"\n", "watchdog.dsn"},
		{"bad toml", "[console\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSampleConfigParsesToDefaults(t *testing.T) {
	var cfg config.Config
	if err := toml.Unmarshal([]byte(config.SampleConfig()), &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("sample config differs from defaults: %+v", cfg)
	}
}

func TestSettings(t *testing.T) {
	start := time.Unix(1700000000, 0)
	detected := env.Settings{Columns: 132, Start: start}

	cfg := config.Default()
	cfg.Console.Debug = true
	cfg.Console.NoColor = true

	s := cfg.Settings(detected)
	if !s.Debug || !s.NoColor || s.Columns != 132 || !s.Start.Equal(start) {
		t.Fatalf("unexpected settings: %+v", s)
	}

	cfg.Console.Columns = 60
	cfg.Console.NoColor = false
	s = cfg.Settings(env.Settings{NoColor: true})
	if s.Columns != 60 {
		t.Fatalf("expected configured columns to win, got %d", s.Columns)
	}
	if !s.NoColor {
		t.Fatal("expected detected no-colour to be kept")
	}
	if s.Start.IsZero() {
		t.Fatal("expected start time to be set")
	}
}
