package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Console contains the console output flags.
type Console struct {
	Verbose bool `toml:"verbose"`
	Debug   bool `toml:"debug"`
	Quiet   bool `toml:"quiet"`
	NoColor bool `toml:"no_color"`
	Backend bool `toml:"backend"`
	Columns int  `toml:"columns"`
}

// Logger contains console logger settings.
type Logger struct {
	IgnoreLevel     string `toml:"ignore_level"`
	HistoryCapacity int    `toml:"history_capacity"`
}

// Watchdog contains system log settings.
type Watchdog struct {
	Enabled     bool   `toml:"enabled"`
	Driver      string `toml:"driver"`
	DSN         string `toml:"dsn"`
	IgnoreLevel string `toml:"ignore_level"`
}

// Config encapsulates all configuration values for drushlog.
type Config struct {
	Console  Console  `toml:"console"`
	Logger   Logger   `toml:"logger"`
	Watchdog Watchdog `toml:"watchdog"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/drushlog/config.toml")
}

// SampleConfig returns a commented configuration file with the defaults.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. It returns
// the config, the path it resolved and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, "", false, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, "", false, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("drushlog.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
