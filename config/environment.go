package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DRUSHLOG_"

// loadDotEnv reads path into the process environment. Variables that
// are already set keep their value. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

// applyEnv overrides fields from DRUSHLOG_* variables.
func (c *Config) applyEnv(lookup lookupFunc) error {
	bools := []struct {
		key string
		dst *bool
	}{
		{"VERBOSE", &c.Console.Verbose},
		{"DEBUG", &c.Console.Debug},
		{"QUIET", &c.Console.Quiet},
		{"NO_COLOR", &c.Console.NoColor},
		{"BACKEND", &c.Console.Backend},
		{"WATCHDOG_ENABLED", &c.Watchdog.Enabled},
	}
	for _, b := range bools {
		raw, ok := lookup(EnvPrefix + b.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, b.key, err)
		}
		*b.dst = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"COLUMNS", &c.Console.Columns},
		{"HISTORY_CAPACITY", &c.Logger.HistoryCapacity},
	}
	for _, i := range ints {
		raw, ok := lookup(EnvPrefix + i.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, i.key, err)
		}
		*i.dst = v
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"IGNORE_LEVEL", &c.Logger.IgnoreLevel},
		{"WATCHDOG_DRIVER", &c.Watchdog.Driver},
		{"WATCHDOG_DSN", &c.Watchdog.DSN},
		{"WATCHDOG_IGNORE_LEVEL", &c.Watchdog.IgnoreLevel},
	}
	for _, s := range strs {
		if raw, ok := lookup(EnvPrefix + s.key); ok {
			*s.dst = raw
		}
	}
	return nil
}
