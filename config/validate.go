package config

import (
	"errors"
	"fmt"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/watchdog"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConsole(); err != nil {
		return err
	}
	if err := c.validateLogger(); err != nil {
		return err
	}
	if err := c.validateWatchdog(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateConsole() error {
	if c.Console.Columns < 0 {
		return errors.New("console.columns must be zero or positive")
	}
	if c.Console.Quiet && c.Console.Verbose {
		return errors.New("console.quiet and console.verbose cannot both be set")
	}
	return nil
}

func (c *Config) validateLogger() error {
	if err := validateLevel("logger.ignore_level", c.Logger.IgnoreLevel); err != nil {
		return err
	}
	if c.Logger.HistoryCapacity < 0 {
		return errors.New("logger.history_capacity must be zero or positive")
	}
	return nil
}

func (c *Config) validateWatchdog() error {
	if err := validateLevel("watchdog.ignore_level", c.Watchdog.IgnoreLevel); err != nil {
		return err
	}
	if !c.Watchdog.Enabled {
		return nil
	}
	switch c.Watchdog.Driver {
	case watchdog.DriverSQLite, watchdog.DriverPostgres:
	default:
		return fmt.Errorf("watchdog.driver must be %q or %q, got %q", watchdog.DriverSQLite, watchdog.DriverPostgres, c.Watchdog.Driver)
	}
	if c.Watchdog.DSN == "" {
		return errors.New("watchdog.dsn must be set when watchdog.enabled is true")
	}
	return nil
}

// validateLevel rejects ignore levels outside the registry. At runtime
// such a level would silently disable filtering.
func validateLevel(field, level string) error {
	if level == "" || core.Level(level).Known() {
		return nil
	}
	return fmt.Errorf("%s: unknown level %q", field, level)
}
