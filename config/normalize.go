package config

import (
	"strings"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/watchdog"
)

func (c *Config) normalize() error {
	c.Logger.IgnoreLevel = core.ParseLevel(c.Logger.IgnoreLevel).String()
	c.Watchdog.IgnoreLevel = core.ParseLevel(c.Watchdog.IgnoreLevel).String()
	c.Watchdog.Driver = strings.ToLower(strings.TrimSpace(c.Watchdog.Driver))
	c.Watchdog.DSN = strings.TrimSpace(c.Watchdog.DSN)

	if c.Watchdog.Driver == watchdog.DriverSQLite && isFilePath(c.Watchdog.DSN) {
		expanded, err := expandPath(c.Watchdog.DSN)
		if err != nil {
			return err
		}
		c.Watchdog.DSN = expanded
	}
	return nil
}

// isFilePath reports whether a SQLite DSN is a plain path rather than a
// URI or an in-memory database.
func isFilePath(dsn string) bool {
	return dsn != "" && !strings.HasPrefix(dsn, "file:") && !strings.Contains(dsn, ":memory:")
}
