package config

import "github.com/philipp01105/drushlog/watchdog"

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Watchdog: Watchdog{
			Driver:      watchdog.DriverSQLite,
			DSN:         "~/.local/share/drushlog/watchdog.db",
			IgnoreLevel: "debug",
		},
	}
}
