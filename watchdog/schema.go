package watchdog

import "fmt"

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS watchdog (
	wid       INTEGER PRIMARY KEY AUTOINCREMENT,
	type      TEXT    NOT NULL,
	message   TEXT    NOT NULL,
	variables TEXT    NOT NULL,
	severity  INTEGER NOT NULL,
	link      TEXT    NOT NULL DEFAULT '',
	session   TEXT    NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS watchdog_type ON watchdog (type);
CREATE INDEX IF NOT EXISTS watchdog_severity ON watchdog (severity);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS watchdog (
	wid       BIGSERIAL PRIMARY KEY,
	type      TEXT        NOT NULL,
	message   TEXT        NOT NULL,
	variables TEXT        NOT NULL,
	severity  SMALLINT    NOT NULL,
	link      TEXT        NOT NULL DEFAULT '',
	session   VARCHAR(36) NOT NULL,
	timestamp BIGINT      NOT NULL
);
CREATE INDEX IF NOT EXISTS watchdog_type ON watchdog (type);
CREATE INDEX IF NOT EXISTS watchdog_severity ON watchdog (severity);
`

func schemaFor(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return sqliteSchema, nil
	case DriverPostgres:
		return postgresSchema, nil
	default:
		return "", fmt.Errorf("watchdog: unsupported driver %q", driver)
	}
}
