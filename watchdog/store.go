package watchdog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite"

	"github.com/philipp01105/drushlog/core"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

const insertRecord = `INSERT INTO watchdog (type, message, variables, severity, link, session, timestamp)
VALUES (:type, :message, :variables, :severity, :link, :session, :timestamp)`

// row is the database shape of a Record.
type row struct {
	ID        int64  `db:"wid"`
	Facility  string `db:"type"`
	Message   string `db:"message"`
	Variables string `db:"variables"`
	Severity  int    `db:"severity"`
	Link      string `db:"link"`
	Session   string `db:"session"`
	Timestamp int64  `db:"timestamp"`
}

// Store persists records in a SQL "watchdog" table. Each Store stamps
// its records with its own session id. Store is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	db      *sqlx.DB
	session string
	lock    *flock.Flock
}

// Open connects to the database, creates the schema when missing and
// returns a Store. driver is DriverSQLite or DriverPostgres.
func Open(driver, dsn string) (*Store, error) {
	schema, err := schemaFor(driver)
	if err != nil {
		return nil, err
	}

	path := sqliteFile(driver, dsn)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create watchdog directory: %w", err)
		}
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open watchdog database: %w", err)
	}
	if driver == DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	s := &Store{db: db, session: uuid.NewString()}
	if path != "" {
		s.lock = flock.New(path + ".lock")
	}

	if err := s.migrate(schema); err != nil {
		return nil, multierr.Append(err, db.Close())
	}
	return s, nil
}

// migrate creates the schema. For SQLite files a lock file serializes
// concurrent processes creating the same database.
func (s *Store) migrate(schema string) error {
	if s.lock != nil {
		if err := s.lock.Lock(); err != nil {
			return fmt.Errorf("lock watchdog database: %w", err)
		}
		defer s.lock.Unlock()
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create watchdog schema: %w", err)
	}
	return nil
}

// sqliteFile returns the database file behind a SQLite DSN, or "" for
// in-memory databases and other drivers.
func sqliteFile(driver, dsn string) string {
	if driver != DriverSQLite {
		return ""
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || strings.Contains(path, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	return path
}

// Session returns the id stamped on records written by this store.
func (s *Store) Session() string {
	return s.session
}

// Persist implements Persister.
func (s *Store) Persist(rec Record) error {
	vars, err := encodeVariables(rec.Variables)
	if err != nil {
		return err
	}
	ts := rec.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	r := row{
		Facility:  rec.Facility,
		Message:   rec.Message,
		Variables: vars,
		Severity:  rec.Severity,
		Link:      rec.Link,
		Session:   s.session,
		Timestamp: ts.Unix(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.NamedExec(insertRecord, r); err != nil {
		return fmt.Errorf("insert watchdog record: %w", err)
	}
	return nil
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Facility string
	// MaxSeverity keeps records at this severity or more severe.
	MaxSeverity *int
	Limit       int
}

// List returns records, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]Record, error) {
	var (
		where []string
		args  []any
	)
	if f.Facility != "" {
		where = append(where, "type = ?")
		args = append(args, f.Facility)
	}
	if f.MaxSeverity != nil {
		where = append(where, "severity <= ?")
		args = append(args, *f.MaxSeverity)
	}

	query := "SELECT wid, type, message, variables, severity, link, session, timestamp FROM watchdog"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY wid DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	var rows []row
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list watchdog records: %w", err)
	}

	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		vars := core.Context{}
		if r.Variables != "" {
			if err := json.Unmarshal([]byte(r.Variables), &vars); err != nil {
				return nil, fmt.Errorf("decode variables of record %d: %w", r.ID, err)
			}
		}
		out = append(out, Record{
			ID:        r.ID,
			Facility:  r.Facility,
			Message:   r.Message,
			Variables: vars,
			Severity:  r.Severity,
			Link:      r.Link,
			Session:   r.Session,
			Time:      time.Unix(r.Timestamp, 0),
		})
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM watchdog"); err != nil {
		return 0, fmt.Errorf("count watchdog records: %w", err)
	}
	return n, nil
}

// Close closes the database and releases the lock file handle.
func (s *Store) Close() error {
	var err error
	if s.lock != nil {
		err = s.lock.Close()
	}
	return multierr.Append(err, s.db.Close())
}

// encodeVariables serializes variables as JSON. Values that cannot be
// encoded are stored as their text.
func encodeVariables(vars core.Context) (string, error) {
	if len(vars) == 0 {
		return "{}", nil
	}
	plain := make(map[string]any, len(vars))
	for k, v := range vars {
		switch val := v.(type) {
		case error:
			plain[k] = val.Error()
		default:
			if _, err := json.Marshal(val); err != nil {
				plain[k] = valueText(val)
				continue
			}
			plain[k] = val
		}
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("encode watchdog variables: %w", err)
	}
	return string(data), nil
}
