// Package storage is the keyed persistence layer: four collections (users,
// user profiles, workouts, workout sessions) over database/sql. The default
// backend is an in-memory SQLite database, which retains data for the process
// lifetime only; a postgres backend exists for multi-instance deployments.
package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Supported backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Store wraps a sql.DB and provides repository methods per collection.
type Store struct {
	db      *sql.DB
	backend string
}

// Open connects to the configured backend. For SQLite an empty dsn means an
// in-memory database shared across the pool (a single connection keeps every
// query on the same in-memory instance).
func Open(backend, dsn string) (*Store, error) {
	switch backend {
	case BackendSQLite, "":
		backend = BackendSQLite
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		db.SetMaxOpenConns(1)
		return &Store{db: db, backend: backend}, nil
	case BackendPostgres:
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("pinging postgres: %w", err)
		}
		return &Store{db: db, backend: backend}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate applies all pending migrations from the embedded source against
// the open connection.
func (s *Store) Migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	var driver database.Driver
	switch s.backend {
	case BackendPostgres:
		driver, err = migratepg.WithInstance(s.db, &migratepg.Config{})
	default:
		driver, err = migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	}
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, s.backend, driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// newID generates an opaque record identifier.
func newID() string {
	return uuid.NewString()
}

// Timestamps are stored as RFC3339 UTC text so they sort lexically on both
// backends.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
