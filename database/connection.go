package database

import (
	"database/sql"
	"fmt"
	"time"

	"Katta/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store wraps a sql.DB together with the dialect it speaks. Every query goes
// through the store so placeholder translation happens in exactly one place.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// NewStore wraps an already-open connection. Used by Connect and by tests.
func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Connect opens the configured backend: Postgres when DATABASE_URL is set,
// otherwise the embedded SQLite file. A failed ping is fatal to startup.
func Connect(cfg *config.Config) (*Store, error) {
	dialect := SQLite
	dsn := cfg.SQLitePath
	if cfg.DatabaseURL != "" {
		dialect = Postgres
		dsn = cfg.DatabaseURL
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if dialect == Postgres {
		// Configure connection pool limits to prevent "too many clients" errors from PostgreSQL
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// Single writer keeps the file backend out of SQLITE_BUSY territory.
		db.SetMaxOpenConns(1)
	}

	return NewStore(db, dialect), nil
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Exec runs a statement written with ?-placeholders against the backend.
func (s *Store) Exec(query string, args ...any) (sql.Result, error) {
	return s.db.Exec(s.dialect.Rebind(query), args...)
}

// Query runs a ?-placeholder query and returns the row set.
func (s *Store) Query(query string, args ...any) (*sql.Rows, error) {
	return s.db.Query(s.dialect.Rebind(query), args...)
}

// QueryRow runs a ?-placeholder query expected to return at most one row.
func (s *Store) QueryRow(query string, args ...any) *sql.Row {
	return s.db.QueryRow(s.dialect.Rebind(query), args...)
}

// InsertReturningID executes an INSERT and returns the assigned id. Postgres
// has no LastInsertId, so the statement gets a RETURNING clause there.
func (s *Store) InsertReturningID(query string, args ...any) (int64, error) {
	if s.dialect == Postgres {
		var id int64
		err := s.db.QueryRow(s.dialect.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
