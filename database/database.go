package database

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // Import the SQLite3 driver
	"github.com/pkg/errors"
)

// Store wraps the sqlite handle holding the rules table and the deferred
// deletion queue. Every mutation is a self-contained statement; the driver's
// single-statement atomicity is the only consistency mechanism relied upon.
type Store struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

// Open initializes the database connection and ensures the schema exists.
// It takes the database path as input.
func Open(dbPath string) (*Store, error) {
	// Ensure the directory for the database file exists. The ":memory:"
	// path used by tests has no directory component.
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create database directory")
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	// sqlite has a single writer, and an in-memory database is scoped to
	// its connection; keep the pool at one connection for both reasons.
	db.SetMaxOpenConns(1)

	// Ping the database to verify the connection.
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	store := &Store{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	if err := store.createTables(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create tables")
	}

	log.Println("Successfully connected to the database at", dbPath)
	return store, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTables creates the rules table and the deletion queue if they don't
// exist. Uniqueness of (channel_id, user_id) is not left to the index alone:
// sqlite treats NULLs as distinct in unique indexes, so replace semantics
// for the global rule are enforced by delete-then-insert in ReplaceRule.
func (s *Store) createTables() error {
	queries := []string{`
    CREATE TABLE IF NOT EXISTS rules (
        channel_id TEXT NOT NULL,
        user_id TEXT,
        timeout_seconds INTEGER NOT NULL,
        notice TEXT,
        pattern TEXT
    );`, `
    CREATE INDEX IF NOT EXISTS idx_rules_channel ON rules(channel_id);`, `
    CREATE TABLE IF NOT EXISTS deletion_jobs (
        channel_id TEXT NOT NULL,
        message_id TEXT NOT NULL PRIMARY KEY,
        fire_at INTEGER NOT NULL,
        notice TEXT
    );`, `
    CREATE INDEX IF NOT EXISTS idx_deletion_jobs_fire_at ON deletion_jobs(fire_at);`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
