package db

import (
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Open initializes the database connection pool for the SQLite database at
// dbPath and returns a pointer to the sqlx.DB instance.
func Open(dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	return pool, nil
}

// Initialize verifies the schema the service depends on. It is idempotent and
// must complete before the first request is served.
func Initialize(pool *sqlx.DB) error {
	if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create users table if it doesn't exist
	userSchema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		email TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		password TEXT NOT NULL,
		avatar TEXT NOT NULL,
		token TEXT NOT NULL
	);`

	if _, err := pool.Exec(userSchema); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	return nil
}
