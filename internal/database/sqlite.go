package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3" // Import the sqlite3 driver.
)

// InitDB opens the SQLite session store and creates the schema.
// The default DSN is ":memory:", which scopes every session to the lifetime
// of the process.
func InitDB(dataSourceName string) (*sql.DB, error) {
	inMemory := dataSourceName == ":memory:" || strings.HasPrefix(dataSourceName, "file::memory:")

	if !inMemory {
		dir := filepath.Dir(dataSourceName)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if inMemory {
		// Every pooled connection to ":memory:" would otherwise get its own
		// empty database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if !inMemory {
		// WAL mode lets readers not block writers on file-backed stores.
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			slog.Warn("Failed to enable WAL mode for SQLite, continuing without it.", "error", err)
		}
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables executes the SQL statements to create the database schema.
func createTables(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			selected_model TEXT NOT NULL,
			document_context TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS turns (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL CHECK(role IN ('user', 'assistant')),
			content TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
		);
		CREATE INDEX IF NOT EXISTS idx_turns_session_id_seq ON turns(session_id, seq);
	`
	_, err := db.Exec(schema)
	return err
}
