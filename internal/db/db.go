package db

import (
	"fmt"
	"log"
	"sync"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

var (
	Once sync.Once

	DBConn *sqlx.DB
)

// Connect opens a SQLite database at the given path and returns the pool.
// Callers that need a throwaway database (tests, the play client cache)
// use this directly; the server goes through DBConnect.
func Connect(dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	return pool, nil
}

// DBConnect returns the process-wide database pool, opening it on first use.
func DBConnect(dbPath string) (*sqlx.DB, error) {
	var openErr error
	Once.Do(func() {
		pool, err := Connect(dbPath)
		if err != nil {
			openErr = err
			return
		}
		log.Printf("Connected to database at %s", dbPath)
		DBConn = pool
	})
	if openErr != nil {
		return nil, openErr
	}
	return DBConn, nil
}

// InitializeSchema enables foreign keys and creates the tables used by the
// credential store and the game store. Games are stored document-style:
// the category tree is one JSON column, written atomically per row.
func InitializeSchema(DB *sqlx.DB) error {
	if _, err := DB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	userSchema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := DB.Exec(userSchema); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	gameSchema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		categories TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`

	if _, err := DB.Exec(gameSchema); err != nil {
		return fmt.Errorf("failed to create games table: %w", err)
	}

	log.Println("DB connection initialized and schema verified.")

	return nil
}

// InitializePlayStateSchema creates the key-value table backing the local
// play-state cache. Kept separate from the server schema: the play client
// owns its own database file.
func InitializePlayStateSchema(DB *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS play_state (
		cache_key TEXT PRIMARY KEY,
		snapshot TEXT NOT NULL
	);`

	if _, err := DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create play_state table: %w", err)
	}
	return nil
}
