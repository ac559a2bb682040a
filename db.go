// db.go
//
// Database helpers for the solver server.
// Responsibilities:
//   - Opening SQLite with safe defaults (WAL, busy timeout, foreign keys).
//   - Choosing the solve-history backend from HISTORY_DB.
//
// Note: migrations live in internal/store so tests can apply them too.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/puzzle-solver/assets"
	"github.com/robalobadob/puzzle-solver/internal/store"
)

// openDB opens (and creates if missing) a SQLite database file.
func openDB(dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/history.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// One writer at a time; WAL readers don't need more.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// openHistory returns the solve-history store. An empty dsn keeps history
// in memory; otherwise the SQLite file is opened and migrated. The returned
// close func is never nil.
func openHistory(ctx context.Context, dsn string, capacity int) (store.Store, func() error, error) {
	if dsn == "" {
		log.Info().Int("capacity", capacity).Msg("solve history in memory")
		return store.NewMemoryStore(capacity), func() error { return nil }, nil
	}

	db, err := openDB(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	migrations, err := assets.Migrations()
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if err := store.Migrate(ctx, db, migrations); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info().Str("db", dsn).Msg("solve history in sqlite")
	return store.NewSQLStore(db), db.Close, nil
}
