// internal/store/sql.go
//
// SQLite-backed Store plus the migration runner for its schema.
//
// Notes:
//   - Timestamps are stored as fixed-width UTC text so that ORDER BY and
//     MAX() on created_at follow chronological order.
//   - Migrations are applied in lexical file order and recorded in
//     _migrations, so running them again is a no-op.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

type sqlStore struct{ db *sql.DB }

// NewSQLStore wraps an open database whose schema is already migrated.
func NewSQLStore(db *sql.DB) Store { return &sqlStore{db: db} }

func (s *sqlStore) Record(ctx context.Context, sv Solve) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO solves (id, puzzle, input_digest, results, duration_ms, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		sv.ID, sv.Puzzle, sv.InputDigest, sv.Results, sv.DurationMs, sv.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

func (s *sqlStore) Recent(ctx context.Context, limit int) ([]Solve, error) {
	limit = clampLimit(limit)
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, puzzle, input_digest, results, duration_ms, created_at
        FROM solves
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Solve, 0, limit)
	for rows.Next() {
		var (
			sv      Solve
			created string
		)
		if err := rows.Scan(&sv.ID, &sv.Puzzle, &sv.InputDigest, &sv.Results, &sv.DurationMs, &created); err != nil {
			return nil, err
		}
		if sv.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("solve %s: created_at: %w", sv.ID, err)
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

func (s *sqlStore) Summary(ctx context.Context) ([]PuzzleSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT puzzle, COUNT(1), AVG(duration_ms), MAX(created_at)
        FROM solves
        GROUP BY puzzle
        ORDER BY puzzle ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PuzzleSummary{}
	for rows.Next() {
		var (
			ps   PuzzleSummary
			last string
		)
		if err := rows.Scan(&ps.Puzzle, &ps.Solves, &ps.AvgDurationMs, &last); err != nil {
			return nil, err
		}
		if ps.LastSolvedAt, err = time.Parse(timeLayout, last); err != nil {
			return nil, fmt.Errorf("summary %s: last created_at: %w", ps.Puzzle, err)
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}

// Migrate applies every *.sql file at the root of migrations that has not
// been recorded yet. Scripts that manage their own transaction (BEGIN
// TRANSACTION, or turning foreign keys off) run as-is; the rest run inside
// one transaction each.
func Migrate(ctx context.Context, db *sql.DB, migrations fs.FS) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(migrations, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if err := apply(ctx, db, f, string(body)); err != nil {
			return err
		}
	}
	return nil
}

func apply(ctx context.Context, db *sql.DB, name, script string) error {
	upper := strings.ToUpper(script)
	selfManaged := strings.Contains(upper, "BEGIN TRANSACTION") ||
		strings.Contains(upper, "PRAGMA FOREIGN_KEYS=OFF") ||
		strings.Contains(upper, "PRAGMA FOREIGN_KEYS = OFF")

	if selfManaged {
		if _, err := db.ExecContext(ctx, script); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
			return fmt.Errorf("record %s: %w", name, err)
		}
		log.Info().Str("migration", name).Msg("applied (self-managed)")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, script); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}
	log.Info().Str("migration", name).Msg("applied")
	return nil
}
