package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/puzzle-solver/assets"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := assets.Migrations()
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, migrations))
	return db
}

func TestNewSolve(t *testing.T) {
	a := NewSolve("anagrams", []byte(`{"letters":["a"]}`), 3, 1500*time.Millisecond)
	b := NewSolve("anagrams", []byte(`{"letters":["a"]}`), 3, time.Millisecond)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, a.InputDigest, b.InputDigest)
	require.Len(t, a.InputDigest, 64)
	require.Equal(t, int64(1500), a.DurationMs)
	require.NotEqual(t, Digest([]byte("x")), Digest([]byte("y")))
}

func TestStores(t *testing.T) {
	backends := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore(0) },
		"sqlite": func(t *testing.T) Store { return NewSQLStore(openTestDB(t)) },
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			solves := []Solve{
				{ID: "1", Puzzle: "word_hunt", InputDigest: "d1", Results: 10, DurationMs: 20, CreatedAt: base},
				{ID: "2", Puzzle: "anagrams", InputDigest: "d2", Results: 4, DurationMs: 5, CreatedAt: base.Add(time.Second)},
				{ID: "3", Puzzle: "word_hunt", InputDigest: "d3", Results: 12, DurationMs: 40, CreatedAt: base.Add(2 * time.Second)},
			}
			for _, sv := range solves {
				require.NoError(t, s.Record(ctx, sv))
			}

			recent, err := s.Recent(ctx, 2)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			require.Equal(t, "3", recent[0].ID)
			require.Equal(t, "2", recent[1].ID)
			require.True(t, solves[2].CreatedAt.Equal(recent[0].CreatedAt))

			all, err := s.Recent(ctx, 0)
			require.NoError(t, err)
			require.Len(t, all, 3)

			sum, err := s.Summary(ctx)
			require.NoError(t, err)
			require.Len(t, sum, 2)
			require.Equal(t, "anagrams", sum[0].Puzzle)
			require.Equal(t, 1, sum[0].Solves)
			require.Equal(t, "word_hunt", sum[1].Puzzle)
			require.Equal(t, 2, sum[1].Solves)
			require.InDelta(t, 30.0, sum[1].AvgDurationMs, 0.001)
			require.True(t, base.Add(2*time.Second).Equal(sum[1].LastSolvedAt))
		})
	}
}

func TestMemoryCapacity(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Record(ctx, Solve{ID: id, Puzzle: "p"}))
	}
	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "c", got[0].ID)
	require.Equal(t, "b", got[1].ID)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	migrations, err := assets.Migrations()
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, migrations))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestMigrateScripts(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	scripts := fstest.MapFS{
		"002_tags.sql": {Data: []byte(`
BEGIN TRANSACTION;
CREATE TABLE solve_tags (solve_id TEXT NOT NULL, tag TEXT NOT NULL);
INSERT INTO solve_tags (solve_id, tag) VALUES ('seed', 'first');
COMMIT;
`)},
		"003_tag_index.sql": {Data: []byte(`CREATE INDEX solve_tags_tag ON solve_tags(tag);`)},
		"004_broken.sql":    {Data: []byte(`CREATE TABLE nope (;`)},
		"notes.txt":         {Data: []byte(`not a migration`)},
	}

	err := Migrate(ctx, db, scripts)
	require.ErrorContains(t, err, "004_broken.sql")

	t.Run("self-managed script ran as written", func(t *testing.T) {
		var tag string
		require.NoError(t, db.QueryRow(`SELECT tag FROM solve_tags WHERE solve_id = 'seed'`).Scan(&tag))
		require.Equal(t, "first", tag)
	})

	t.Run("applied scripts are recorded, the failed one is not", func(t *testing.T) {
		rows, err := db.Query(`SELECT name FROM _migrations ORDER BY name`)
		require.NoError(t, err)
		defer rows.Close()
		var names []string
		for rows.Next() {
			var n string
			require.NoError(t, rows.Scan(&n))
			names = append(names, n)
		}
		require.NoError(t, rows.Err())
		require.Equal(t, []string{"001_solves.sql", "002_tags.sql", "003_tag_index.sql"}, names)
	})

	t.Run("rerun skips applied scripts", func(t *testing.T) {
		delete(scripts, "004_broken.sql")
		require.NoError(t, Migrate(ctx, db, scripts))
	})
}
