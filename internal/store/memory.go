// internal/store/memory.go
//
// In-memory implementation of Store.
// Used when no HISTORY_DB is configured and in tests.
//
// Characteristics:
//   - Keeps at most `capacity` solves; the oldest are dropped first.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// DefaultMemoryCapacity bounds the in-memory history.
const DefaultMemoryCapacity = 1000

type memory struct {
	mu       sync.RWMutex // guards solves
	solves   []Solve      // oldest first
	capacity int
}

// NewMemoryStore constructs an in-memory Store holding up to capacity
// solves (DefaultMemoryCapacity when capacity <= 0).
func NewMemoryStore(capacity int) Store {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &memory{capacity: capacity}
}

func (m *memory) Record(ctx context.Context, s Solve) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.solves = append(m.solves, s)
	if over := len(m.solves) - m.capacity; over > 0 {
		m.solves = slices.Delete(m.solves, 0, over)
	}
	return nil
}

func (m *memory) Recent(ctx context.Context, limit int) ([]Solve, error) {
	limit = clampLimit(limit)
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Solve, 0, min(limit, len(m.solves)))
	for i := len(m.solves) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.solves[i])
	}
	return out, nil
}

func (m *memory) Summary(ctx context.Context) ([]PuzzleSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byPuzzle := map[string]*PuzzleSummary{}
	totals := map[string]int64{}
	for _, s := range m.solves {
		ps, ok := byPuzzle[s.Puzzle]
		if !ok {
			ps = &PuzzleSummary{Puzzle: s.Puzzle}
			byPuzzle[s.Puzzle] = ps
		}
		ps.Solves++
		totals[s.Puzzle] += s.DurationMs
		if s.CreatedAt.After(ps.LastSolvedAt) {
			ps.LastSolvedAt = s.CreatedAt
		}
	}

	out := make([]PuzzleSummary, 0, len(byPuzzle))
	for name, ps := range byPuzzle {
		ps.AvgDurationMs = float64(totals[name]) / float64(ps.Solves)
		out = append(out, *ps)
	}
	slices.SortFunc(out, func(a, b PuzzleSummary) int { return cmp.Compare(a.Puzzle, b.Puzzle) })
	return out, nil
}
