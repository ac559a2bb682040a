// internal/store/store.go
//
// Solve history: one row per successful solver request.
// Responsibilities:
//   - Define the Store interface shared by the memory and SQL backends.
//   - Build Solve records with a random ID and a digest of the request input,
//     so repeated puzzles can be spotted without keeping the input itself.

package store

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// DefaultRecentLimit is used when a caller asks for a non-positive limit.
const DefaultRecentLimit = 50

// MaxRecentLimit caps how many rows Recent returns.
const MaxRecentLimit = 500

// Solve is one recorded solver call.
type Solve struct {
	ID          string    `json:"id"`
	Puzzle      string    `json:"puzzle"`
	InputDigest string    `json:"input_digest"`
	Results     int       `json:"results"`
	DurationMs  int64     `json:"duration_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// PuzzleSummary aggregates the history of one puzzle kind.
type PuzzleSummary struct {
	Puzzle        string    `json:"puzzle"`
	Solves        int       `json:"solves"`
	AvgDurationMs float64   `json:"avg_duration_ms"`
	LastSolvedAt  time.Time `json:"last_solved_at"`
}

// Store persists solve history.
// Implementations must be safe for concurrent use.
type Store interface {
	// Record appends one solve.
	Record(ctx context.Context, s Solve) error

	// Recent returns the newest solves first, at most limit of them.
	Recent(ctx context.Context, limit int) ([]Solve, error)

	// Summary returns per-puzzle aggregates ordered by puzzle name.
	Summary(ctx context.Context) ([]PuzzleSummary, error)
}

// NewSolve stamps a record for a finished solve.
func NewSolve(puzzle string, input []byte, results int, elapsed time.Duration) Solve {
	return Solve{
		ID:          uuid.NewString(),
		Puzzle:      puzzle,
		InputDigest: Digest(input),
		Results:     results,
		DurationMs:  elapsed.Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	}
}

// Digest is the hex BLAKE2b-256 of input.
func Digest(input []byte) string {
	sum := blake2b.Sum256(input)
	return hex.EncodeToString(sum[:])
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	}
	return limit
}
