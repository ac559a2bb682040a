// Package gametree picks moves for two-player grid games with minimax,
// alpha-beta pruning and iterative deepening.
//
// The engine is generic over the move type so the same search drives
// Connect 4 (a column) and Gomoku (a cell). Positions are immutable from
// the engine's point of view: Play always returns a new position.
package gametree

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/robalobadob/puzzle-solver/internal/board"
)

// WinScore is the score of a won position; a loss scores -WinScore.
const WinScore = 1_000_000

var (
	ErrNoValidMoves = errors.New("board has no valid moves")
	ErrInvalidDepth = errors.New("invalid search depth")
)

// Position is a game state the engine can search.
type Position[M any] interface {
	// Moves lists the moves to explore. The engine shuffles the slice in place.
	Moves() []M
	// Play returns the position after p makes move m, leaving the receiver untouched.
	Play(m M, p board.Piece) (Position[M], error)
	Status() board.Status
	// Evaluate statically scores a non-terminal position for ai.
	Evaluate(ai board.Piece) int
}

// Result is the outcome of a search.
type Result[M any] struct {
	Move  M
	Score int
	Depth int // deepest completed iteration
}

// Engine holds search options and the random source used to shuffle moves.
// It is safe for concurrent use.
type Engine struct {
	mu    sync.Mutex
	rng   *rand.Rand
	prune bool
}

type Option func(*Engine)

// WithSeed fixes the shuffle seed so searches are reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithoutPruning disables alpha-beta cutoffs and searches the full tree.
func WithoutPruning() Option {
	return func(e *Engine) { e.prune = false }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{prune: true}
	for _, o := range opts {
		o(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return e
}

// searchRand derives a private source for one search, so concurrent
// searches never share generator state.
func (e *Engine) searchRand() *rand.Rand {
	e.mu.Lock()
	seed := e.rng.Uint64()
	e.mu.Unlock()
	return rand.New(rand.NewSource(seed))
}

// BestMove searches pos for ai at depth limits 1..maxDepth and returns the
// move from the last completed depth. Deepening stops early at the first
// depth that proves a win, which prefers the quickest forced win.
func BestMove[M any](e *Engine, pos Position[M], ai board.Piece, maxDepth int) (Result[M], error) {
	var res Result[M]
	if maxDepth < 1 {
		return res, fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}
	if st := pos.Status(); st.Over {
		return res, fmt.Errorf("%w: game is already over", ErrNoValidMoves)
	}
	if len(pos.Moves()) == 0 {
		return res, ErrNoValidMoves
	}

	s := &search[M]{ai: ai, rng: e.searchRand(), prune: e.prune}
	for depth := 1; depth <= maxDepth; depth++ {
		move, score, err := s.minimax(pos, 0, true, math.MinInt, math.MaxInt, depth)
		if err != nil {
			return res, err
		}
		res = Result[M]{Move: move, Score: score, Depth: depth}
		if score == WinScore {
			break
		}
	}
	return res, nil
}

type search[M any] struct {
	ai    board.Piece
	rng   *rand.Rand
	prune bool
}

// minimax returns the best move at pos and its score for s.ai. The AI
// maximizes, its opponent minimizes.
func (s *search[M]) minimax(pos Position[M], depth int, maximizing bool, alpha, beta, limit int) (M, int, error) {
	var best M
	if st := pos.Status(); st.Over {
		switch st.Winner {
		case board.Empty:
			return best, 0, nil
		case s.ai:
			return best, WinScore, nil
		default:
			return best, -WinScore, nil
		}
	}
	moves := pos.Moves()
	if depth == limit || len(moves) == 0 {
		return best, pos.Evaluate(s.ai), nil
	}
	s.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	piece, score := s.ai, math.MinInt
	if !maximizing {
		piece, score = s.ai.Opponent(), math.MaxInt
	}
	best = moves[0]
	for _, m := range moves {
		next, err := pos.Play(m, piece)
		if err != nil {
			return best, 0, err
		}
		_, v, err := s.minimax(next, depth+1, !maximizing, alpha, beta, limit)
		if err != nil {
			return best, 0, err
		}
		if maximizing {
			if v > score {
				score, best = v, m
			}
			alpha = max(alpha, score)
		} else {
			if v < score {
				score, best = v, m
			}
			beta = min(beta, score)
		}
		if s.prune && alpha >= beta {
			break
		}
	}
	return best, score, nil
}
