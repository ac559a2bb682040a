// internal/game/engine.go
//
// Stateless Connect 4 and Gomoku solving over client piece lists.
// Responsibilities:
//   - Rebuild a board from player/AI location lists, rejecting positions
//     that cannot occur (off-board, overlapping, floating Connect 4 pieces).
//   - Ask the game-tree engine for the AI's move and report whether it wins.
//   - Answer game-over checks without searching.
//
// Notes:
//   - Every call builds its own board; nothing is kept between requests.

package game

import (
	"fmt"

	"github.com/robalobadob/puzzle-solver/internal/board"
	"github.com/robalobadob/puzzle-solver/internal/gametree"
)

// Solver plays the AI side of both games.
type Solver struct {
	engine *gametree.Engine
}

// NewSolver wraps an engine. A nil engine gets a time-seeded default.
func NewSolver(e *gametree.Engine) *Solver {
	if e == nil {
		e = gametree.NewEngine()
	}
	return &Solver{engine: e}
}

// Connect4Move picks the AI's column for the position and plays it to see
// whether it wins.
func (s *Solver) Connect4Move(player, ai []Location, depth int) (Connect4Move, error) {
	depth, err := searchDepth(depth, DefaultConnect4Depth, MaxConnect4Depth)
	if err != nil {
		return Connect4Move{}, err
	}
	b, err := buildConnect4(player, ai)
	if err != nil {
		return Connect4Move{}, err
	}
	res, err := gametree.BestMove[int](s.engine, gametree.Connect4Position{Board: b}, AIConnect4, depth)
	if err != nil {
		return Connect4Move{}, err
	}
	if _, err := b.Place(res.Move, AIConnect4); err != nil {
		return Connect4Move{}, err
	}
	return Connect4Move{Column: res.Move, IsWin: b.Status().Winner == AIConnect4}, nil
}

// Connect4GameOver reports whether the position is finished.
func Connect4GameOver(player, ai []Location) (Outcome, error) {
	b, err := buildConnect4(player, ai)
	if err != nil {
		return Outcome{}, err
	}
	return outcomeOf(b.Status(), AIConnect4), nil
}

// GomokuMove picks the AI's cell on a size×size board (0 means the default
// size) and plays it to see whether it wins.
func (s *Solver) GomokuMove(player, ai []Location, size, depth int) (GomokuMove, error) {
	depth, err := searchDepth(depth, DefaultGomokuDepth, MaxGomokuDepth)
	if err != nil {
		return GomokuMove{}, err
	}
	b, err := buildGomoku(player, ai, size)
	if err != nil {
		return GomokuMove{}, err
	}
	res, err := gametree.BestMove[board.Cell](s.engine, gametree.GomokuPosition{Board: b}, AIGomoku, depth)
	if err != nil {
		return GomokuMove{}, err
	}
	if err := b.Place(res.Move, AIGomoku); err != nil {
		return GomokuMove{}, err
	}
	return GomokuMove{Row: res.Move.Row, Column: res.Move.Col, IsWin: b.Status().Winner == AIGomoku}, nil
}

// GomokuGameOver reports whether the position is finished.
func GomokuGameOver(player, ai []Location, size int) (Outcome, error) {
	b, err := buildGomoku(player, ai, size)
	if err != nil {
		return Outcome{}, err
	}
	return outcomeOf(b.Status(), AIGomoku), nil
}

func searchDepth(depth, def, limit int) (int, error) {
	switch {
	case depth == 0:
		return def, nil
	case depth < 0 || depth > limit:
		return 0, fmt.Errorf("%w: %d, want 1..%d", gametree.ErrInvalidDepth, depth, limit)
	}
	return depth, nil
}

func buildConnect4(player, ai []Location) (*board.Connect4, error) {
	b := board.NewConnect4()
	for _, side := range []struct {
		locs  []Location
		piece board.Piece
	}{{player, PlayerConnect4}, {ai, AIConnect4}} {
		for _, l := range side.locs {
			if err := b.Put(l.cell(), side.piece); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidLocations, err)
			}
		}
	}
	if floating := b.Floating(); len(floating) > 0 {
		c := floating[0]
		return nil, fmt.Errorf("%w: piece at (%d, %d) has nothing below it", ErrInvalidLocations, c.Row, c.Col)
	}
	return b, nil
}

func buildGomoku(player, ai []Location, size int) (*board.Gomoku, error) {
	if size == 0 {
		size = board.DefaultGomokuSize
	}
	b, err := board.NewGomoku(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLocations, err)
	}
	for _, side := range []struct {
		locs  []Location
		piece board.Piece
	}{{player, PlayerGomoku}, {ai, AIGomoku}} {
		for _, l := range side.locs {
			if err := b.Place(l.cell(), side.piece); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidLocations, err)
			}
		}
	}
	return b, nil
}
