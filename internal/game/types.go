// internal/game/types.go
//
// Request-facing types for the two-player solvers.
// Defines:
//   - Location: a [row, col] pair as sent by clients.
//   - Connect4Move / GomokuMove: the AI's reply to a position.
//   - Outcome: result of a stateless game-over check.

package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/robalobadob/puzzle-solver/internal/board"
)

// ErrInvalidLocations is wrapped by every piece-list validation failure.
var ErrInvalidLocations = errors.New("invalid piece locations")

// Seat assignment is fixed: the AI always plays red in Connect 4 and black
// in Gomoku.
const (
	AIConnect4     = board.Red
	PlayerConnect4 = board.Yellow
	AIGomoku       = board.Black
	PlayerGomoku   = board.White
)

// Search depth bounds per game. Zero in a request means the default.
const (
	DefaultConnect4Depth = 6
	MaxConnect4Depth     = 8
	DefaultGomokuDepth   = 2
	MaxGomokuDepth       = 3
)

// Location is a [row, col] pair. Connect 4 counts rows from the bottom.
type Location [2]int

// UnmarshalJSON accepts exactly two integers. encoding/json would otherwise
// zero-fill a short array and drop extra elements.
func (l *Location) UnmarshalJSON(data []byte) error {
	var xs []int
	if err := json.Unmarshal(data, &xs); err != nil {
		return fmt.Errorf("%w: location %s: %w", ErrInvalidLocations, data, err)
	}
	if len(xs) != 2 {
		return fmt.Errorf("%w: location %s has %d coordinates, want [row, col]", ErrInvalidLocations, data, len(xs))
	}
	*l = Location{xs[0], xs[1]}
	return nil
}

func (l Location) cell() board.Cell { return board.Cell{Row: l[0], Col: l[1]} }

func locationsOf(cells []board.Cell) []Location {
	out := make([]Location, len(cells))
	for i, c := range cells {
		out[i] = Location{c.Row, c.Col}
	}
	return out
}

// Connect4Move is the column the AI drops into and whether that move wins.
type Connect4Move struct {
	Column int  `json:"column"`
	IsWin  bool `json:"is_win"`
}

// GomokuMove is the cell the AI plays and whether that move wins.
type GomokuMove struct {
	Row    int  `json:"row"`
	Column int  `json:"column"`
	IsWin  bool `json:"is_win"`
}

// Outcome reports whether a position is finished. GameOver is also true
// for a full board with no winner.
type Outcome struct {
	GameOver         bool       `json:"game_over"`
	AIWon            bool       `json:"ai_won"`
	WinningLocations []Location `json:"winning_locations"`
}

func outcomeOf(st board.Status, ai board.Piece) Outcome {
	out := Outcome{GameOver: st.Over, AIWon: st.Winner == ai, WinningLocations: []Location{}}
	if st.Winner != board.Empty {
		out.WinningLocations = locationsOf(st.Line)
	}
	return out
}
