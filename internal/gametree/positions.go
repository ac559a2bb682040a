package gametree

import "github.com/robalobadob/puzzle-solver/internal/board"

// gomokuReach is how far from an existing stone Gomoku moves are searched.
const gomokuReach = 2

// Connect4Position adapts a Connect 4 board; moves are columns.
type Connect4Position struct {
	Board *board.Connect4
}

func (p Connect4Position) Moves() []int         { return p.Board.ValidMoves() }
func (p Connect4Position) Status() board.Status { return p.Board.Status() }

func (p Connect4Position) Play(col int, piece board.Piece) (Position[int], error) {
	next := p.Board.Copy()
	if _, err := next.Place(col, piece); err != nil {
		return nil, err
	}
	return Connect4Position{Board: next}, nil
}

// Evaluate scores every line of four plus a bonus per own piece in the
// centre column.
func (p Connect4Position) Evaluate(ai board.Piece) int {
	score := scoreWindows(p.Board.At, p.Board.Windows(), ai)
	mid := p.Board.Cols() / 2
	for row := 0; row < p.Board.Rows(); row++ {
		if p.Board.At(board.Cell{Row: row, Col: mid}) == ai {
			score += centerBonus
		}
	}
	return score
}

// GomokuPosition adapts a Gomoku board; moves are cells near existing stones.
type GomokuPosition struct {
	Board *board.Gomoku
}

func (p GomokuPosition) Moves() []board.Cell  { return p.Board.Candidates(gomokuReach) }
func (p GomokuPosition) Status() board.Status { return p.Board.Status() }

func (p GomokuPosition) Play(c board.Cell, piece board.Piece) (Position[board.Cell], error) {
	next := p.Board.Copy()
	if err := next.Place(c, piece); err != nil {
		return nil, err
	}
	return GomokuPosition{Board: next}, nil
}

// Evaluate scores every line of five plus a bonus per own stone within two
// cells of the centre.
func (p GomokuPosition) Evaluate(ai board.Piece) int {
	score := scoreWindows(p.Board.At, p.Board.Windows(), ai)
	mid := p.Board.Size() / 2
	for r := mid - 2; r <= mid+2; r++ {
		for c := mid - 2; c <= mid+2; c++ {
			if p.Board.At(board.Cell{Row: r, Col: c}) == ai {
				score += centerBonus
			}
		}
	}
	return score
}
