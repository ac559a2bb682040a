package board

import "fmt"

const (
	DefaultGomokuSize = 15
	MinGomokuSize     = 5
	MaxGomokuSize     = 19
	GomokuLine        = 5
)

// Gomoku is a square free-placement grid; five or more in a row wins.
type Gomoku struct {
	grid
	stones int
}

// NewGomoku returns an empty size×size board.
func NewGomoku(size int) (*Gomoku, error) {
	if size < MinGomokuSize || size > MaxGomokuSize {
		return nil, fmt.Errorf("%w: %d, want %d..%d", ErrInvalidSize, size, MinGomokuSize, MaxGomokuSize)
	}
	return &Gomoku{grid: newGrid(size, size)}, nil
}

func (b *Gomoku) Size() int   { return b.rows }
func (b *Gomoku) Stones() int { return b.stones }

// At returns the piece in c, or Empty when c is off the board.
func (b *Gomoku) At(c Cell) Piece {
	if !b.inBounds(c) {
		return Empty
	}
	return b.at(c)
}

// Place puts p on an empty cell.
func (b *Gomoku) Place(c Cell, p Piece) error {
	if err := checkPiece(p); err != nil {
		return err
	}
	if !b.inBounds(c) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, c.Row, c.Col)
	}
	if b.at(c) != Empty {
		return fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, c.Row, c.Col)
	}
	b.set(c, p)
	b.stones++
	return nil
}

// ValidMoves lists every empty cell in row-major order.
func (b *Gomoku) ValidMoves() []Cell {
	moves := make([]Cell, 0, len(b.cells)-b.stones)
	for i, p := range b.cells {
		if p == Empty {
			moves = append(moves, Cell{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return moves
}

// Candidates lists the empty cells within radius (king moves) of any stone,
// in row-major order. An empty board yields just the centre cell.
func (b *Gomoku) Candidates(radius int) []Cell {
	if b.stones == 0 {
		mid := b.rows / 2
		return []Cell{{Row: mid, Col: mid}}
	}
	var moves []Cell
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if b.at(cell) == Empty && b.near(cell, radius) {
				moves = append(moves, cell)
			}
		}
	}
	return moves
}

func (b *Gomoku) near(c Cell, radius int) bool {
	for r := max(0, c.Row-radius); r <= min(b.rows-1, c.Row+radius); r++ {
		for col := max(0, c.Col-radius); col <= min(b.cols-1, c.Col+radius); col++ {
			if b.at(Cell{Row: r, Col: col}) != Empty {
				return true
			}
		}
	}
	return false
}

// Windows returns every line of five on the board.
func (b *Gomoku) Windows() [][]Cell { return Windows(b.rows, b.cols, GomokuLine) }

// Status reports a five-in-a-row winner, or a draw on a full board.
func (b *Gomoku) Status() Status {
	if w, line := b.winner(b.Windows()); w != Empty {
		return Status{Over: true, Winner: w, Line: line}
	}
	return Status{Over: b.stones == len(b.cells)}
}

// Copy returns an independent duplicate.
func (b *Gomoku) Copy() *Gomoku {
	return &Gomoku{grid: b.clone(), stones: b.stones}
}
