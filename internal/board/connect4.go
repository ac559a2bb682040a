package board

import "fmt"

const (
	Connect4Rows = 6
	Connect4Cols = 7
	Connect4Line = 4
)

// Connect4 is a 6×7 gravity grid. Row 0 is the bottom row.
type Connect4 struct {
	grid
	heights [Connect4Cols]int
}

// NewConnect4 returns an empty board.
func NewConnect4() *Connect4 {
	return &Connect4{grid: newGrid(Connect4Rows, Connect4Cols)}
}

func (b *Connect4) Rows() int { return b.rows }
func (b *Connect4) Cols() int { return b.cols }

// At returns the piece in c, or Empty when c is off the board.
func (b *Connect4) At(c Cell) Piece {
	if !b.inBounds(c) {
		return Empty
	}
	return b.at(c)
}

// Place drops p into col and returns the row it lands on.
func (b *Connect4) Place(col int, p Piece) (int, error) {
	if err := checkPiece(p); err != nil {
		return 0, err
	}
	if col < 0 || col >= b.cols {
		return 0, fmt.Errorf("%w: column %d", ErrOutOfBounds, col)
	}
	row := b.heights[col]
	if row >= b.rows {
		return 0, fmt.Errorf("%w: column %d", ErrColumnFull, col)
	}
	b.set(Cell{Row: row, Col: col}, p)
	b.heights[col]++
	return row, nil
}

// Put writes p directly at c without gravity. Used to rebuild a position
// from piece lists; callers are responsible for checking that the result
// is reachable (see Floating).
func (b *Connect4) Put(c Cell, p Piece) error {
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
	if c.Row+1 > b.heights[c.Col] {
		b.heights[c.Col] = c.Row + 1
	}
	return nil
}

// Floating returns the occupied cells that have an empty cell below them.
func (b *Connect4) Floating() []Cell {
	var out []Cell
	for col := 0; col < b.cols; col++ {
		for row := 1; row < b.heights[col]; row++ {
			c := Cell{Row: row, Col: col}
			if b.at(c) != Empty && b.at(Cell{Row: row - 1, Col: col}) == Empty {
				out = append(out, c)
			}
		}
	}
	return out
}

// ValidMoves lists the columns that still have room, left to right.
func (b *Connect4) ValidMoves() []int {
	moves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.heights[col] < b.rows {
			moves = append(moves, col)
		}
	}
	return moves
}

// Windows returns every line of four on the board.
func (b *Connect4) Windows() [][]Cell { return Windows(b.rows, b.cols, Connect4Line) }

// Status reports a four-in-a-row winner, or a draw once every column is full.
func (b *Connect4) Status() Status {
	if w, line := b.winner(b.Windows()); w != Empty {
		return Status{Over: true, Winner: w, Line: line}
	}
	return Status{Over: len(b.ValidMoves()) == 0}
}

// Copy returns an independent duplicate.
func (b *Connect4) Copy() *Connect4 {
	return &Connect4{grid: b.clone(), heights: b.heights}
}
