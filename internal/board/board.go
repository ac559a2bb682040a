// internal/board/board.go
//
// Shared vocabulary for the two-player grids.
//
// Notes:
//   - Boards are plain values with no internal locking. Search code never
//     mutates a board it did not create; it calls Copy and plays on the copy.
//   - Line detection runs over precomputed "windows": every run of N
//     consecutive cells along a row, a column or either diagonal.

package board

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrColumnFull   = errors.New("column is full")
	ErrCellOccupied = errors.New("cell is occupied")
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrInvalidPiece = errors.New("invalid piece")
	ErrInvalidSize  = errors.New("invalid board size")
)

// Piece is the content of one cell.
type Piece uint8

const (
	Empty Piece = iota
	Red
	Yellow
	Black
	White
)

// Opponent returns the piece playing against p in the same game.
func (p Piece) Opponent() Piece {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "empty"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("piece(%d)", uint8(p))
}

// Cell addresses a board square. Row 0 is the bottom row on Connect 4.
type Cell struct {
	Row int
	Col int
}

// Status is the result of a terminal check.
type Status struct {
	Over   bool
	Winner Piece  // Empty for a draw or a game still in progress
	Line   []Cell // winning cells in line order, nil without a winner
}

type windowKey struct{ rows, cols, n int }

var windowCache sync.Map // windowKey -> [][]Cell

// Windows lists every run of n consecutive cells on a rows×cols grid:
// horizontal runs first, then vertical, then diagonals rising to the right,
// then diagonals falling to the right. The result is shared and must not
// be modified.
func Windows(rows, cols, n int) [][]Cell {
	key := windowKey{rows, cols, n}
	if w, ok := windowCache.Load(key); ok {
		return w.([][]Cell)
	}
	var out [][]Cell
	run := func(r, c, dr, dc int) {
		w := make([]Cell, n)
		for i := 0; i < n; i++ {
			w[i] = Cell{Row: r + i*dr, Col: c + i*dc}
		}
		out = append(out, w)
	}
	for c := 0; c+n <= cols; c++ {
		for r := 0; r < rows; r++ {
			run(r, c, 0, 1)
		}
	}
	for c := 0; c < cols; c++ {
		for r := 0; r+n <= rows; r++ {
			run(r, c, 1, 0)
		}
	}
	for c := 0; c+n <= cols; c++ {
		for r := 0; r+n <= rows; r++ {
			run(r, c, 1, 1)
		}
	}
	for c := 0; c+n <= cols; c++ {
		for r := n - 1; r < rows; r++ {
			run(r, c, -1, 1)
		}
	}
	w, _ := windowCache.LoadOrStore(key, out)
	return w.([][]Cell)
}

// grid is the row-major cell store both games build on.
type grid struct {
	rows, cols int
	cells      []Piece
}

func newGrid(rows, cols int) grid {
	return grid{rows: rows, cols: cols, cells: make([]Piece, rows*cols)}
}

func (g grid) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

func (g grid) at(c Cell) Piece { return g.cells[c.Row*g.cols+c.Col] }

func (g grid) set(c Cell, p Piece) { g.cells[c.Row*g.cols+c.Col] = p }

func (g grid) clone() grid {
	return grid{rows: g.rows, cols: g.cols, cells: append([]Piece(nil), g.cells...)}
}

// winner returns the first window fully held by one piece.
func (g grid) winner(windows [][]Cell) (Piece, []Cell) {
	for _, w := range windows {
		first := g.at(w[0])
		if first == Empty {
			continue
		}
		won := true
		for _, c := range w[1:] {
			if g.at(c) != first {
				won = false
				break
			}
		}
		if won {
			return first, append([]Cell(nil), w...)
		}
	}
	return Empty, nil
}

// Count tallies the pieces in one window.
func Count(at func(Cell) Piece, window []Cell, p Piece) (mine, theirs, empty int) {
	opp := p.Opponent()
	for _, c := range window {
		switch at(c) {
		case p:
			mine++
		case opp:
			theirs++
		case Empty:
			empty++
		}
	}
	return mine, theirs, empty
}

func checkPiece(p Piece) error {
	if p == Empty || p > White {
		return fmt.Errorf("%w: %s", ErrInvalidPiece, p)
	}
	return nil
}
