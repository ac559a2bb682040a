package gametree

import "github.com/robalobadob/puzzle-solver/internal/board"

const (
	nearWinScore   = 10
	openPairScore  = 5
	nearLossScore  = -8
	openThreatCost = -3
	centerBonus    = 2
)

// WindowScore scores one line of n cells holding mine of the player's
// pieces, theirs of the opponent's and empty free cells.
func WindowScore(mine, theirs, empty, n int) int {
	switch {
	case mine == n:
		return WinScore
	case mine == n-1 && empty == 1:
		return nearWinScore
	case mine == n-2 && empty == 2:
		return openPairScore
	case theirs == n-1 && empty == 1:
		return nearLossScore
	case theirs == n-2 && empty == 2:
		return openThreatCost
	}
	return 0
}

// scoreWindows sums WindowScore over every window.
func scoreWindows(at func(board.Cell) board.Piece, windows [][]board.Cell, p board.Piece) int {
	total := 0
	for _, w := range windows {
		mine, theirs, empty := board.Count(at, w, p)
		total += WindowScore(mine, theirs, empty, len(w))
	}
	return total
}
