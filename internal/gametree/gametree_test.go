package gametree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/puzzle-solver/internal/board"
)

func connect4(t *testing.T, red, yellow []board.Cell) Connect4Position {
	t.Helper()
	b := board.NewConnect4()
	for _, c := range red {
		require.NoError(t, b.Put(c, board.Red))
	}
	for _, c := range yellow {
		require.NoError(t, b.Put(c, board.Yellow))
	}
	require.Empty(t, b.Floating())
	return Connect4Position{Board: b}
}

func TestBestMoveConnect4(t *testing.T) {
	t.Run("takes an immediate win at depth one", func(t *testing.T) {
		pos := connect4(t,
			[]board.Cell{{Row: 0, Col: 6}, {Row: 1, Col: 6}, {Row: 2, Col: 6}},
			[]board.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 4}},
		)
		for seed := uint64(1); seed <= 5; seed++ {
			res, err := BestMove[int](NewEngine(WithSeed(seed)), pos, board.Red, 4)
			require.NoError(t, err)
			require.Equal(t, 6, res.Move)
			require.Equal(t, WinScore, res.Score)
			require.Equal(t, 1, res.Depth)
		}
	})

	t.Run("blocks the only losing threat whatever the shuffle", func(t *testing.T) {
		pos := connect4(t,
			[]board.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
			[]board.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
		)
		for seed := uint64(1); seed <= 8; seed++ {
			res, err := BestMove[int](NewEngine(WithSeed(seed)), pos, board.Red, 4)
			require.NoError(t, err)
			require.Equal(t, 3, res.Move, "seed %d", seed)
		}
	})

	t.Run("leaves the input board untouched", func(t *testing.T) {
		pos := connect4(t, []board.Cell{{Row: 0, Col: 3}}, []board.Cell{{Row: 0, Col: 2}})
		before := pos.Board.Copy()
		_, err := BestMove[int](NewEngine(WithSeed(7)), pos, board.Red, 3)
		require.NoError(t, err)
		require.Equal(t, before, pos.Board)
	})

	t.Run("same seed, same move", func(t *testing.T) {
		pos := connect4(t, nil, []board.Cell{{Row: 0, Col: 3}})
		a, err := BestMove[int](NewEngine(WithSeed(42)), pos, board.Red, 3)
		require.NoError(t, err)
		b, err := BestMove[int](NewEngine(WithSeed(42)), pos, board.Red, 3)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})
}

func TestPruningMatchesExhaustiveSearch(t *testing.T) {
	pos := connect4(t,
		[]board.Cell{{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 0, Col: 4}},
		[]board.Cell{{Row: 0, Col: 2}, {Row: 2, Col: 3}, {Row: 0, Col: 5}},
	)
	for depth := 1; depth <= 4; depth++ {
		pruned, err := BestMove[int](NewEngine(WithSeed(3)), pos, board.Red, depth)
		require.NoError(t, err)
		full, err := BestMove[int](NewEngine(WithSeed(11), WithoutPruning()), pos, board.Red, depth)
		require.NoError(t, err)
		require.Equal(t, full.Score, pruned.Score, "depth %d", depth)
		require.Equal(t, full.Depth, pruned.Depth)
	}
}

func TestBestMoveErrors(t *testing.T) {
	t.Run("full board", func(t *testing.T) {
		b := board.NewConnect4()
		pattern := []board.Piece{board.Red, board.Red, board.Yellow, board.Yellow, board.Red, board.Red}
		for col := 0; col < board.Connect4Cols; col++ {
			for row := 0; row < board.Connect4Rows; row++ {
				p := pattern[row]
				if col >= 3 && col < 6 {
					p = pattern[(row+1)%board.Connect4Rows]
				}
				if col%2 == 1 {
					p = p.Opponent()
				}
				_, err := b.Place(col, p)
				require.NoError(t, err)
			}
		}
		st := b.Status()
		require.True(t, st.Over)
		require.Equal(t, board.Empty, st.Winner, "board must be a draw, not a win")
		require.Empty(t, b.ValidMoves())

		_, err := BestMove[int](NewEngine(), Connect4Position{Board: b}, board.Red, 3)
		require.ErrorIs(t, err, ErrNoValidMoves)
	})

	t.Run("already won", func(t *testing.T) {
		pos := connect4(t, nil, []board.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}})
		_, err := BestMove[int](NewEngine(), pos, board.Red, 3)
		require.ErrorIs(t, err, ErrNoValidMoves)
	})

	t.Run("depth below one", func(t *testing.T) {
		_, err := BestMove[int](NewEngine(), connect4(t, nil, nil), board.Red, 0)
		require.ErrorIs(t, err, ErrInvalidDepth)
	})
}

func TestBestMoveGomoku(t *testing.T) {
	b, err := board.NewGomoku(15)
	require.NoError(t, err)
	for col := 3; col <= 6; col++ {
		require.NoError(t, b.Place(board.Cell{Row: 7, Col: col}, board.Black))
	}
	for _, c := range []board.Cell{{Row: 8, Col: 3}, {Row: 8, Col: 4}, {Row: 8, Col: 5}, {Row: 0, Col: 0}} {
		require.NoError(t, b.Place(c, board.White))
	}

	res, err := BestMove[board.Cell](NewEngine(WithSeed(5)), GomokuPosition{Board: b}, board.Black, 2)
	require.NoError(t, err)
	require.Contains(t, []board.Cell{{Row: 7, Col: 2}, {Row: 7, Col: 7}}, res.Move)
	require.Equal(t, WinScore, res.Score)
	require.Equal(t, 1, res.Depth)
}

func TestEvaluate(t *testing.T) {
	t.Run("connect 4 windows and centre bonus", func(t *testing.T) {
		empty := connect4(t, nil, nil)
		require.Equal(t, 0, empty.Evaluate(board.Red))

		centre := connect4(t, []board.Cell{{Row: 0, Col: 3}}, nil)
		require.Equal(t, 2, centre.Evaluate(board.Red))

		// three horizontal windows hold the pair with two empties
		pair := connect4(t, []board.Cell{{Row: 0, Col: 3}, {Row: 0, Col: 4}}, nil)
		require.Equal(t, 3*5+2, pair.Evaluate(board.Red))
		require.Equal(t, 3*-3, pair.Evaluate(board.Yellow))
	})

	t.Run("window scores", func(t *testing.T) {
		require.Equal(t, WinScore, WindowScore(4, 0, 0, 4))
		require.Equal(t, 10, WindowScore(3, 0, 1, 4))
		require.Equal(t, 5, WindowScore(2, 0, 2, 4))
		require.Equal(t, -8, WindowScore(0, 3, 1, 4))
		require.Equal(t, -3, WindowScore(0, 2, 2, 4))
		require.Equal(t, 0, WindowScore(2, 1, 1, 4))
		require.Equal(t, 10, WindowScore(4, 0, 1, 5))
		require.Equal(t, -8, WindowScore(0, 4, 1, 5))
	})

	t.Run("gomoku centre bonus", func(t *testing.T) {
		b, _ := board.NewGomoku(15)
		require.NoError(t, b.Place(board.Cell{Row: 7, Col: 7}, board.Black))
		require.Equal(t, 2, GomokuPosition{Board: b}.Evaluate(board.Black))
	})
}
