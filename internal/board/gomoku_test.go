package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGomoku(t *testing.T) {
	b, err := NewGomoku(DefaultGomokuSize)
	require.NoError(t, err)
	require.Equal(t, 15, b.Size())
	require.Len(t, b.ValidMoves(), 225)

	_, err = NewGomoku(4)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, err = NewGomoku(MaxGomokuSize + 1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestGomokuPlace(t *testing.T) {
	b, _ := NewGomoku(9)
	require.NoError(t, b.Place(Cell{Row: 4, Col: 4}, Black))
	require.ErrorIs(t, b.Place(Cell{Row: 4, Col: 4}, White), ErrCellOccupied)
	require.ErrorIs(t, b.Place(Cell{Row: 9, Col: 0}, White), ErrOutOfBounds)
	require.ErrorIs(t, b.Place(Cell{Row: 0, Col: -1}, White), ErrOutOfBounds)
	require.Equal(t, 1, b.Stones())
	require.Len(t, b.ValidMoves(), 80)
	require.NotContains(t, b.ValidMoves(), Cell{Row: 4, Col: 4})
}

func TestGomokuStatus(t *testing.T) {
	t.Run("five on a diagonal wins", func(t *testing.T) {
		b, _ := NewGomoku(15)
		var line []Cell
		for i := 0; i < 5; i++ {
			c := Cell{Row: 10 - i, Col: 2 + i}
			line = append(line, c)
			require.NoError(t, b.Place(c, White))
		}
		st := b.Status()
		require.True(t, st.Over)
		require.Equal(t, White, st.Winner)
		require.ElementsMatch(t, line, st.Line)
	})

	t.Run("four is not enough", func(t *testing.T) {
		b, _ := NewGomoku(15)
		for col := 0; col < 4; col++ {
			require.NoError(t, b.Place(Cell{Row: 7, Col: col}, Black))
		}
		require.False(t, b.Status().Over)
	})

	t.Run("six in a row still wins with five reported", func(t *testing.T) {
		b, _ := NewGomoku(15)
		for row := 0; row < 6; row++ {
			require.NoError(t, b.Place(Cell{Row: row, Col: 3}, Black))
		}
		st := b.Status()
		require.Equal(t, Black, st.Winner)
		require.Len(t, st.Line, GomokuLine)
	})
}

func TestGomokuCandidates(t *testing.T) {
	b, _ := NewGomoku(15)
	require.Equal(t, []Cell{{Row: 7, Col: 7}}, b.Candidates(2))

	require.NoError(t, b.Place(Cell{Row: 0, Col: 0}, Black))
	got := b.Candidates(2)
	// the 3×3 corner block minus the stone itself
	require.Len(t, got, 8)
	for _, c := range got {
		require.LessOrEqual(t, c.Row, 2)
		require.LessOrEqual(t, c.Col, 2)
	}

	require.NoError(t, b.Place(Cell{Row: 7, Col: 7}, White))
	require.Len(t, b.Candidates(1), 3+8)
}

func TestGomokuCopy(t *testing.T) {
	b, _ := NewGomoku(7)
	c := b.Copy()
	require.NoError(t, c.Place(Cell{Row: 1, Col: 1}, Black))
	require.Equal(t, Empty, b.At(Cell{Row: 1, Col: 1}))
	require.Equal(t, 0, b.Stones())
	require.Equal(t, 1, c.Stones())
}
