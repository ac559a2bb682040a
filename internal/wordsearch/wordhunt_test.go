package wordsearch

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/puzzle-solver/internal/lexicon"
)

func split(s string) []string {
	return strings.Split(s, "")
}

func requireValidPath(t *testing.T, topo Topology, letters []string, sol HuntSolution) {
	t.Helper()
	var b strings.Builder
	seen := map[int]bool{}
	for i, p := range sol.Positions {
		require.False(t, seen[p], "word %q revisits cell %d", sol.Word, p)
		seen[p] = true
		b.WriteString(letters[p])
		if i > 0 {
			nbs := topo.Neighbors(sol.Positions[i-1])
			require.Contains(t, nbs[:], p, "word %q jumps from %d to %d", sol.Word, sol.Positions[i-1], p)
		}
	}
	require.Equal(t, sol.Word, b.String())
}

func TestWordHunt(t *testing.T) {
	dict := lexicon.Build([]string{"cat", "cats", "cot", "dog", "doc", "act", "oat", "taco", "coat", "cast", "to"})
	small, err := TopologyByName("4x4")
	require.NoError(t, err)
	// c a t s
	// x o x x
	// x x d x
	// x x x g
	board := split("catsxoxxxxdxxxxg")

	t.Run("finds words with their paths", func(t *testing.T) {
		got, err := WordHunt(dict, board, small, 0)
		require.NoError(t, err)
		require.Equal(t, []HuntSolution{
			{Word: "cats", Positions: []int{0, 1, 2, 3}},
			{Word: "coat", Positions: []int{0, 5, 1, 2}},
			{Word: "taco", Positions: []int{2, 1, 0, 5}},
			{Word: "cat", Positions: []int{0, 1, 2}},
			{Word: "cot", Positions: []int{0, 5, 2}},
			{Word: "doc", Positions: []int{10, 5, 0}},
			{Word: "oat", Positions: []int{5, 1, 2}},
		}, got)
		for _, s := range got {
			requireValidPath(t, small, board, s)
		}
	})

	t.Run("min length filters short words", func(t *testing.T) {
		got, err := WordHunt(dict, board, small, 4)
		require.NoError(t, err)
		words := HuntWords(got)
		require.Len(t, words, 3)
		require.Equal(t, []int{0, 5, 1, 2}, words["coat"])
	})

	t.Run("paths stay adjacent on every topology", func(t *testing.T) {
		big := lexicon.Build([]string{"tea", "eat", "ate", "tate", "teat", "seat", "east", "sate", "eats", "teas", "tease", "state", "taste"})
		for _, name := range TopologyNames() {
			topo, err := TopologyByName(name)
			require.NoError(t, err)
			letters := make([]string, topo.Size())
			for i := range letters {
				letters[i] = string("tease"[i%5])
			}
			got, err := WordHunt(big, letters, topo, 3)
			require.NoError(t, err)
			require.NotEmpty(t, got, "topology %s", name)
			for _, s := range got {
				requireValidPath(t, topo, letters, s)
			}
			require.True(t, slices.IsSortedFunc(got, func(a, b HuntSolution) int { return compareWords(a.Word, b.Word) }))
		}
	})

	t.Run("validation", func(t *testing.T) {
		_, err := WordHunt(dict, board[:15], small, 3)
		require.ErrorIs(t, err, ErrInvalidInput)

		bad := slices.Clone(board)
		bad[3] = "S"
		_, err = WordHunt(dict, bad, small, 3)
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = WordHunt(dict, board, nil, 3)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no words is an empty result", func(t *testing.T) {
		got, err := WordHunt(dict, split("xxxxxxxxxxxxxxxx"), small, 3)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
