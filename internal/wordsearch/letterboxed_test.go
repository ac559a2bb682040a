package wordsearch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func wordSet(ws ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		m[w] = struct{}{}
	}
	return m
}

func TestLetterBoxed(t *testing.T) {
	sides := [][]string{{"t", "e"}, {"a", "o"}, {"p", "r"}}
	common := wordSet("tore", "ear", "rope", "tap", "pea", "top", "oat", "toper", "rat")

	t.Run("shortest chain per opener, shortest first", func(t *testing.T) {
		got, err := LetterBoxed(common, sides, 0, 0)
		require.NoError(t, err)
		require.Equal(t, [][]string{
			{"toper", "rat"},
			{"rat", "toper"},
			{"rope", "ear", "rat"},
			{"tore", "ear", "rope"},
			{"ear", "rat", "toper"},
		}, got)
	})

	t.Run("chains cover the box and obey the sides", func(t *testing.T) {
		side := map[byte]int{}
		for i, s := range sides {
			for _, l := range s {
				side[l[0]] = i
			}
		}
		got, err := LetterBoxed(common, sides, 0, 0)
		require.NoError(t, err)
		for _, chain := range got {
			used := map[byte]bool{}
			for i, w := range chain {
				if i > 0 {
					prev := chain[i-1]
					require.Equal(t, prev[len(prev)-1], w[0], "chain %v", chain)
				}
				for j := 0; j < len(w); j++ {
					used[w[j]] = true
					if j > 0 {
						require.NotEqual(t, side[w[j-1]], side[w[j]], "word %q", w)
					}
				}
			}
			require.Len(t, used, len(side), "chain %v", chain)
		}
	})

	t.Run("max chain length and limit", func(t *testing.T) {
		got, err := LetterBoxed(common, sides, 2, 0)
		require.NoError(t, err)
		require.Equal(t, [][]string{{"toper", "rat"}, {"rat", "toper"}}, got)

		got, err = LetterBoxed(common, sides, 0, 1)
		require.NoError(t, err)
		require.Equal(t, [][]string{{"toper", "rat"}}, got)
	})

	t.Run("single word covering the box", func(t *testing.T) {
		got, err := LetterBoxed(wordSet("toper"), [][]string{{"t", "e"}, {"o"}, {"p", "r"}}, 0, 0)
		require.NoError(t, err)
		require.Equal(t, [][]string{{"toper"}}, got)
	})

	t.Run("unsolvable box is empty", func(t *testing.T) {
		got, err := LetterBoxed(wordSet("tap", "pea"), sides, 0, 0)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("validation", func(t *testing.T) {
		for _, bad := range [][][]string{
			{{"a", "b"}},
			{{"a"}, {}},
			{{"a"}, {"a", "b"}},
			{{"A"}, {"b"}},
		} {
			_, err := LetterBoxed(common, bad, 0, 0)
			require.ErrorIs(t, err, ErrInvalidInput, "sides %v", bad)
		}
	})
}
