package words

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	t.Run("embedded default list", func(t *testing.T) {
		l, err := Load(context.Background(), "", "")
		require.NoError(t, err)
		d, c := l.Stats()
		require.Positive(t, d)
		require.Equal(t, d, c, "one source feeds both lists")
		require.True(t, l.Dictionary.Contains("apple"))
		require.Contains(t, l.Common, "apple")
	})

	t.Run("files are normalized", func(t *testing.T) {
		p := writeList(t, "dict.txt", "Apple\n  pear \n\nnot-a-word\nx1\nplum\n")
		l, err := Load(context.Background(), p, "")
		require.NoError(t, err)
		require.True(t, l.Dictionary.Contains("apple"))
		require.True(t, l.Dictionary.Contains("pear"))
		require.False(t, l.Dictionary.Contains("x1"))
		require.Len(t, l.Common, 3)
	})

	t.Run("separate dictionary and common files", func(t *testing.T) {
		dict := writeList(t, "dict.txt", "cat\ndog\n")
		common := writeList(t, "common.txt", "bird\n")
		l, err := Load(context.Background(), dict, common)
		require.NoError(t, err)
		require.True(t, l.Dictionary.Contains("dog"))
		require.NotContains(t, l.Common, "dog")
		require.Contains(t, l.Common, "bird")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), "")
		require.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		p := writeList(t, "empty.txt", "\n\n")
		_, err := Load(context.Background(), p, p)
		require.Error(t, err)
	})
}

func TestFromWords(t *testing.T) {
	l := FromWords([]string{"Tea", "ten", "1x"})
	d, c := l.Stats()
	require.Equal(t, 2, d)
	require.Equal(t, 2, c)
	require.True(t, l.Dictionary.Contains("tea"))
	// root, t, e, a, n
	require.Equal(t, 5, l.TrieNodes())

	var nilLists *Lists
	d, c = nilLists.Stats()
	require.Zero(t, d)
	require.Zero(t, c)
	require.Zero(t, nilLists.TrieNodes())
}
