// internal/words/words.go
//
// Provides the word lists the solvers consume.
//
// Responsibilities:
//   - Load the trie dictionary and the plain common-word set from
//     environment-provided files, or fall back to the embedded default list.
//   - Build the lexicon trie exactly once and expose both through a single
//     process-wide accessor.
//
// Environment variables:
//   DICTIONARY_FILE=/path/to/dictionary.txt    (trie-indexed, word-grid solvers)
//   COMMON_WORDS_FILE=/path/to/common.txt      (plain set, Letter Boxed / Spelling Bee)
//
// When only one of the two is provided it is used for both.
//
// Constraints:
//   • Words are lowercased and kept only if every rune is a–z.
//   • Initialization is run once (sync.Once); the returned Lists is read-only.

package words

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/puzzle-solver/assets"
	"github.com/robalobadob/puzzle-solver/internal/lexicon"
)

// Lists bundles the immutable word data shared by every request.
type Lists struct {
	Dictionary *lexicon.Trie        // trie over the dictionary
	Common     map[string]struct{} // plain word set
}

var (
	initOnce   sync.Once
	loaded     *Lists
	initialErr error
)

// Init loads the word lists exactly once.
// Returns an error if either list ends up empty.
func Init() error {
	initOnce.Do(func() {
		loaded, initialErr = Load(context.Background(),
			os.Getenv("DICTIONARY_FILE"), os.Getenv("COMMON_WORDS_FILE"))
	})
	return initialErr
}

// Get returns the lists loaded by Init, or nil if Init has not succeeded.
func Get() *Lists {
	return loaded
}

// Load reads both lists concurrently and builds the trie.
// Empty paths fall back to the other path, then to the embedded default.
func Load(ctx context.Context, dictPath, commonPath string) (*Lists, error) {
	switch {
	case dictPath == "" && commonPath != "":
		dictPath = commonPath
	case commonPath == "" && dictPath != "":
		commonPath = dictPath
	}

	var dictList, commonList []string
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dictList, err = readList(dictPath)
		return err
	})
	g.Go(func() (err error) {
		commonList, err = readList(commonPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(dictList) == 0 {
		return nil, errors.New("words: dictionary is empty")
	}
	if len(commonList) == 0 {
		return nil, errors.New("words: common word list is empty")
	}
	return &Lists{
		Dictionary: lexicon.Build(dictList),
		Common:     toSet(commonList),
	}, nil
}

// FromWords builds Lists where the dictionary and the common set share one list.
func FromWords(list []string) *Lists {
	list = normalize(list)
	return &Lists{Dictionary: lexicon.Build(list), Common: toSet(list)}
}

// Stats returns counts of loaded words: (dictionary, common).
func (l *Lists) Stats() (dictionaryCount int, commonCount int) {
	if l == nil {
		return 0, 0
	}
	return l.Dictionary.Len(), len(l.Common)
}

// TrieNodes returns the dictionary trie's node count, root included.
func (l *Lists) TrieNodes() int {
	if l == nil || l.Dictionary == nil {
		return 0
	}
	return l.Dictionary.NodeCount()
}

func readList(path string) ([]string, error) {
	if path == "" {
		list, err := assets.CommonWords()
		if err != nil {
			return nil, err
		}
		return normalize(list), nil
	}
	return readWordFile(path)
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
