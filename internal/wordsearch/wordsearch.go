// Package wordsearch enumerates dictionary words reachable on word-game
// racks and boards: Anagrams, Word Hunt, Word Bites, Letter Boxed and
// Spelling Bee.
//
// Every search is synchronous and keeps its exploration state (used tiles,
// visited cells) branch-local, so one *lexicon.Trie can serve concurrent
// searches. An empty result is a valid outcome, never an error.
package wordsearch

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// DefaultMinLength is the shortest word reported unless a caller asks otherwise.
const DefaultMinLength = 3

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

// compareWords orders longer words first, then alphabetically.
func compareWords(a, b string) int {
	if c := cmp.Compare(len(b), len(a)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

func sortWords(ws []string) {
	slices.SortFunc(ws, compareWords)
}

// isLetter reports whether r is a lowercase ASCII letter.
func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }

// validateTile checks that s is exactly n lowercase letters.
func validateTile(kind, s string, n int) error {
	if len(s) != n {
		return invalid("%s piece %q must be %d lowercase letter(s)", kind, s, n)
	}
	for _, r := range s {
		if !isLetter(r) {
			return invalid("%s piece %q must be %d lowercase letter(s)", kind, s, n)
		}
	}
	return nil
}

func minLengthOrDefault(n int) int {
	if n <= 0 {
		return DefaultMinLength
	}
	return n
}
