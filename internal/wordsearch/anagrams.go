package wordsearch

import (
	"github.com/robalobadob/puzzle-solver/internal/lexicon"
)

// MaxRackSize bounds the rack so a request cannot ask for an unbounded search.
const MaxRackSize = 16

// Anagrams returns every dictionary word of length ≥ 3 spelled by some
// arrangement of a subset of letters, longest first then alphabetical.
// Each rack letter is used at most as many times as it appears.
func Anagrams(dict *lexicon.Trie, letters []string) ([]string, error) {
	if len(letters) > MaxRackSize {
		return nil, invalid("rack has %d letters, at most %d allowed", len(letters), MaxRackSize)
	}
	rack := make([]rune, len(letters))
	for i, l := range letters {
		if err := validateTile("rack", l, 1); err != nil {
			return nil, err
		}
		rack[i] = rune(l[0])
	}

	found := map[string]struct{}{}

	// used is a bitmask over rack indices, copied into every branch.
	var explore func(node *lexicon.Node, used uint32, word string)
	explore = func(node *lexicon.Node, used uint32, word string) {
		if node.Terminal() && len(word) >= DefaultMinLength {
			found[word] = struct{}{}
		}
		// identical letters lead to identical subtrees; try each once per level
		var tried [26]bool
		for i, r := range rack {
			if used&(1<<i) != 0 || tried[r-'a'] {
				continue
			}
			tried[r-'a'] = true
			next := node.Child(r)
			if next == nil {
				continue
			}
			explore(next, used|1<<i, word+string(r))
		}
	}
	explore(dict.Root(), 0, "")

	out := make([]string, 0, len(found))
	for w := range found {
		out = append(out, w)
	}
	sortWords(out)
	return out, nil
}
