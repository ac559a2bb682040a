package wordsearch

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// SpellingBeeMinLength is the shortest accepted Spelling Bee word.
const SpellingBeeMinLength = 4

// BeeWord is a Spelling Bee answer; a pangram uses every puzzle letter.
type BeeWord struct {
	Word    string `json:"word"`
	Pangram bool   `json:"pangram"`
}

// SpellingBee returns every common word of at least four letters that
// contains center and uses only center and outer letters (repeats allowed),
// longest first then alphabetical.
func SpellingBee(common map[string]struct{}, center string, outer []string) ([]BeeWord, error) {
	if err := validateTile("center", center, 1); err != nil {
		return nil, err
	}
	for _, l := range outer {
		if err := validateTile("outer", l, 1); err != nil {
			return nil, err
		}
	}
	letters := lo.Uniq(append([]string{center}, outer...))
	if len(outer) == 0 || len(letters) != len(outer)+1 {
		return nil, invalid("outer letters must be distinct and differ from the center letter")
	}
	allowed := maskOf(strings.Join(letters, ""))
	need := maskOf(center)

	var out []BeeWord
	for w := range common {
		if len(w) < SpellingBeeMinLength || strings.ContainsFunc(w, func(r rune) bool { return !isLetter(r) }) {
			continue
		}
		m := maskOf(w)
		if m&need == 0 || m&^allowed != 0 {
			continue
		}
		out = append(out, BeeWord{Word: w, Pangram: m == allowed})
	}
	slices.SortFunc(out, func(a, b BeeWord) int { return compareWords(a.Word, b.Word) })
	return out, nil
}
