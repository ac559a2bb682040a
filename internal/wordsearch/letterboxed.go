package wordsearch

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/samber/lo"
)

// DefaultMaxChainLength caps Letter Boxed chains when the caller gives no bound.
const DefaultMaxChainLength = 5

// letterMask is a set of letters a–z, bit 0 for 'a'.
type letterMask uint32

func maskOf(word string) letterMask {
	var m letterMask
	for _, r := range word {
		m |= 1 << (r - 'a')
	}
	return m
}

// LetterBoxed finds chains of common words that together use every letter on
// the box. Consecutive letters in a word must come from different sides, and
// each word after the first starts with the previous word's last letter.
//
// Every candidate word is tried as a chain opener and yields at most one
// chain: the shortest one found from it within maxChainLength words. Chains
// are returned shortest first, ties broken by total letter count. limit > 0
// truncates the result.
func LetterBoxed(common map[string]struct{}, sides [][]string, maxChainLength, limit int) ([][]string, error) {
	box, err := newLetterBox(sides)
	if err != nil {
		return nil, err
	}
	if maxChainLength <= 0 {
		maxChainLength = DefaultMaxChainLength
	}

	candidates := box.candidates(common)
	byFirst := lo.GroupBy(candidates, func(w string) rune { return rune(w[0]) })
	masks := make(map[string]letterMask, len(candidates))
	for _, w := range candidates {
		masks[w] = maskOf(w)
	}
	s := &chainSearch{byFirst: byFirst, masks: masks}

	var chains [][]string
	for _, w := range candidates {
		unused := box.all &^ masks[w]
		if unused == 0 {
			chains = append(chains, []string{w})
			continue
		}
		if chain := s.solve([]string{w}, unused, maxChainLength); chain != nil {
			chains = append(chains, chain)
		}
	}

	slices.SortStableFunc(chains, func(a, b []string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return cmp.Compare(totalLetters(a), totalLetters(b))
	})
	if limit > 0 && len(chains) > limit {
		chains = chains[:limit]
	}
	return chains, nil
}

type letterBox struct {
	sideOf map[rune]int
	all    letterMask
}

func newLetterBox(sides [][]string) (*letterBox, error) {
	if len(sides) < 2 {
		return nil, invalid("letter box needs at least 2 sides, got %d", len(sides))
	}
	b := &letterBox{sideOf: map[rune]int{}}
	for i, side := range sides {
		if len(side) == 0 {
			return nil, invalid("side %d is empty", i)
		}
		for _, l := range side {
			if err := validateTile("side", l, 1); err != nil {
				return nil, err
			}
			r := rune(l[0])
			if prev, ok := b.sideOf[r]; ok && prev != i {
				return nil, invalid("letter %q appears on sides %d and %d", l, prev, i)
			}
			b.sideOf[r] = i
			b.all |= 1 << (r - 'a')
		}
	}
	return b, nil
}

// playable reports whether word can be traced on the box: length ≥ 3, only
// box letters, and every consecutive pair on different sides (which also
// rules out immediately repeated letters).
func (b *letterBox) playable(word string) bool {
	if len(word) < 3 {
		return false
	}
	prev := -1
	for _, r := range word {
		side, ok := b.sideOf[r]
		if !ok || side == prev {
			return false
		}
		prev = side
	}
	return true
}

// candidates returns the playable words, most distinct letters first, then
// shortest, then alphabetical.
func (b *letterBox) candidates(common map[string]struct{}) []string {
	words := lo.Filter(lo.Keys(common), func(w string, _ int) bool { return b.playable(w) })
	slices.SortFunc(words, func(x, y string) int {
		dx, dy := bits.OnesCount32(uint32(maskOf(x))), bits.OnesCount32(uint32(maskOf(y)))
		if c := cmp.Compare(dy, dx); c != 0 {
			return c
		}
		if c := cmp.Compare(len(x), len(y)); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})
	return words
}

type chainSearch struct {
	byFirst map[rune][]string
	masks   map[string]letterMask
}

// solve extends chain until unused is empty, returning the shortest chain
// found with at most maxLen words, or nil. The bound shrinks as better
// chains are found, so any branch already as long as the best is dropped.
func (s *chainSearch) solve(chain []string, unused letterMask, maxLen int) []string {
	if len(chain) >= maxLen {
		return nil
	}
	last := chain[len(chain)-1]
	next := lo.Filter(s.byFirst[rune(last[len(last)-1])], func(w string, _ int) bool {
		return s.masks[w]&unused != 0
	})

	bestLen := maxLen + 1
	var best []string
	for _, w := range next {
		remaining := unused &^ s.masks[w]
		extended := append(chain[:len(chain):len(chain)], w)
		if remaining == 0 {
			// nothing shorter exists below this level
			return extended
		}
		if sol := s.solve(extended, remaining, bestLen-1); sol != nil && len(sol) < bestLen {
			bestLen = len(sol)
			best = sol
		}
	}
	return best
}

func totalLetters(chain []string) int {
	n := 0
	for _, w := range chain {
		n += len(w)
	}
	return n
}
