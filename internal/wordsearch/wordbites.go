package wordsearch

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/puzzle-solver/internal/lexicon"
)

// MaxPoolSize bounds each Word Bites tile pool.
const MaxPoolSize = 32

// BitesPiece is one tile used by a Word Bites solution and the indices of
// its letters that the word consumed.
type BitesPiece struct {
	Letters      string `json:"letters"`
	IndicesInUse []int  `json:"indices_in_use"`
}

// BitesSolution is a Word Bites word with its reading direction and the
// tiles that build it, in order.
type BitesSolution struct {
	Word       string       `json:"word"`
	Horizontal bool         `json:"horizontal"`
	Pieces     []BitesPiece `json:"pieces"`
}

// BitesTiles are the three tile pools of a Word Bites board.
type BitesTiles struct {
	Single     []string // one-letter tiles
	Horizontal []string // two-letter tiles laid left to right
	Vertical   []string // two-letter tiles laid top to bottom
}

// Validate checks tile shapes: singles are one lowercase letter, the others two.
func (t BitesTiles) Validate() error {
	for _, pool := range [][]string{t.Single, t.Horizontal, t.Vertical} {
		if len(pool) > MaxPoolSize {
			return invalid("tile pool has %d pieces, at most %d allowed", len(pool), MaxPoolSize)
		}
	}
	for _, p := range t.Single {
		if err := validateTile("single", p, 1); err != nil {
			return err
		}
	}
	for _, p := range t.Horizontal {
		if err := validateTile("horizontal", p, 2); err != nil {
			return err
		}
	}
	for _, p := range t.Vertical {
		if err := validateTile("vertical", p, 2); err != nil {
			return err
		}
	}
	return nil
}

// WordBites finds the words buildable from the tiles.
//
// A word reads either along the horizontal arrangement or along the vertical
// one. Reading horizontally, horizontal tiles contribute both letters in order
// and vertical tiles contribute exactly one of theirs; reading vertically the
// roles swap. Both readings are searched, merged and deduplicated by word
// (first found wins), then ordered longest first and alphabetically.
func WordBites(dict *lexicon.Trie, tiles BitesTiles, minLength int) ([]BitesSolution, error) {
	if err := tiles.Validate(); err != nil {
		return nil, err
	}
	minLength = minLengthOrDefault(minLength)

	horizontal := bitesSearch{
		single: tiles.Single, both: tiles.Horizontal, either: tiles.Vertical,
		minLength: minLength, horizontal: true,
	}
	vertical := bitesSearch{
		single: tiles.Single, both: tiles.Vertical, either: tiles.Horizontal,
		minLength: minLength, horizontal: false,
	}
	horizontal.explore(dict.Root(), 0, 0, 0, nil, 0)
	vertical.explore(dict.Root(), 0, 0, 0, nil, 0)

	all := append(horizontal.found, vertical.found...)
	out := lo.UniqBy(all, func(s BitesSolution) string { return s.Word })
	slices.SortStableFunc(out, func(a, b BitesSolution) int { return compareWords(a.Word, b.Word) })
	return out, nil
}

type bitesSearch struct {
	single     []string
	both       []string // tiles consumed as their full pair, in order
	either     []string // tiles contributing exactly one letter
	minLength  int
	horizontal bool
	found      []BitesSolution
	seen       map[string]struct{}
}

// explore tries every remaining tile as the next piece. The used* masks and
// the pieces slice are copied per branch; nothing is undone on return.
//
// Tiles with the same letters lead to the same subtree, so each distinct
// tile is tried once per level: the first copy in pool order is the one
// whose provenance is kept.
func (s *bitesSearch) explore(node *lexicon.Node, usedSingle, usedEither, usedBoth uint64, pieces []BitesPiece, length int) {
	if node == nil {
		return
	}
	if node.Terminal() && length >= s.minLength {
		s.record(pieces)
	}

	var triedSingle [26]bool
	for i, t := range s.single {
		if usedSingle&(1<<i) != 0 || triedSingle[t[0]-'a'] {
			continue
		}
		triedSingle[t[0]-'a'] = true
		s.explore(node.Child(rune(t[0])), usedSingle|1<<i, usedEither, usedBoth,
			withPiece(pieces, BitesPiece{Letters: t, IndicesInUse: []int{0}}), length+1)
	}

	triedEither := map[string]bool{}
	for i, t := range s.either {
		if usedEither&(1<<i) != 0 || triedEither[t] {
			continue
		}
		triedEither[t] = true
		for idx := 0; idx < 2; idx++ {
			if idx == 1 && t[1] == t[0] {
				continue
			}
			s.explore(node.Child(rune(t[idx])), usedSingle, usedEither|1<<i, usedBoth,
				withPiece(pieces, BitesPiece{Letters: t, IndicesInUse: []int{idx}}), length+1)
		}
	}

	triedBoth := map[string]bool{}
	for i, t := range s.both {
		if usedBoth&(1<<i) != 0 || triedBoth[t] {
			continue
		}
		triedBoth[t] = true
		mid := node.Child(rune(t[0]))
		if mid == nil {
			continue
		}
		s.explore(mid.Child(rune(t[1])), usedSingle, usedEither, usedBoth|1<<i,
			withPiece(pieces, BitesPiece{Letters: t, IndicesInUse: []int{0, 1}}), length+2)
	}
}

// record keeps the first solution found for each word.
func (s *bitesSearch) record(pieces []BitesPiece) {
	sol := s.solution(pieces)
	if s.seen == nil {
		s.seen = map[string]struct{}{}
	}
	if _, ok := s.seen[sol.Word]; ok {
		return
	}
	s.seen[sol.Word] = struct{}{}
	s.found = append(s.found, sol)
}

func (s *bitesSearch) solution(pieces []BitesPiece) BitesSolution {
	var b strings.Builder
	for _, p := range pieces {
		for _, idx := range p.IndicesInUse {
			b.WriteByte(p.Letters[idx])
		}
	}
	return BitesSolution{Word: b.String(), Horizontal: s.horizontal, Pieces: slices.Clone(pieces)}
}

func withPiece(pieces []BitesPiece, p BitesPiece) []BitesPiece {
	return append(pieces[:len(pieces):len(pieces)], p)
}
