package wordsearch

import (
	"slices"

	"github.com/robalobadob/puzzle-solver/internal/lexicon"
)

// HuntSolution is a word found on a Word Hunt board with the ordered cell
// positions that spell it.
type HuntSolution struct {
	Word      string `json:"word"`
	Positions []int  `json:"positions"`
}

// WordHunt finds every dictionary word of at least minLength letters that can
// be traced through adjacent, non-repeating cells of the board. letters holds
// one lowercase letter per cell in the topology's index order.
//
// When several paths spell the same word, the first one explored is kept;
// which one that is carries no meaning. Results are ordered longest first,
// then alphabetically.
func WordHunt(dict *lexicon.Trie, letters []string, topo Topology, minLength int) ([]HuntSolution, error) {
	if topo == nil {
		return nil, invalid("board type is required")
	}
	if len(letters) != topo.Size() {
		return nil, invalid("board %q needs %d letters, got %d", topo.Name(), topo.Size(), len(letters))
	}
	cells := make([]rune, len(letters))
	for i, l := range letters {
		if err := validateTile("board", l, 1); err != nil {
			return nil, err
		}
		cells[i] = rune(l[0])
	}
	minLength = minLengthOrDefault(minLength)

	h := &hunt{cells: cells, topo: topo, minLength: minLength, found: map[string][]int{}}
	for start := range cells {
		h.explore(dict.Root().Child(cells[start]), start, 1<<start, []int{start})
	}

	out := make([]HuntSolution, 0, len(h.order))
	for _, w := range h.order {
		out = append(out, HuntSolution{Word: w, Positions: h.found[w]})
	}
	slices.SortFunc(out, func(a, b HuntSolution) int { return compareWords(a.Word, b.Word) })
	return out, nil
}

// HuntWords maps each solution's word to its positions.
func HuntWords(sols []HuntSolution) map[string][]int {
	m := make(map[string][]int, len(sols))
	for _, s := range sols {
		m[s.Word] = s.Positions
	}
	return m
}

type hunt struct {
	cells     []rune
	topo      Topology
	minLength int
	found     map[string][]int
	order     []string
}

// explore extends the path ending at pos. visited is a bitmask over cells and
// is passed by value, so sibling directions never see each other's marks.
func (h *hunt) explore(node *lexicon.Node, pos int, visited uint64, path []int) {
	if node == nil {
		return
	}
	if node.Terminal() && len(path) >= h.minLength {
		word := h.spell(path)
		if _, dup := h.found[word]; !dup {
			h.found[word] = slices.Clone(path)
			h.order = append(h.order, word)
		}
	}
	for _, nb := range h.topo.Neighbors(pos) {
		if nb == NoCell || visited&(1<<nb) != 0 {
			continue
		}
		next := node.Child(h.cells[nb])
		if next == nil {
			continue
		}
		h.explore(next, nb, visited|1<<nb, append(path[:len(path):len(path)], nb))
	}
}

func (h *hunt) spell(path []int) string {
	rs := make([]rune, len(path))
	for i, p := range path {
		rs[i] = h.cells[p]
	}
	return string(rs)
}
