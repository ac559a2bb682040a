// internal/lexicon/trie.go
//
// Prefix tree over the dictionary used by every word-grid solver.
//
// Notes:
//   - Built once at startup and never mutated afterwards, so a *Trie can be
//     shared by any number of concurrent searches without locking.
//   - Node accessors are nil-safe: following a missing child yields nil, and
//     a nil node is never terminal. Searches use this as their pruning signal.

package lexicon

// Node is one letter position in the shared-prefix structure.
type Node struct {
	terminal bool
	children map[rune]*Node
}

// Terminal reports whether a dictionary word ends at this node.
func (n *Node) Terminal() bool {
	return n != nil && n.terminal
}

// Child returns the node reached by following letter r, or nil.
func (n *Node) Child(r rune) *Node {
	if n == nil {
		return nil
	}
	return n.children[r]
}

// Walk follows every letter of s from n and returns the node it ends on.
func (n *Node) Walk(s string) *Node {
	cur := n
	for _, r := range s {
		cur = cur.Child(r)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Trie is an immutable prefix tree.
type Trie struct {
	root  *Node
	words int
	nodes int
}

// Build inserts every word into a fresh trie. Repeated words are harmless:
// insertion reuses existing nodes and never clears a terminal mark.
func Build(words []string) *Trie {
	t := &Trie{root: &Node{children: map[rune]*Node{}}, nodes: 1}
	for _, w := range words {
		t.insert(w)
	}
	return t
}

func (t *Trie) insert(word string) {
	if word == "" {
		return
	}
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			next = &Node{children: map[rune]*Node{}}
			cur.children[r] = next
			t.nodes++
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		t.words++
	}
}

// Root returns the root node.
func (t *Trie) Root() *Node { return t.root }

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}
	return t.root.Walk(word).Terminal()
}

// Len returns the number of distinct words.
func (t *Trie) Len() int { return t.words }

// NodeCount returns the number of nodes including the root.
func (t *Trie) NodeCount() int { return t.nodes }
