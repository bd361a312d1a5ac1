package token

// trie is a byte trie answering longest-prefix queries over a fixed set of
// patterns. It is built once and read concurrently.
type trie struct {
	root *node
}

type node struct {
	children map[byte]*node
	value    string
	terminal bool
}

func newTrie() *trie {
	return &trie{root: &node{}}
}

// insert adds pattern and reports false if it is already present.
func (t *trie) insert(pattern, value string) bool {
	n := t.root
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if n.children == nil {
			n.children = make(map[byte]*node)
		}
		next, ok := n.children[c]
		if !ok {
			next = &node{}
			n.children[c] = next
		}
		n = next
	}
	if n.terminal {
		return false
	}
	n.terminal = true
	n.value = value

	return true
}

// longest returns the value of the longest pattern that prefixes text and
// the pattern length, or 0 when nothing matches.
func (t *trie) longest(text string) (string, int) {
	var (
		value string
		size  int
	)
	n := t.root
	for i := 0; i < len(text); i++ {
		next, ok := n.children[text[i]]
		if !ok {
			break
		}
		n = next
		if n.terminal {
			value, size = n.value, i+1
		}
	}

	return value, size
}
