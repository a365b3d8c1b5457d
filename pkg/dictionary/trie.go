package dictionary

import "unicode/utf8"

// node is a single trie vertex. Children are kept in first-insertion order,
// which is the order suggestions are emitted in.
type node struct {
	char     rune
	children []*node
	word     string
	terminal bool
	count    int
}

// child returns the child reached by r, or nil.
// Linear scan; fan-out per node is bounded by the alphabet in practice.
func (n *node) child(r rune) *node {
	for _, c := range n.children {
		if c.char == r {
			return c
		}
	}
	return nil
}

// keyAt decodes the child key at the start of s and its width.
// Each byte of an invalid sequence gets its own negative key, so distinct
// byte strings never share a path.
func keyAt(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return -(rune(s[0]) + 1), 1
	}
	return r, size
}

// PrefixIndex is a character trie over dictionary words.
// It is built once and only read afterwards; reads are safe to share.
type PrefixIndex struct {
	root *node
}

// NewPrefixIndex returns an empty index.
func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{root: &node{}}
}

// AddWord stores word verbatim. The empty string marks the root.
func (t *PrefixIndex) AddWord(word string) {
	current := t.root
	for i := 0; i < len(word); {
		r, size := keyAt(word[i:])
		i += size
		next := current.child(r)
		if next == nil {
			next = &node{char: r}
			current.children = append(current.children, next)
		}
		current = next
	}
	current.word = word
	current.terminal = true
	current.count++
}

// ContainsWord reports whether word was added exactly (case sensitive).
func (t *PrefixIndex) ContainsWord(word string) bool {
	current := t.root
	for i := 0; i < len(word); {
		r, size := keyAt(word[i:])
		i += size
		current = current.child(r)
		if current == nil {
			return false
		}
	}
	return current.terminal
}

// ClosestWords descends along the longest prefix of word present in the
// index and returns every stored word below that point, depth first:
// a node's own word before its children, children in insertion order.
// A limit of zero or less returns everything collected.
func (t *PrefixIndex) ClosestWords(word string, limit int) []string {
	current := t.root
	for i := 0; i < len(word); {
		r, size := keyAt(word[i:])
		i += size
		next := current.child(r)
		if next == nil {
			break
		}
		current = next
	}

	words := []string{}
	collect(current, func(w string, _ int) bool {
		words = append(words, w)
		return limit <= 0 || len(words) < limit
	})
	return words
}

// Walk visits every stored word with its insert count, in the same order
// ClosestWords would return them for an empty query.
func (t *PrefixIndex) Walk(fn func(word string, count int)) {
	collect(t.root, func(w string, c int) bool {
		fn(w, c)
		return true
	})
}

// collect runs an explicit-stack preorder traversal below start.
// emit returns false to stop early.
func collect(start *node, emit func(word string, count int) bool) {
	stack := []*node{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.terminal && !emit(n.word, n.count) {
			return
		}
		// push in reverse so the first inserted child is visited first
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}
