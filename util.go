package radix

import (
	"cmp"
	"slices"
)

// commonPrefixLength returns the number of leading bytes shared by s and t.
// Keys are compared as raw bytes, so a shared prefix may end in the middle
// of a multi-byte UTF-8 sequence.
func commonPrefixLength(s, t string) int {
	n := min(len(s), len(t))
	for i := 0; i < n; i++ {
		if s[i] != t[i] {
			return i
		}
	}
	return n
}

// findChildIndex searches children for the node whose label starts with b.
// If there is none, the returned index is the position where such a child
// must be inserted to keep children sorted.
func findChildIndex[V any](children []*node[V], b byte) (int, bool) {
	return slices.BinarySearchFunc(children, b, func(n *node[V], b byte) int {
		return cmp.Compare(n.label[0], b)
	})
}
