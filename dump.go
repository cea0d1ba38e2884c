package radix

import (
	"fmt"
	"io"
	"strings"
)

// Stats holds statistics about the shape of a tree.
type Stats struct {
	Nodes    int // including the root
	Entries  int
	MaxDepth int
}

// Stats walks the tree and returns its statistics.
func (t *Trie[V]) Stats() Stats {
	var st Stats
	t.root.walk("", 0, func(_ string, depth int, n *node[V]) visit {
		st.Nodes++
		if n.hasValue {
			st.Entries++
		}
		st.MaxDepth = max(st.MaxDepth, depth)
		return descend
	})
	return st
}

// Dump writes the edges of the tree to w, one node per line, indented by
// depth. Nodes holding a value are followed by " = " and the value.
func (t *Trie[V]) Dump(w io.Writer) error {
	var err error
	t.root.walk("", 0, func(_ string, depth int, n *node[V]) visit {
		line := strings.Repeat("    ", max(depth-1, 0)) + n.label
		switch {
		case depth == 0 && !n.hasValue:
			return descend
		case depth == 0:
			_, err = fmt.Fprintf(w, "= %v\n", n.value)
		case n.hasValue:
			_, err = fmt.Fprintf(w, "%s = %v\n", line, n.value)
		default:
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return stop
		}
		return descend
	})
	return err
}
