// Copyright (c) 2013, J. Salvador Arias <jsalarias@csnat.unt.edu.ar>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package radix implements a radix tree (compressed trie) keyed by
// strings. Keys are treated as byte strings: edges carry multi-byte
// labels and the children of a node are dispatched on the first byte of
// their label.
//
// A Trie is not safe for concurrent use; wrap it in a Locked when it is
// shared between goroutines.
package radix

import (
	"slices"
	"strings"
)

// a node of a radix tree
type node[V any] struct {
	label    string // edge segment from the parent, empty only at the root
	value    V
	hasValue bool
	children []*node[V] // sorted by the first byte of label
}

func newLeaf[V any](label string, value V) *node[V] {
	return &node[V]{label: label, value: value, hasValue: true}
}

func (n *node[V]) setValue(value V) (V, bool) {
	old, replaced := n.value, n.hasValue
	n.value, n.hasValue = value, true
	return old, replaced
}

func (n *node[V]) takeValue() (V, bool) {
	var zero V
	old, ok := n.value, n.hasValue
	n.value, n.hasValue = zero, false
	return old, ok
}

// mergeChild folds the only child of n into n. The first byte of the
// label is unchanged, so the position of n among its siblings still holds.
func (n *node[V]) mergeChild() {
	c := n.children[0]
	n.label += c.label
	n.value, n.hasValue = c.value, c.hasValue
	n.children = c.children
}

// implements insert or replace, returns the previous value if any
func (n *node[V]) put(key string, value V) (V, bool) {
	for len(key) > 0 {
		i, ok := findChildIndex(n.children, key[0])
		if !ok {
			n.children = slices.Insert(n.children, i, newLeaf(key, value))
			var zero V
			return zero, false
		}

		d := n.children[i]
		comm := commonPrefixLength(key, d.label)

		//ex: a, insert ab
		if comm == len(d.label) {
			key = key[comm:]
			n = d
			continue
		}

		n.children[i] = split(d, comm, key[comm:], value)
		var zero V
		return zero, false
	}
	return n.setValue(value)
}

// split cuts d after its first at bytes. The returned node takes the
// shared part of the label and d keeps the rest. rest is what remains of
// the inserted key once the shared part is consumed.
func split[V any](d *node[V], at int, rest string, value V) *node[V] {
	p := &node[V]{label: d.label[:at]}
	d.label = d.label[at:]

	//ex: ab, insert a
	if len(rest) == 0 {
		p.value, p.hasValue = value, true
		p.children = []*node[V]{d}
		return p
	}

	//ex: ab, insert ac, extra common a
	n := newLeaf(rest, value)
	if n.label[0] < d.label[0] {
		p.children = []*node[V]{n, d}
	} else {
		p.children = []*node[V]{d, n}
	}
	return p
}

func (n *node[V]) clone() *node[V] {
	c := &node[V]{label: n.label, value: n.value, hasValue: n.hasValue}
	if len(n.children) > 0 {
		c.children = make([]*node[V], len(n.children))
		for i, d := range n.children {
			c.children[i] = d.clone()
		}
	}
	return c
}

// implements lookup: the node whose path spells key exactly, or nil
func (n *node[V]) lookup(key string) *node[V] {
	for len(key) > 0 {
		i, ok := findChildIndex(n.children, key[0])
		if !ok {
			return nil
		}
		d := n.children[i]
		if !strings.HasPrefix(key, d.label) {
			return nil
		}
		key = key[len(d.label):]
		n = d
	}
	return n
}

// implements delete
func (n *node[V]) delete(key string) (V, bool) {
	path := []*node[V]{n}
	for len(key) > 0 {
		i, ok := findChildIndex(n.children, key[0])
		if !ok {
			var zero V
			return zero, false
		}
		d := n.children[i]
		if !strings.HasPrefix(key, d.label) {
			var zero V
			return zero, false
		}
		key = key[len(d.label):]
		n = d
		path = append(path, n)
	}

	old, ok := n.takeValue()
	if ok {
		compact(path)
	}
	return old, ok
}

// compact restores the compression of the tree along path, a chain of
// nodes that starts at the root, after the last one lost its value.
// Valueless leaves are detached and valueless nodes with a single child
// are merged with it. The root is never touched.
func compact[V any](path []*node[V]) {
	for i := len(path) - 1; i > 0; i-- {
		n, father := path[i], path[i-1]
		switch {
		case n.hasValue || len(n.children) > 1:
			return
		case len(n.children) == 1:
			n.mergeChild()
			return
		}

		j, _ := findChildIndex(father.children, n.label[0])
		father.children = slices.Delete(father.children, j, j+1)
	}
}

// seek returns the node under which every key starting with prefix is
// stored, together with the full key of that node. The prefix may end in
// the middle of the node's label. It returns nil if no key has the prefix.
func (n *node[V]) seek(prefix string) (*node[V], string) {
	consumed := 0
	for consumed < len(prefix) {
		rest := prefix[consumed:]
		i, ok := findChildIndex(n.children, rest[0])
		if !ok {
			return nil, ""
		}
		d := n.children[i]
		comm := commonPrefixLength(rest, d.label)
		if comm == len(rest) {
			return d, prefix[:consumed] + d.label
		}
		if comm < len(d.label) {
			return nil, ""
		}
		consumed += comm
		n = d
	}
	return n, prefix
}

type visit int

const (
	descend visit = iota // visit the children of the node
	skip                 // do not visit the children of the node
	stop                 // end the walk
)

type frame[V any] struct {
	key   string
	depth int
	n     *node[V]
}

// walk visits the subtree of n in pre-order, children by ascending first
// byte, so keys are visited in lexicographic order. key is the full key
// of n and depth its depth in the tree.
func (n *node[V]) walk(key string, depth int, fn func(key string, depth int, n *node[V]) visit) {
	stack := []frame[V]{{key: key, depth: depth, n: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch fn(f.key, f.depth, f.n) {
		case stop:
			return
		case skip:
			continue
		}

		for i := len(f.n.children) - 1; i >= 0; i-- {
			c := f.n.children[i]
			stack = append(stack, frame[V]{key: f.key + c.label, depth: f.depth + 1, n: c})
		}
	}
}

// add the content of a node and its descendants to a slice
func (n *node[V]) appendEntries(l []Entry[V], key string) []Entry[V] {
	n.walk(key, 0, func(key string, _ int, d *node[V]) visit {
		if d.hasValue {
			l = append(l, Entry[V]{Key: key, Value: d.value})
		}
		return descend
	})
	return l
}

// list fills a listing with the keys and common prefixes found under the
// node, whose full key is key. prefix is the requested listing prefix.
func (n *node[V]) list(key, prefix string, opts ListOptions) Listing[V] {
	var l Listing[V]
	count := 0
	last := ""

	after := func(item string) bool {
		return opts.Marker == "" || item > opts.Marker
	}

	// save reports an item, returns false if the listing is full
	save := func(item string) bool {
		if opts.Limit > 0 && count >= opts.Limit {
			l.Truncated = true
			l.NextMarker = last
			return false
		}
		count++
		last = item
		return true
	}

	n.walk(key, 0, func(key string, _ int, d *node[V]) visit {
		if opts.Marker != "" && key < opts.Marker && !strings.HasPrefix(opts.Marker, key) {
			// every key below sorts before the marker
			return skip
		}

		if opts.Delimiter != "" {
			if pos := strings.Index(key[len(prefix):], opts.Delimiter); pos >= 0 {
				common := key[:len(prefix)+pos+len(opts.Delimiter)]
				if !after(common) {
					return skip
				}
				if !save(common) {
					return stop
				}
				l.CommonPrefixes = append(l.CommonPrefixes, common)
				return skip
			}
		}

		if d.hasValue && after(key) {
			if !save(key) {
				return stop
			}
			l.Entries = append(l.Entries, Entry[V]{Key: key, Value: d.value})
		}
		return descend
	})

	return l
}
