package radix

// Trie is a radix tree mapping string keys to values of type V.
// The zero value is an empty trie ready to use.
type Trie[V any] struct {
	root node[V] // root of the radix tree, its label is always empty
	size int
}

// Entry is a key stored in a Trie together with its value.
type Entry[V any] struct {
	Key   string
	Value V
}

// New returns a new, empty radix tree.
func New[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Len returns the number of keys stored in the tree.
func (t *Trie[V]) Len() int {
	return t.size
}

// Insert puts a value in the tree. If key was already in use, its value
// is replaced and the previous one is returned with true.
func (t *Trie[V]) Insert(key string, value V) (V, bool) {
	old, replaced := t.root.put(key, value)
	if !replaced {
		t.size++
	}
	return old, replaced
}

// Find searches for a particular key in the tree.
func (t *Trie[V]) Find(key string) (V, bool) {
	if n := t.root.lookup(key); n != nil && n.hasValue {
		return n.value, true
	}
	var zero V
	return zero, false
}

// FindMut returns a pointer to the value stored under key, or nil if the
// key is not in the tree. The pointer can be used to modify the value in
// place until the next call to Insert or Remove.
func (t *Trie[V]) FindMut(key string) *V {
	if n := t.root.lookup(key); n != nil && n.hasValue {
		return &n.value
	}
	return nil
}

// Remove deletes key from the tree and returns its value.
// Removing a key that is not in the tree is a no-op.
func (t *Trie[V]) Remove(key string) (V, bool) {
	old, ok := t.root.delete(key)
	if ok {
		t.size--
	}
	return old, ok
}

// StartsWith returns the entries whose key begins with prefix, in
// lexicographic order of the keys. An empty prefix returns every entry.
func (t *Trie[V]) StartsWith(prefix string) []Entry[V] {
	n, key := t.root.seek(prefix)
	if n == nil {
		return nil
	}
	return n.appendEntries(nil, key)
}

// ListOptions controls a delimited listing.
type ListOptions struct {
	// Delimiter groups keys: a key that contains Delimiter after the
	// listing prefix is reported only through its common prefix, which
	// ends with the first such Delimiter. Empty disables grouping.
	Delimiter string

	// Marker excludes every item that does not sort after it.
	Marker string

	// Limit caps the number of keys and common prefixes returned.
	// Zero or less means no limit.
	Limit int
}

// Listing is the result of a List call.
type Listing[V any] struct {
	Entries        []Entry[V]
	CommonPrefixes []string

	// Truncated is set when items were left out because of the limit.
	// NextMarker is then the last item returned, to be used as Marker
	// of the next call.
	Truncated  bool
	NextMarker string
}

// List returns the keys that start with prefix, grouping them by
// delimiter, in the manner of an object store listing.
func (t *Trie[V]) List(prefix string, opts ListOptions) Listing[V] {
	n, key := t.root.seek(prefix)
	if n == nil {
		return Listing[V]{}
	}
	return n.list(key, prefix, opts)
}

// Clone returns a copy of the tree that shares no nodes with t.
// The values are copied as by assignment.
func (t *Trie[V]) Clone() *Trie[V] {
	return &Trie[V]{root: *t.root.clone(), size: t.size}
}
