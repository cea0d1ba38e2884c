package radix

import "sync"

// Locked is a Trie guarded by a single read-write mutex, for trees shared
// between goroutines. Every call runs as a whole under the lock.
// The zero value is an empty tree ready to use.
type Locked[V any] struct {
	lock sync.RWMutex // protect the trie
	trie Trie[V]
}

// NewLocked returns a new, empty locked radix tree.
func NewLocked[V any]() *Locked[V] {
	return &Locked[V]{}
}

// Len returns the number of keys stored in the tree.
func (l *Locked[V]) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.trie.Len()
}

// Insert puts a value in the tree, see Trie.Insert.
func (l *Locked[V]) Insert(key string, value V) (V, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.trie.Insert(key, value)
}

// Find searches for a particular key in the tree.
func (l *Locked[V]) Find(key string) (V, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.trie.Find(key)
}

// Update calls fn with a pointer to the value stored under key while
// holding the write lock. It reports whether key was found; fn is not
// called otherwise.
func (l *Locked[V]) Update(key string, fn func(value *V)) bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	v := l.trie.FindMut(key)
	if v == nil {
		return false
	}
	fn(v)
	return true
}

// Remove deletes key from the tree and returns its value.
func (l *Locked[V]) Remove(key string) (V, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.trie.Remove(key)
}

// StartsWith returns the entries whose key begins with prefix.
func (l *Locked[V]) StartsWith(prefix string) []Entry[V] {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.trie.StartsWith(prefix)
}

// List returns a delimited listing of the keys under prefix.
func (l *Locked[V]) List(prefix string, opts ListOptions) Listing[V] {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.trie.List(prefix, opts)
}

// Stats returns statistics about the tree.
func (l *Locked[V]) Stats() Stats {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.trie.Stats()
}

// Snapshot returns a copy of the tree. The values are copied as by
// assignment.
func (l *Locked[V]) Snapshot() *Trie[V] {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.trie.Clone()
}
