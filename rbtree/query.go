package rbtree

import (
	"github.com/amp-labs/amp-rbtree/maps"
	"github.com/amp-labs/amp-rbtree/optional"
	"github.com/amp-labs/amp-rbtree/sortable"
)

// lookup returns the node holding key, or nil.
func (t *Tree[K, V]) lookup(key K) *node[K, V] {
	curr := t.root

	for curr != nil {
		if curr.key.Equals(key) {
			return curr
		}

		curr = curr.child(curr.branchFor(key))
	}

	return nil
}

// Find returns the value stored under key.
func (t *Tree[K, V]) Find(key K) optional.Value[V] {
	n := t.lookup(key)
	if n == nil {
		return optional.None[V]()
	}

	return optional.Some(n.value)
}

// FindMut returns a pointer to the value stored under key. The pointer is only valid
// until the next Insert, Remove or Clear on the tree.
func (t *Tree[K, V]) FindMut(key K) optional.Value[*V] {
	n := t.lookup(key)
	if n == nil {
		return optional.None[*V]()
	}

	return optional.Some(&n.value)
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.lookup(key) != nil
}

func entryOf[K any, V any](key K, value V) maps.KeyValuePair[K, V] {
	return maps.KeyValuePair[K, V]{Key: key, Value: value}
}

func (t *Tree[K, V]) extreme(b branch) optional.Value[maps.KeyValuePair[K, V]] {
	if t.root == nil {
		return optional.None[maps.KeyValuePair[K, V]]()
	}

	curr := t.root
	for next := curr.child(b); next != nil; next = curr.child(b) {
		curr = next
	}

	return entryAt(curr)
}

// Smallest returns the entry with the least key.
func (t *Tree[K, V]) Smallest() optional.Value[maps.KeyValuePair[K, V]] {
	return t.extreme(smaller)
}

// Largest returns the entry with the greatest key.
func (t *Tree[K, V]) Largest() optional.Value[maps.KeyValuePair[K, V]] {
	return t.extreme(larger)
}

// Smaller returns the entry with the greatest key strictly less than key.
// key does not have to be present.
func (t *Tree[K, V]) Smaller(key K) optional.Value[maps.KeyValuePair[K, V]] {
	var candidate *node[K, V]

	for curr := t.root; curr != nil; {
		if curr.key.LessThan(key) {
			candidate = curr
			curr = curr.larger
		} else {
			curr = curr.smaller
		}
	}

	return entryAt(candidate)
}

// Larger returns the entry with the least key strictly greater than key.
// key does not have to be present.
func (t *Tree[K, V]) Larger(key K) optional.Value[maps.KeyValuePair[K, V]] {
	var candidate *node[K, V]

	for curr := t.root; curr != nil; {
		if key.LessThan(curr.key) {
			candidate = curr
			curr = curr.smaller
		} else {
			curr = curr.larger
		}
	}

	return entryAt(candidate)
}

func entryAt[K sortable.Sortable[K], V any](n *node[K, V]) optional.Value[maps.KeyValuePair[K, V]] {
	if n == nil {
		return optional.None[maps.KeyValuePair[K, V]]()
	}

	return optional.Some(entryOf(n.key, n.value))
}
