package rbtree

import (
	"github.com/amp-labs/amp-rbtree/assert"
	"github.com/amp-labs/amp-rbtree/maps"
	"github.com/amp-labs/amp-rbtree/optional"
	"github.com/amp-labs/amp-rbtree/sortable"
)

// Tree is an ordered map from K to V. The zero value is an empty tree ready to use.
type Tree[K sortable.Sortable[K], V any] struct {
	root *node[K, V]
	size int
}

var _ maps.SortedMap[sortable.Int, string] = (*Tree[sortable.Int, string])(nil)

// New returns an empty tree.
func New[K sortable.Sortable[K], V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Clear removes every key.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Height returns the number of nodes on the longest path from the root to a leaf.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K sortable.Sortable[K], V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.smaller), height(n.larger))
}

// Insert stores value under key. If the key was present its previous value is returned
// and the shape of the tree is left alone.
func (t *Tree[K, V]) Insert(key K, value V) optional.Value[V] {
	if t.root == nil {
		t.root = newNode(key, value, black)
		t.size++

		return optional.None[V]()
	}

	old, sig := t.root.insert(key, value, true)

	switch sig {
	case clean:
	case rotateLeft, rotateRight:
		rotated, err := t.root.rotate(sig)
		assert.NoError(err, "rotating root %v", t.root.key)

		rotated.color = black
		t.root = rotated
	default:
		assert.Unreachable("insert signal %s reached the root", sig)
	}

	if old.Empty() {
		t.size++
	}

	return old
}
