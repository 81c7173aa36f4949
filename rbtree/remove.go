package rbtree

import (
	"github.com/amp-labs/amp-rbtree/assert"
	"github.com/amp-labs/amp-rbtree/optional"
)

// Remove deletes key and returns its value. Nothing is rebalanced afterwards apart from
// coloring the root black.
func (t *Tree[K, V]) Remove(key K) optional.Value[V] {
	if t.root == nil {
		return optional.None[V]()
	}

	var old optional.Value[V]

	if t.root.key.Equals(key) {
		var value V

		t.root, value = t.root.unlink()
		old = optional.Some(value)
	} else {
		old = t.root.remove(key)
	}

	if old.Empty() {
		return old
	}

	t.size--

	if t.root != nil {
		t.root.color = black
	}

	return old
}

// remove deletes key from the subtree below n. n itself must not hold key.
func (n *node[K, V]) remove(key K) optional.Value[V] {
	parent := n

	for {
		b := parent.branchFor(key)
		child := parent.child(b)

		switch {
		case child == nil:
			return optional.None[V]()
		case child.key.Equals(key):
			return optional.Some(parent.removeChild(b))
		default:
			parent = child
		}
	}
}

// removeChild deletes the child on branch b and returns its value.
func (n *node[K, V]) removeChild(b branch) V {
	slot := n.link(b)
	assert.True(*slot != nil, "removing absent %s child of %v", b, n.key)

	replacement, value := (*slot).unlink()
	*slot = replacement

	return value
}

// unlink takes n out of its subtree. It returns the node that should occupy n's slot and
// the value n held. With two children n stays in place and takes over the key and value
// of its in-order successor.
func (n *node[K, V]) unlink() (*node[K, V], V) {
	switch {
	case n.smaller == nil:
		return n.larger, n.value
	case n.larger == nil:
		return n.smaller, n.value
	}

	succ := n.detachSuccessor()
	old := n.value
	n.key, n.value = succ.key, succ.value

	return n, old
}

// detachSuccessor removes the leftmost node of n.larger and returns it. Its larger child
// takes its place.
func (n *node[K, V]) detachSuccessor() *node[K, V] {
	assert.True(n.larger != nil, "successor of %v requested without a larger subtree", n.key)

	slot := &n.larger
	for (*slot).smaller != nil {
		slot = &(*slot).smaller
	}

	succ := *slot
	*slot = succ.larger
	succ.larger = nil

	return succ
}
