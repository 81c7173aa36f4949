package rbtree

import (
	"iter"

	"github.com/amp-labs/amp-rbtree/sortable"
)

// visitor is called for each node of a walk. Returning false stops the walk.
type visitor[K sortable.Sortable[K], V any] func(n *node[K, V]) bool

func walkAsc[K sortable.Sortable[K], V any](n *node[K, V], visit visitor[K, V]) bool {
	if n == nil {
		return true
	}

	return walkAsc(n.smaller, visit) && visit(n) && walkAsc(n.larger, visit)
}

func walkDesc[K sortable.Sortable[K], V any](n *node[K, V], visit visitor[K, V]) bool {
	if n == nil {
		return true
	}

	return walkDesc(n.larger, visit) && visit(n) && walkDesc(n.smaller, visit)
}

func walkTopDown[K sortable.Sortable[K], V any](n *node[K, V], visit visitor[K, V]) bool {
	if n == nil {
		return true
	}

	return visit(n) && walkTopDown(n.smaller, visit) && walkTopDown(n.larger, visit)
}

// walkRange visits, in ascending order, the nodes with from <= key < to.
// Subtrees that lie wholly outside the range are skipped.
func walkRange[K sortable.Sortable[K], V any](n *node[K, V], from, to K, visit visitor[K, V]) bool {
	if n == nil {
		return true
	}

	aboveFrom := !n.key.LessThan(from)
	belowTo := n.key.LessThan(to)

	if aboveFrom && !walkRange(n.smaller, from, to, visit) {
		return false
	}

	if aboveFrom && belowTo && !visit(n) {
		return false
	}

	if belowTo {
		return walkRange(n.larger, from, to, visit)
	}

	return true
}

func seq[K sortable.Sortable[K], V any](walk func(visitor[K, V]) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(func(n *node[K, V]) bool {
			return yield(n.key, n.value)
		})
	}
}

// TraverseAsc calls fn for every entry in ascending key order.
func (t *Tree[K, V]) TraverseAsc(fn func(key K, value V)) {
	walkAsc(t.root, func(n *node[K, V]) bool {
		fn(n.key, n.value)

		return true
	})
}

// TraverseTopDown calls fn for every entry in pre-order: a node, then its smaller
// subtree, then its larger subtree.
func (t *Tree[K, V]) TraverseTopDown(fn func(key K, value V)) {
	walkTopDown(t.root, func(n *node[K, V]) bool {
		fn(n.key, n.value)

		return true
	})
}

// All returns the entries in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return seq(func(v visitor[K, V]) bool { return walkAsc(t.root, v) })
}

// Backward returns the entries in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return seq(func(v visitor[K, V]) bool { return walkDesc(t.root, v) })
}

// TopDown returns the entries in the same order as TraverseTopDown.
func (t *Tree[K, V]) TopDown() iter.Seq2[K, V] {
	return seq(func(v visitor[K, V]) bool { return walkTopDown(t.root, v) })
}

// Range returns, in ascending order, the entries whose key is at least from and less than to.
func (t *Tree[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return seq(func(v visitor[K, V]) bool { return walkRange(t.root, from, to, v) })
}
