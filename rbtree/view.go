package rbtree

import "github.com/amp-labs/amp-rbtree/sortable"

// View is a read-only handle on one node, for formatters that need the tree's shape.
// The zero View stands for an absent node. A View must not be used after the tree
// is modified.
type View[K sortable.Sortable[K], V any] struct {
	n *node[K, V]
}

// Root returns a view of the root node.
func (t *Tree[K, V]) Root() View[K, V] {
	return View[K, V]{n: t.root}
}

// Valid reports whether the view refers to a node.
func (v View[K, V]) Valid() bool {
	return v.n != nil
}

// Key returns the node's key. It panics on an invalid view.
func (v View[K, V]) Key() K {
	return v.n.key
}

// Value returns the node's value. It panics on an invalid view.
func (v View[K, V]) Value() V {
	return v.n.value
}

// Red reports whether the node is red. Absent nodes are black.
func (v View[K, V]) Red() bool {
	return v.n.isRed()
}

// Smaller returns a view of the smaller child.
func (v View[K, V]) Smaller() View[K, V] {
	if v.n == nil {
		return View[K, V]{}
	}

	return View[K, V]{n: v.n.smaller}
}

// Larger returns a view of the larger child.
func (v View[K, V]) Larger() View[K, V] {
	if v.n == nil {
		return View[K, V]{}
	}

	return View[K, V]{n: v.n.larger}
}
