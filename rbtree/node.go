package rbtree

import (
	"fmt"

	"github.com/amp-labs/amp-rbtree/optional"
	"github.com/amp-labs/amp-rbtree/sortable"
)

// color of a node. The zero value is red, which is what new nodes start as.
type color bool

const black, red color = true, false

func (c color) String() string {
	if c == black {
		return "Black"
	}

	return "Red"
}

// branch names one of the two child links of a node.
type branch byte

const (
	smaller branch = iota
	larger
)

func (b branch) String() string {
	switch b {
	case smaller:
		return "smaller"
	case larger:
		return "larger"
	default:
		return "unknown"
	}
}

// opposite returns the other branch.
func (b branch) opposite() branch {
	if b == smaller {
		return larger
	}

	return smaller
}

// node owns its key, value and both child subtrees.
type node[K sortable.Sortable[K], V any] struct {
	key     K
	value   V
	color   color
	smaller *node[K, V]
	larger  *node[K, V]
}

func newNode[K sortable.Sortable[K], V any](key K, value V, c color) *node[K, V] {
	return &node[K, V]{key: key, value: value, color: c}
}

func (n *node[K, V]) String() string {
	return fmt.Sprintf("(%v : %s)", n.key, n.color)
}

// isRed treats an absent node as black.
func (n *node[K, V]) isRed() bool {
	return n != nil && n.color == red
}

// branchFor returns the branch a key belongs under. The key must not equal n.key.
func (n *node[K, V]) branchFor(key K) branch {
	if key.LessThan(n.key) {
		return smaller
	}

	return larger
}

// link returns the slot holding the child on branch b.
func (n *node[K, V]) link(b branch) **node[K, V] {
	if b == smaller {
		return &n.smaller
	}

	return &n.larger
}

// child returns the child on branch b, which may be nil.
func (n *node[K, V]) child(b branch) *node[K, V] {
	return *n.link(b)
}

// swapValue stores value and returns the one it replaced.
func (n *node[K, V]) swapValue(value V) V {
	old := n.value
	n.value = value

	return old
}

// insertMerge places other, with its subtree, below n by key order without any
// rebalancing. If a node with other's key already exists its value is replaced by
// other's and the old value is returned; other is then discarded.
func (n *node[K, V]) insertMerge(other *node[K, V]) optional.Value[V] {
	curr := n

	for {
		if curr.key.Equals(other.key) {
			return optional.Some(curr.swapValue(other.value))
		}

		slot := curr.link(curr.branchFor(other.key))
		if *slot == nil {
			*slot = other

			return optional.None[V]()
		}

		curr = *slot
	}
}
