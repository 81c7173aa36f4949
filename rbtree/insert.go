package rbtree

import (
	"github.com/amp-labs/amp-rbtree/assert"
	"github.com/amp-labs/amp-rbtree/optional"
)

// signal tells the parent what is left to do after an insert returned from a subtree.
type signal uint8

const (
	// clean means the subtree satisfies the rules.
	clean signal = iota
	// colorChanged means the subtree root turned red.
	colorChanged
	// conflict means the subtree root is red and so is the child just inserted into.
	conflict
	// rotateLeft asks the parent to rotate the returning child left.
	rotateLeft
	// rotateRight asks the parent to rotate the returning child right.
	rotateRight
)

func (s signal) String() string {
	switch s {
	case clean:
		return "clean"
	case colorChanged:
		return "colorChanged"
	case conflict:
		return "conflict"
	case rotateLeft:
		return "rotateLeft"
	case rotateRight:
		return "rotateRight"
	default:
		return "unknown"
	}
}

// insert places key below n and reports what n's parent must do next.
func (n *node[K, V]) insert(key K, value V, isRoot bool) (optional.Value[V], signal) {
	if n.key.Equals(key) {
		return optional.Some(n.swapValue(value)), clean
	}

	b := n.branchFor(key)
	slot := n.link(b)

	if *slot == nil {
		*slot = newNode(key, value, red)

		if n.color == black {
			return optional.None[V](), clean
		}

		return optional.None[V](), conflict
	}

	old, sig := (*slot).insert(key, value, false)

	switch sig {
	case clean:
		return old, clean
	case colorChanged:
		if !isRoot && n.color == red {
			return old, conflict
		}

		return old, clean
	case conflict:
		return old, n.resolveConflict(b, isRoot)
	case rotateLeft, rotateRight:
		n.rotateChild(b, sig)

		return old, clean
	default:
		assert.Unreachable("unknown insert signal %d", sig)

		return old, clean
	}
}

// resolveConflict handles a red-red pair on branch b below n. A red uncle is fixed by
// recoloring; otherwise n asks its parent for a rotation toward the uncle.
func (n *node[K, V]) resolveConflict(b branch, isRoot bool) signal {
	uncle := n.child(b.opposite())

	if uncle.isRed() {
		uncle.color = black
		n.child(b).color = black

		if isRoot {
			return clean
		}

		n.color = red

		return colorChanged
	}

	if b == smaller {
		return rotateRight
	}

	return rotateLeft
}
