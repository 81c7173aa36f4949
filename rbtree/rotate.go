package rbtree

import "github.com/amp-labs/amp-rbtree/assert"

// rotateLeft promotes n.larger (or, when n.larger.smaller is red, that inner grandchild)
// to the subtree root. The new root is colored black and n red. On ErrMissingChild the
// returned node is n, unchanged.
func (n *node[K, V]) rotateLeft() (*node[K, V], error) {
	if n.larger == nil {
		return n, ErrMissingChild
	}

	n.color = red
	up := n.larger

	if up.smaller.isRed() {
		inner := up.smaller
		up.smaller = inner.larger
		inner.larger = up
		up = inner
	}

	n.larger = up.smaller
	up.smaller = n
	up.color = black

	return up, nil
}

// rotateRight mirrors rotateLeft.
func (n *node[K, V]) rotateRight() (*node[K, V], error) {
	if n.smaller == nil {
		return n, ErrMissingChild
	}

	n.color = red
	up := n.smaller

	if up.larger.isRed() {
		inner := up.larger
		up.larger = inner.smaller
		inner.smaller = up
		up = inner
	}

	n.smaller = up.larger
	up.larger = n
	up.color = black

	return up, nil
}

// rotate dispatches on a rotate signal. Any other signal is a programmer error.
func (n *node[K, V]) rotate(sig signal) (*node[K, V], error) {
	switch sig {
	case rotateLeft:
		return n.rotateLeft()
	case rotateRight:
		return n.rotateRight()
	default:
		assert.Unreachable("rotate called with signal %s", sig)

		return n, nil
	}
}

// rotateChild rotates the child on branch b and stores the new subtree root in its place.
func (n *node[K, V]) rotateChild(b branch, sig signal) {
	slot := n.link(b)

	rotated, err := (*slot).rotate(sig)
	assert.NoError(err, "rotating %s child of %v", b, n.key)

	*slot = rotated
}
