package rbtree

import "errors"

var (
	// ErrMissingChild is returned by a rotation when the child that would become the new
	// subtree root is absent.
	ErrMissingChild = errors.New("rotation requires a child that is missing")

	// ErrRootIsRed is reported when the root of a non-empty tree is red.
	ErrRootIsRed = errors.New("root is red")

	// ErrConsecutiveReds is reported when a red node has a red child.
	ErrConsecutiveReds = errors.New("red node has a red child")

	// ErrBlackHeightMismatch is reported when two paths below a node cross a different
	// number of black nodes.
	ErrBlackHeightMismatch = errors.New("black height mismatch")

	// ErrOrdering is reported when a key is on the wrong side of one of its ancestors.
	ErrOrdering = errors.New("keys out of order")
)
