package rbtree

import (
	"fmt"

	amperrors "github.com/amp-labs/amp-rbtree/errors"
	"github.com/amp-labs/amp-rbtree/sortable"
)

// auditLimit caps how many violations Audit keeps.
const auditLimit = 64

// bounds are the exclusive key limits inherited from a node's ancestors.
type bounds[K sortable.Sortable[K]] struct {
	lo, hi       K
	hasLo, hasHi bool
}

func (b bounds[K]) contains(key K) bool {
	if b.hasLo && !b.lo.LessThan(key) {
		return false
	}

	if b.hasHi && !key.LessThan(b.hi) {
		return false
	}

	return true
}

func (b bounds[K]) below(key K) bounds[K] {
	b.hi, b.hasHi = key, true

	return b
}

func (b bounds[K]) above(key K) bounds[K] {
	b.lo, b.hasLo = key, true

	return b
}

// CheckRules verifies the ordering and coloring rules and returns the black height of the
// tree: the number of black nodes on any path from the root to an absent child. The first
// violation found is returned as an error wrapping ErrRootIsRed, ErrConsecutiveReds,
// ErrBlackHeightMismatch or ErrOrdering.
func (t *Tree[K, V]) CheckRules() (int, error) {
	if t.root == nil {
		return 0, nil
	}

	if t.root.color == red {
		return 0, fmt.Errorf("%w: root %v", ErrRootIsRed, t.root.key)
	}

	return checkNode(t.root, bounds[K]{})
}

func checkNode[K sortable.Sortable[K], V any](n *node[K, V], within bounds[K]) (int, error) {
	if n == nil {
		return 0, nil
	}

	if !within.contains(n.key) {
		return 0, fmt.Errorf("%w: key %v", ErrOrdering, n.key)
	}

	if n.color == red && (n.smaller.isRed() || n.larger.isRed()) {
		return 0, fmt.Errorf("%w: key %v", ErrConsecutiveReds, n.key)
	}

	left, err := checkNode(n.smaller, within.below(n.key))
	if err != nil {
		return 0, err
	}

	right, err := checkNode(n.larger, within.above(n.key))
	if err != nil {
		return 0, err
	}

	if left != right {
		return 0, fmt.Errorf("%w: key %v (smaller %d, larger %d)", ErrBlackHeightMismatch, n.key, left, right)
	}

	if n.color == black {
		return left + 1, nil
	}

	return left, nil
}

// Audit scans the whole tree and reports every violation it finds, unlike CheckRules which
// stops at the first. It returns nil for a tree that follows the rules.
func (t *Tree[K, V]) Audit() error {
	errs := amperrors.NewCollection(auditLimit)

	if t.root.isRed() {
		errs.Add(fmt.Errorf("%w: root %v", ErrRootIsRed, t.root.key))
	}

	auditNode(t.root, bounds[K]{}, errs)

	return errs.GetError()
}

// auditNode records the violations at and below n and returns the black height of n's
// subtree. On a mismatch the taller side is used.
func auditNode[K sortable.Sortable[K], V any](n *node[K, V], within bounds[K], errs *amperrors.Collection) int {
	if n == nil {
		return 0
	}

	if !within.contains(n.key) {
		errs.Add(fmt.Errorf("%w: key %v", ErrOrdering, n.key))
	}

	if n.color == red && (n.smaller.isRed() || n.larger.isRed()) {
		errs.Add(fmt.Errorf("%w: key %v", ErrConsecutiveReds, n.key))
	}

	left := auditNode(n.smaller, within.below(n.key), errs)
	right := auditNode(n.larger, within.above(n.key), errs)

	if left != right {
		errs.Add(fmt.Errorf("%w: key %v (smaller %d, larger %d)", ErrBlackHeightMismatch, n.key, left, right))
	}

	h := max(left, right)
	if n.color == black {
		h++
	}

	return h
}
