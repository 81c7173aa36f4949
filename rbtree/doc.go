// Package rbtree implements an ordered key-value map as a red-black tree.
//
// The tree keeps these rules after every insert:
//  1. Keys in a node's smaller subtree sort before its key, keys in the larger subtree after.
//  2. A red node never has a red child.
//  3. The root is black.
//  4. Every path from a node down to an absent child crosses the same number of black nodes.
//
// Insertion rebalances bottom-up: each level of the recursion returns a signal telling its
// parent whether to recolor, rotate or do nothing. Removal is a plain binary search tree
// removal followed by blackening the root, so rules 2 and 4 can be broken by it while rule 1
// always holds. CheckRules and Audit report the current state of the rules.
//
// A Tree is not safe for concurrent use. Wrap it with maps.NewThreadSafe when several
// goroutines share it.
package rbtree
