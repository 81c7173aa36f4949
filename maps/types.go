// Package maps defines the ordered map contract implemented by rbtree.Tree and a
// decorator that makes any implementation safe for concurrent use.
package maps

import (
	"iter"

	"github.com/amp-labs/amp-rbtree/optional"
)

// KeyValuePair is one entry of a map.
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// SortedMap is a map that keeps its keys in order and answers neighbor queries.
// Absent keys are reported with optional.None, never with an error.
//
// Implementations are not safe for concurrent use unless documented otherwise.
//
//nolint:interfacebloat
type SortedMap[K any, V any] interface {
	// Insert stores value under key and returns the value it replaced, if any.
	Insert(key K, value V) optional.Value[V]

	// Remove deletes key and returns its value, if it was present.
	Remove(key K) optional.Value[V]

	// Find returns the value stored under key.
	Find(key K) optional.Value[V]

	// FindMut returns a pointer to the value stored under key, valid until the next mutation.
	FindMut(key K) optional.Value[*V]

	// Contains reports whether key is present.
	Contains(key K) bool

	// Smallest and Largest return the entries with the least and greatest keys.
	Smallest() optional.Value[KeyValuePair[K, V]]
	Largest() optional.Value[KeyValuePair[K, V]]

	// Smaller returns the entry with the greatest key strictly less than key, and Larger
	// the entry with the least key strictly greater. key need not be present.
	Smaller(key K) optional.Value[KeyValuePair[K, V]]
	Larger(key K) optional.Value[KeyValuePair[K, V]]

	// Len returns the number of entries.
	Len() int

	// Clear removes every entry.
	Clear()

	// All and Backward range over the entries in ascending and descending key order.
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]

	// Range yields, in ascending order, the entries with from <= key < to.
	Range(from, to K) iter.Seq2[K, V]
}
