package maps

import (
	"iter"
	"sync"

	"github.com/amp-labs/amp-rbtree/optional"
)

// ThreadSafeSortedMap guards a SortedMap with a sync.RWMutex. Mutations take the write
// lock and queries the read lock. Sequences iterate over a snapshot taken under the read
// lock, so the yield function may call back into the map.
//
// FindMut is not offered because the pointer would outlive the lock; use Update instead.
type ThreadSafeSortedMap[K any, V any] struct {
	mutex    sync.RWMutex
	internal SortedMap[K, V]
}

// NewThreadSafe wraps m. A nil m yields nil.
func NewThreadSafe[K any, V any](m SortedMap[K, V]) *ThreadSafeSortedMap[K, V] {
	if m == nil {
		return nil
	}

	return &ThreadSafeSortedMap[K, V]{internal: m}
}

func (t *ThreadSafeSortedMap[K, V]) Insert(key K, value V) optional.Value[V] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Insert(key, value)
}

func (t *ThreadSafeSortedMap[K, V]) Remove(key K) optional.Value[V] {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(key)
}

// Update calls fn with a pointer to the value under key while holding the write lock.
// It returns false, without calling fn, if key is absent.
func (t *ThreadSafeSortedMap[K, V]) Update(key K, fn func(value *V)) bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	ptr, ok := t.internal.FindMut(key).Get()
	if !ok {
		return false
	}

	fn(ptr)

	return true
}

func (t *ThreadSafeSortedMap[K, V]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

func (t *ThreadSafeSortedMap[K, V]) Find(key K) optional.Value[V] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Find(key)
}

func (t *ThreadSafeSortedMap[K, V]) Contains(key K) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(key)
}

func (t *ThreadSafeSortedMap[K, V]) Smallest() optional.Value[KeyValuePair[K, V]] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Smallest()
}

func (t *ThreadSafeSortedMap[K, V]) Largest() optional.Value[KeyValuePair[K, V]] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Largest()
}

func (t *ThreadSafeSortedMap[K, V]) Smaller(key K) optional.Value[KeyValuePair[K, V]] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Smaller(key)
}

func (t *ThreadSafeSortedMap[K, V]) Larger(key K) optional.Value[KeyValuePair[K, V]] {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Larger(key)
}

func (t *ThreadSafeSortedMap[K, V]) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Len()
}

// All returns a snapshot of the entries in ascending order.
func (t *ThreadSafeSortedMap[K, V]) All() iter.Seq2[K, V] {
	return t.snapshot(func(m SortedMap[K, V]) iter.Seq2[K, V] { return m.All() })
}

// Backward returns a snapshot of the entries in descending order.
func (t *ThreadSafeSortedMap[K, V]) Backward() iter.Seq2[K, V] {
	return t.snapshot(func(m SortedMap[K, V]) iter.Seq2[K, V] { return m.Backward() })
}

// Range returns a snapshot of the entries with from <= key < to.
func (t *ThreadSafeSortedMap[K, V]) Range(from, to K) iter.Seq2[K, V] {
	return t.snapshot(func(m SortedMap[K, V]) iter.Seq2[K, V] { return m.Range(from, to) })
}

func (t *ThreadSafeSortedMap[K, V]) snapshot(source func(SortedMap[K, V]) iter.Seq2[K, V]) iter.Seq2[K, V] {
	t.mutex.RLock()

	var entries []KeyValuePair[K, V]
	for key, val := range source(t.internal) {
		entries = append(entries, KeyValuePair[K, V]{Key: key, Value: val})
	}

	t.mutex.RUnlock()

	return func(yield func(K, V) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}
