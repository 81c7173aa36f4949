package soak

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/amp-labs/amp-rbtree/maps"
	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/stretchr/testify/assert"
)

func TestTally_Concurrent(t *testing.T) {
	t.Parallel()

	r := &run{drawn: maps.NewThreadSafe[sortable.Int, int](rbtree.New[sortable.Int, int]())}

	const goroutines, rounds = 16, 100

	var wg sync.WaitGroup

	for range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for k := range rounds {
				r.tally(sortable.Int(k % 10))
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 10, r.drawn.Len())

	for _, count := range r.drawn.All() {
		assert.Equal(t, goroutines*rounds/10, count)
	}
}

func TestDrawKeys_Distinct(t *testing.T) {
	t.Parallel()

	keys := drawKeys(rand.New(rand.NewPCG(5, 0)), 50, 50) //nolint:gosec

	assert.Len(t, keys, 50)

	seen := map[int]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %d", k)
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 50)

		seen[k] = true
	}
}
