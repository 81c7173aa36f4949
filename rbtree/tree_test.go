package rbtree_test

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, keys ...int) *rbtree.Tree[sortable.Int, string] {
	t.Helper()

	tree := rbtree.New[sortable.Int, string]()

	for _, k := range keys {
		tree.Insert(sortable.Int(k), strconv.Itoa(k))

		_, err := tree.CheckRules()
		require.NoError(t, err, "after inserting %d", k)
	}

	return tree
}

func keysOf(tree *rbtree.Tree[sortable.Int, string]) []int {
	var out []int
	for k := range tree.All() {
		out = append(out, int(k))
	}

	return out
}

func TestTree_Empty(t *testing.T) {
	t.Parallel()

	var tree rbtree.Tree[sortable.Int, string]

	assert.Zero(t, tree.Len())
	assert.Zero(t, tree.Height())
	assert.False(t, tree.Contains(1))
	assert.True(t, tree.Find(1).Empty())
	assert.True(t, tree.FindMut(1).Empty())
	assert.True(t, tree.Smallest().Empty())
	assert.True(t, tree.Largest().Empty())
	assert.True(t, tree.Smaller(1).Empty())
	assert.True(t, tree.Larger(1).Empty())
	assert.True(t, tree.Remove(1).Empty())
	assert.False(t, tree.Root().Valid())

	height, err := tree.CheckRules()
	require.NoError(t, err)
	assert.Zero(t, height)
	require.NoError(t, tree.Audit())
}

func TestTree_SampleKeys(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, 10, 20, 5, 15, 25, 3, 8)

	assert.Equal(t, 7, tree.Len())
	assert.Equal(t, []int{3, 5, 8, 10, 15, 20, 25}, keysOf(tree))

	smallest := tree.Smallest().GetOrPanic()
	assert.Equal(t, sortable.Int(3), smallest.Key)
	assert.Equal(t, "3", smallest.Value)

	largest := tree.Largest().GetOrPanic()
	assert.Equal(t, sortable.Int(25), largest.Key)
	assert.Equal(t, "25", largest.Value)

	pred := tree.Smaller(10).GetOrPanic()
	assert.Equal(t, sortable.Int(8), pred.Key)
	assert.Equal(t, "8", pred.Value)

	succ := tree.Larger(10).GetOrPanic()
	assert.Equal(t, sortable.Int(15), succ.Key)
	assert.Equal(t, "15", succ.Value)

	assert.True(t, tree.Root().Valid())
	assert.False(t, tree.Root().Red())
}

func TestTree_InsertReplaces(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, 1, 2, 3)
	before := tree.Root().Key()

	assert.True(t, tree.Insert(7, "a").Empty())
	assert.Equal(t, "a", tree.Insert(7, "b").GetOrPanic())
	assert.Equal(t, "b", tree.Find(7).GetOrPanic())
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, before, tree.Root().Key())
}

func TestTree_FindMut(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, 4, 2, 6)

	ptr := tree.FindMut(2).GetOrPanic()
	*ptr = "two"

	assert.Equal(t, "two", tree.Find(2).GetOrPanic())
}

func TestTree_Ascending(t *testing.T) {
	t.Parallel()

	var want []int

	tree := rbtree.New[sortable.Int, string]()

	for k := 1; k <= 100; k++ {
		tree.Insert(sortable.Int(k), strconv.Itoa(k))

		_, err := tree.CheckRules()
		require.NoError(t, err, "after inserting %d", k)

		want = append(want, k)
	}

	assert.Equal(t, want, keysOf(tree))

	var values []string
	tree.TraverseAsc(func(_ sortable.Int, v string) { values = append(values, v) })

	require.Len(t, values, 100)
	assert.Equal(t, "1", values[0])
	assert.Equal(t, "100", values[99])

	// A red-black tree with n nodes is at most 2*log2(n+1) high.
	assert.LessOrEqual(t, tree.Height(), 13)
}

func TestTree_Neighbors(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec
	keys := rng.Perm(200)

	tree := buildTree(t, keys...)
	slices.Sort(keys)

	for i, k := range keys {
		pred := tree.Smaller(sortable.Int(k))
		succ := tree.Larger(sortable.Int(k))

		if i == 0 {
			assert.True(t, pred.Empty())
		} else {
			assert.Equal(t, sortable.Int(keys[i-1]), pred.GetOrPanic().Key)
		}

		if i == len(keys)-1 {
			assert.True(t, succ.Empty())
		} else {
			assert.Equal(t, sortable.Int(keys[i+1]), succ.GetOrPanic().Key)
		}
	}
}

func TestTree_NeighborsOfAbsentKeys(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, 10, 20, 30)

	assert.Equal(t, sortable.Int(20), tree.Smaller(25).GetOrPanic().Key)
	assert.Equal(t, sortable.Int(30), tree.Larger(25).GetOrPanic().Key)
	assert.True(t, tree.Smaller(5).Empty())
	assert.True(t, tree.Larger(35).Empty())
	assert.Equal(t, sortable.Int(30), tree.Smaller(99).GetOrPanic().Key)
}

func TestTree_Remove(t *testing.T) {
	t.Parallel()

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()

		tree := buildTree(t, 10, 20, 5)

		assert.True(t, tree.Remove(7).Empty())
		assert.Equal(t, []int{5, 10, 20}, keysOf(tree))
		assert.Equal(t, 3, tree.Len())
	})

	t.Run("leaf", func(t *testing.T) {
		t.Parallel()

		tree := buildTree(t, 10, 20, 5)

		assert.Equal(t, "5", tree.Remove(5).GetOrPanic())
		assert.Equal(t, []int{10, 20}, keysOf(tree))
	})

	t.Run("root with two children", func(t *testing.T) {
		t.Parallel()

		tree := buildTree(t, 10, 20, 5, 15, 25, 3, 8)
		root := tree.Root().Key()

		assert.Equal(t, strconv.Itoa(int(root)), tree.Remove(root).GetOrPanic())
		assert.False(t, tree.Contains(root))
		assert.Equal(t, 6, tree.Len())
		assert.False(t, tree.Root().Red())
		require.NotErrorIs(t, tree.Audit(), rbtree.ErrOrdering)
	})

	t.Run("last key", func(t *testing.T) {
		t.Parallel()

		tree := buildTree(t, 1)

		assert.Equal(t, "1", tree.Remove(1).GetOrPanic())
		assert.Zero(t, tree.Len())
		assert.False(t, tree.Root().Valid())
	})

	t.Run("successor keeps its larger child", func(t *testing.T) {
		t.Parallel()

		tree := buildTree(t, 10, 5, 20, 15, 30, 17)

		tree.Remove(10)

		assert.Equal(t, []int{5, 15, 17, 20, 30}, keysOf(tree))
	})
}

func TestTree_RandomInsertRemove(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 7)) //nolint:gosec
	keys := rng.Perm(2000)

	tree := buildTree(t, keys...)
	assert.Equal(t, len(keys), tree.Len())

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	for i, k := range keys {
		key := sortable.Int(k)

		assert.Equal(t, strconv.Itoa(k), tree.Remove(key).GetOrPanic())
		assert.False(t, tree.Contains(key))
		assert.True(t, tree.Remove(key).Empty())
		assert.Equal(t, len(keys)-i-1, tree.Len())

		if i%100 == 0 {
			remaining := keysOf(tree)
			assert.True(t, slices.IsSorted(remaining))
			assert.Len(t, remaining, tree.Len())
		}
	}

	assert.False(t, tree.Root().Valid())
}

func TestTree_InsertAfterRemove(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 3)) //nolint:gosec
	tree := rbtree.New[sortable.Int, string]()

	for range 5000 {
		k := rng.IntN(300)
		if rng.IntN(3) == 0 {
			tree.Remove(sortable.Int(k))
		} else {
			tree.Insert(sortable.Int(k), strconv.Itoa(k))
		}

		assert.False(t, tree.Root().Red())
	}

	assert.True(t, slices.IsSorted(keysOf(tree)))
	assert.NotErrorIs(t, tree.Audit(), rbtree.ErrOrdering)
	assert.NotErrorIs(t, tree.Audit(), rbtree.ErrRootIsRed)
}

func TestTree_Clear(t *testing.T) {
	t.Parallel()

	tree := buildTree(t, 1, 2, 3)
	tree.Clear()

	assert.Zero(t, tree.Len())
	assert.Empty(t, keysOf(tree))

	tree.Insert(4, "4")
	assert.Equal(t, []int{4}, keysOf(tree))
}

func buildNatural(keys ...string) *rbtree.Tree[sortable.NaturalString, int] {
	tree := rbtree.New[sortable.NaturalString, int]()
	for i, k := range keys {
		tree.Insert(sortable.NaturalString(k), i)
	}

	return tree
}

func TestTree_NaturalKeysWithLongNumbers(t *testing.T) {
	t.Parallel()

	keys := []sortable.NaturalString{
		"100000000000000000000", "10", "99", "5", "50", "7", "200000000000000000000", "2", "3", "1",
	}
	rng := rand.New(rand.NewPCG(11, 13)) //nolint:gosec

	for trial := range 500 {
		order := slices.Clone(keys)
		if trial > 0 {
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		tree := rbtree.New[sortable.NaturalString, string]()
		for _, k := range order {
			tree.Insert(k, string(k))
		}

		_, err := tree.CheckRules()
		require.NoError(t, err, "order %v", order)
		require.Equal(t, len(keys), tree.Len())

		for _, k := range keys {
			require.True(t, tree.Contains(k), "key %s lost for order %v", k, order)
		}
	}
}
