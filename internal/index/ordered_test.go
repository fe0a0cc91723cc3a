package index

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	key   string
	value int
}

func comparePairs(a, b pair) int {
	return cmp.Compare(a.key, b.key)
}

func TestOrdered_Insert(t *testing.T) {
	t.Run("rejects duplicate key", func(t *testing.T) {
		tree := NewOrdered(comparePairs)
		require.True(t, tree.Insert(pair{"b", 1}))
		assert.False(t, tree.Insert(pair{"b", 2}))
		assert.Equal(t, 1, tree.Len())

		got, ok := tree.Find(pair{key: "b"})
		require.True(t, ok)
		assert.Equal(t, 1, got.value, "first insert must win")
	})

	t.Run("keeps distinct keys", func(t *testing.T) {
		tree := NewOrdered(cmp.Compare[int])
		for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
			require.True(t, tree.Insert(v))
		}
		assert.Equal(t, 7, tree.Len())
		assert.Equal(t, 3, tree.Depth())
	})
}

func TestOrdered_Find(t *testing.T) {
	tree := NewOrdered(cmp.Compare[int])
	for _, v := range []int{20, 10, 30, 25} {
		tree.Insert(v)
	}

	for _, v := range []int{20, 10, 30, 25} {
		got, ok := tree.Find(v)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}

	_, ok := tree.Find(11)
	assert.False(t, ok)

	_, ok = NewOrdered(cmp.Compare[int]).Find(1)
	assert.False(t, ok)
}

func TestOrdered_All(t *testing.T) {
	t.Run("ascending and restartable", func(t *testing.T) {
		tree := NewOrdered(cmp.Compare[int])
		input := []int{50, 20, 70, 10, 30, 60, 80, 25}
		for _, v := range input {
			tree.Insert(v)
		}

		first := slices.Collect(tree.All())
		second := slices.Collect(tree.All())

		want := slices.Clone(input)
		slices.Sort(want)
		assert.Equal(t, want, first)
		assert.Equal(t, first, second)
		assert.True(t, slices.IsSorted(first))
	})

	t.Run("stops early", func(t *testing.T) {
		tree := NewOrdered(cmp.Compare[int])
		for _, v := range []int{3, 1, 2, 5, 4} {
			tree.Insert(v)
		}
		var seen []int
		for v := range tree.All() {
			seen = append(seen, v)
			if v == 3 {
				break
			}
		}
		assert.Equal(t, []int{1, 2, 3}, seen)
	})

	t.Run("empty", func(t *testing.T) {
		tree := NewOrdered(cmp.Compare[int])
		assert.Empty(t, slices.Collect(tree.All()))
	})
}

func TestOrdered_SortedInputDegrades(t *testing.T) {
	tree := NewOrdered(cmp.Compare[int])
	for v := range 64 {
		tree.Insert(v)
	}
	assert.Equal(t, 64, tree.Depth())
}

func TestOrdered_Clear(t *testing.T) {
	tree := NewOrdered(cmp.Compare[int])
	tree.Clear()
	assert.Equal(t, 0, tree.Len())

	tree.Insert(1)
	tree.Insert(2)
	tree.Clear()
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Depth())
	_, ok := tree.Find(1)
	assert.False(t, ok)

	assert.True(t, tree.Insert(1), "cleared tree accepts previous keys")
}
