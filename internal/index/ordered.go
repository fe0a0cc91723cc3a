package index

import "iter"

// Ordered is an unbalanced binary search tree ordered by a three-way
// comparator. The comparator also defines key equality: two values that
// compare equal are duplicates and only the first one is kept.
//
// The tree performs no rebalancing, so sorted input degrades it to a list.
type Ordered[T any] struct {
	root *node[T]
	cmp  func(a, b T) int
	size int
}

type node[T any] struct {
	value       T
	left, right *node[T]
}

// NewOrdered creates an empty tree ordered by cmp.
func NewOrdered[T any](cmp func(a, b T) int) *Ordered[T] {
	return &Ordered[T]{cmp: cmp}
}

// Insert places v in order. It returns false, leaving the tree untouched,
// when a value with an equal key is already stored.
func (t *Ordered[T]) Insert(v T) bool {
	if !t.insert(&t.root, v) {
		return false
	}
	t.size++
	return true
}

func (t *Ordered[T]) insert(link **node[T], v T) bool {
	n := *link
	if n == nil {
		*link = &node[T]{value: v}
		return true
	}
	switch c := t.cmp(v, n.value); {
	case c < 0:
		return t.insert(&n.left, v)
	case c > 0:
		return t.insert(&n.right, v)
	default:
		return false
	}
}

// Find returns the stored value whose key equals key.
func (t *Ordered[T]) Find(key T) (T, bool) {
	return t.find(t.root, key)
}

func (t *Ordered[T]) find(n *node[T], key T) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	switch c := t.cmp(key, n.value); {
	case c < 0:
		return t.find(n.left, key)
	case c > 0:
		return t.find(n.right, key)
	default:
		return n.value, true
	}
}

// All returns the stored values in ascending order. Each call starts a new
// traversal. The tree must not be modified while a traversal is running.
func (t *Ordered[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(t.root, yield)
	}
}

func walk[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.value) && walk(n.right, yield)
}

// Clear drops every node and the values they hold.
func (t *Ordered[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Len returns the number of stored values.
func (t *Ordered[T]) Len() int {
	return t.size
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (t *Ordered[T]) Depth() int {
	return depth(t.root)
}

func depth[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}
