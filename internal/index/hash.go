package index

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// DefaultBuckets is the bucket count used when none is given. A prime keeps
// sequential ids spread across buckets without a general hash function.
const DefaultBuckets = 1009

// Hash is a fixed-size separate-chaining hash table keyed by an integer.
// The bucket of a key is key mod bucket count.
type Hash[K constraints.Integer, V any] struct {
	buckets []*entry[K, V]
	size    int
}

type entry[K constraints.Integer, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Stats describes how entries are spread across buckets.
type Stats struct {
	Buckets     int     `json:"buckets"`
	UsedBuckets int     `json:"used_buckets"`
	Entries     int     `json:"entries"`
	MaxChain    int     `json:"max_chain"`
	LoadFactor  float64 `json:"load_factor"`
}

// NewHash creates an empty table with n buckets. A non-positive n selects
// DefaultBuckets.
func NewHash[K constraints.Integer, V any](n int) *Hash[K, V] {
	if n <= 0 {
		n = DefaultBuckets
	}
	return &Hash[K, V]{buckets: make([]*entry[K, V], n)}
}

func (h *Hash[K, V]) bucket(k K) int {
	n := K(len(h.buckets))
	b := k % n
	if b < 0 {
		b += n
	}
	return int(b)
}

// Insert adds v under k at the head of its chain. It returns false without
// changing the table when k is already present.
func (h *Hash[K, V]) Insert(k K, v V) bool {
	b := h.bucket(k)
	for e := h.buckets[b]; e != nil; e = e.next {
		if e.key == k {
			return false
		}
	}
	h.buckets[b] = &entry[K, V]{key: k, value: v, next: h.buckets[b]}
	h.size++
	return true
}

// Find returns the value stored under k.
func (h *Hash[K, V]) Find(k K) (V, bool) {
	for e := h.buckets[h.bucket(k)]; e != nil; e = e.next {
		if e.key == k {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Remove unlinks the entry stored under k and reports whether one existed.
func (h *Hash[K, V]) Remove(k K) bool {
	b := h.bucket(k)
	for link := &h.buckets[b]; *link != nil; link = &(*link).next {
		if (*link).key == k {
			*link = (*link).next
			h.size--
			return true
		}
	}
	return false
}

// Clear drops every chain.
func (h *Hash[K, V]) Clear() {
	clear(h.buckets)
	h.size = 0
}

// Len returns the number of entries.
func (h *Hash[K, V]) Len() int {
	return h.size
}

// All yields entries bucket by bucket, newest first within a bucket.
func (h *Hash[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, head := range h.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Stats walks every bucket and reports chain statistics.
func (h *Hash[K, V]) Stats() Stats {
	s := Stats{Buckets: len(h.buckets)}
	for _, head := range h.buckets {
		chain := 0
		for e := head; e != nil; e = e.next {
			chain++
		}
		if chain > 0 {
			s.UsedBuckets++
		}
		s.Entries += chain
		s.MaxChain = max(s.MaxChain, chain)
	}
	s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	return s
}
