// Package pq wraps github.com/oleiade/lane/v2's generic priority queue
// into a bounded max-priority-queue of size k, the data structure
// best-first k-nearest-neighbor search needs (spec.md §4.9): at most k
// (item, priority) pairs, with the worst (highest-priority) one always
// evictable in favor of a better candidate.
//
// Grounded on other_examples' jomaresch-go-sknn, which drives an
// approximate-nearest-neighbor search with lane.NewMinPriorityQueue /
// Push / Pop / Head as a best-first expansion frontier; this package
// reuses the same library and call shape as a max-pq instead, since a
// bounded top-k holder needs the worst candidate at the head to evict.
package pq

import "github.com/oleiade/lane/v2"

// BoundedMaxPQ holds at most K (item, priority) pairs. Priorities are
// float64; the pair with the largest priority is always at the top, so
// callers can cheaply ask "is this worse than my current worst?" before
// admitting a new candidate.
type BoundedMaxPQ[T any] struct {
	inner *lane.PriorityQueue[T, float64]
	k     int
}

// NewBounded returns an empty BoundedMaxPQ capped at k entries. k<=0
// yields a queue that never admits anything.
func NewBounded[T any](k int) *BoundedMaxPQ[T] {
	return &BoundedMaxPQ[T]{
		inner: lane.NewMaxPriorityQueue[T, float64](),
		k:     k,
	}
}

// Reset reinitializes b to an empty queue capped at k entries, for reuse
// across repeated KNN calls instead of allocating a fresh BoundedMaxPQ
// (and the lane.PriorityQueue it wraps) every time. Safe on a
// newly-allocated zero BoundedMaxPQ too.
func (b *BoundedMaxPQ[T]) Reset(k int) {
	b.inner = lane.NewMaxPriorityQueue[T, float64]()
	b.k = k
}

// Len returns the number of entries currently held.
func (b *BoundedMaxPQ[T]) Len() int {
	if b == nil || b.inner == nil {
		return 0
	}
	return b.inner.Size()
}

// WorstPriority returns the current maximum (worst) priority held, and
// false if the queue is empty.
func (b *BoundedMaxPQ[T]) WorstPriority() (float64, bool) {
	if b.Len() == 0 {
		return 0, false
	}
	_, priority, ok := b.inner.Head()
	return priority, ok
}

// Admissible reports whether a candidate with the given priority is worth
// offering: true when the queue isn't yet at capacity, or when priority
// beats (is less than) the current worst.
func (b *BoundedMaxPQ[T]) Admissible(priority float64) bool {
	if b.Len() < b.k {
		return true
	}
	worst, ok := b.WorstPriority()
	return ok && priority < worst
}

// Offer admits item at the given priority if Admissible, evicting the
// current worst entry first when the queue is already at capacity.
// Reports whether item was admitted.
func (b *BoundedMaxPQ[T]) Offer(item T, priority float64) bool {
	if !b.Admissible(priority) {
		return false
	}
	if b.Len() >= b.k {
		b.inner.Pop()
	}
	b.inner.Push(item, priority)
	return true
}

// DrainAscending pops every entry and returns the items ordered from
// smallest to largest priority (nearest-first for a distance priority),
// leaving the queue empty.
func (b *BoundedMaxPQ[T]) DrainAscending() []T {
	n := b.Len()
	out := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		item, _, ok := b.inner.Pop()
		if !ok {
			break
		}
		out[i] = item
	}
	return out
}
