package kdtree

import "container/heap"

// Neighbor is a query result together with its squared distance to the query.
type Neighbor struct {
	Point  Point
	DistSq float64
}

// neighborHeap is a max-heap of Neighbor (largest distance on top) used as a
// bounded result set for k-nearest queries.
type neighborHeap []Neighbor

func (h neighborHeap) Len() int            { return len(h) }
func (h neighborHeap) Less(i, j int) bool  { return h[i].DistSq > h[j].DistSq } // max-heap
func (h neighborHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *neighborHeap) Push(x interface{}) { *h = append(*h, x.(Neighbor)) }
func (h *neighborHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// boundedSet keeps the k closest candidates offered to it.
type boundedSet struct {
	k int
	h neighborHeap
}

func newBoundedSet(k int) *boundedSet {
	return &boundedSet{k: k, h: make(neighborHeap, 0, k)}
}

func (s *boundedSet) full() bool { return len(s.h) >= s.k }

// worst returns the largest kept squared distance. Only valid when full.
func (s *boundedSet) worst() float64 { return s.h[0].DistSq }

// offer inserts p while the set has room, and otherwise evicts the current
// worst entry only if p is strictly closer.
func (s *boundedSet) offer(p Point, distSq float64) {
	if !s.full() {
		heap.Push(&s.h, Neighbor{Point: p, DistSq: distSq})
		return
	}
	if distSq < s.worst() {
		s.h[0] = Neighbor{Point: p, DistSq: distSq}
		heap.Fix(&s.h, 0)
	}
}

// sorted drains the set into a slice ordered by ascending distance.
func (s *boundedSet) sorted() []Neighbor {
	out := make([]Neighbor, len(s.h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&s.h).(Neighbor)
	}
	return out
}

func neighborPoints(ns []Neighbor) []Point {
	out := make([]Point, len(ns))
	for i, n := range ns {
		out[i] = n.Point
	}
	return out
}
