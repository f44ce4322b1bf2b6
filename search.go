package kdtree

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// exactMatchULP is how close to zero, in units of least precision, a squared
// distance must be to count as an exact match.
const exactMatchULP = 2

func isExactMatch(distSq float64) bool {
	return scalar.EqualWithinULP(distSq, 0, exactMatchULP)
}

// visitor is the per-query strategy driven by Tree.walk.
type visitor interface {
	// visit is called for every node reached. Returning true ends the walk.
	visit(n *Node, distSq float64) (stop bool)
	// descendFar reports whether the far side of a splitting hyperplane at
	// squared distance planeSq from the query can still hold a result.
	descendFar(planeSq float64) bool
}

// walk descends from n toward q, visiting the near child before the far one.
// It returns true if the visitor ended the walk.
func (t *Tree) walk(n *Node, q Point, axis int, v visitor) bool {
	if n == nil {
		return false
	}
	if v.visit(n, t.metric.SquaredDistance(n.point, q)) {
		return true
	}

	delta := t.metric.Coord(n.point, axis) - t.metric.Coord(q, axis)
	next := axis + 1
	if next >= t.dims {
		next = 0
	}

	near, far := n.right, n.left
	if delta > 0 {
		near, far = n.left, n.right
	}
	if t.walk(near, q, next, v) {
		return true
	}
	if !v.descendFar(delta * delta) {
		return false
	}
	return t.walk(far, q, next, v)
}

// checkQuery reports whether q can be searched; dimension mismatches are logged.
func checkQuery(l *Logger, op string, q Point, dims int) bool {
	if q == nil {
		return false
	}
	if q.Dims() != dims {
		l.LogInvalidQuery(op, &DimensionMismatchError{Expected: dims, Actual: q.Dims()})
		return false
	}
	return true
}

// --- nearest ---

type nearestVisitor struct {
	best   *Node
	bestSq float64
}

func (v *nearestVisitor) visit(n *Node, distSq float64) bool {
	if distSq < v.bestSq {
		v.best = n
		v.bestSq = distSq
	}
	return isExactMatch(distSq)
}

func (v *nearestVisitor) descendFar(planeSq float64) bool { return planeSq < v.bestSq }

// Nearest returns the point closest to q. ok is false if q is nil or the tree
// is empty. Ties may resolve to any of the tied points.
func (t *Tree) Nearest(q Point) (p Point, ok bool) {
	p, _, ok = t.NearestDistance(q)
	return p, ok
}

// NearestDistance is like Nearest but also returns the squared distance.
func (t *Tree) NearestDistance(q Point) (p Point, distSq float64, ok bool) {
	if t.root == nil || !checkQuery(t.logger, "nearest", q, t.dims) {
		return nil, 0, false
	}
	v := &nearestVisitor{bestSq: math.Inf(1)}
	t.walk(t.root, q, 0, v)
	if v.best == nil {
		return nil, 0, false
	}
	return v.best.point, v.bestSq, true
}

// --- radius ---

type radiusVisitor struct {
	radiusSq float64
	found    []Point
}

func (v *radiusVisitor) visit(n *Node, distSq float64) bool {
	if distSq <= v.radiusSq {
		v.found = append(v.found, n.point)
	}
	return false
}

// Inclusive so that points exactly on the boundary are never pruned.
func (v *radiusVisitor) descendFar(planeSq float64) bool { return planeSq <= v.radiusSq }

// WithinRadius returns every point whose distance to q is at most radius, in
// traversal order. A negative or NaN radius yields no points.
func (t *Tree) WithinRadius(q Point, radius float64) []Point {
	if !validRadius(t.logger, radius) || t.root == nil || !checkQuery(t.logger, "radius", q, t.dims) {
		return nil
	}
	v := &radiusVisitor{radiusSq: radius * radius}
	t.walk(t.root, q, 0, v)
	return v.found
}

func validRadius(l *Logger, radius float64) bool {
	if radius < 0 || math.IsNaN(radius) {
		l.LogInvalidQuery("radius", ErrNegativeRadius)
		return false
	}
	return true
}

// --- k-nearest ---

type knnVisitor struct {
	set *boundedSet
}

func (v *knnVisitor) visit(n *Node, distSq float64) bool {
	v.set.offer(n.point, distSq)
	return false
}

// No bound exists until the set is full.
func (v *knnVisitor) descendFar(planeSq float64) bool {
	return !v.set.full() || planeSq <= v.set.worst()
}

// KNearest returns the min(k, Len()) points closest to q, ordered by
// ascending distance. k < 1 yields no points. Ties on distance may select
// any of the tied points.
func (t *Tree) KNearest(q Point, k int) []Point {
	return neighborPoints(t.KNearestNeighbors(q, k))
}

// KNearestNeighbors is like KNearest but also returns squared distances.
func (t *Tree) KNearestNeighbors(q Point, k int) []Neighbor {
	if !validK(t.logger, k) || t.root == nil || !checkQuery(t.logger, "knearest", q, t.dims) {
		return nil
	}
	v := &knnVisitor{set: newBoundedSet(min(k, len(t.points)))}
	t.walk(t.root, q, 0, v)
	return v.set.sorted()
}

func validK(l *Logger, k int) bool {
	if k < 1 {
		l.LogInvalidQuery("knearest", ErrInvalidK)
		return false
	}
	return true
}
