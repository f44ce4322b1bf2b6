package kdtree

import (
	"fmt"
	"sort"
)

// Node is one vertex of a k-d tree. Every node reachable from a tree root
// holds a point; children are owned exclusively by their parent.
type Node struct {
	point       Point
	left, right *Node
}

// Point returns the point stored at n.
func (n *Node) Point() Point { return n.point }

// Left returns the child holding points at or below n's split coordinate,
// or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the child holding points at or above n's split coordinate,
// or nil.
func (n *Node) Right() *Node { return n.right }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// Tree is a k-d tree over a fixed point set. At depth d the splitting axis is
// d mod k, where k is the metric's dimensionality. A Tree is immutable once
// built and may be queried from multiple goroutines.
type Tree struct {
	root   *Node
	points []Point // original order, retained for brute-force queries
	metric Metric
	dims   int
	height int
	logger *Logger
}

// Build builds a tree with [DefaultConfig].
func Build(points []Point) (*Tree, error) {
	return New(points, DefaultConfig())
}

// BuildWithMetric builds a tree with [DefaultConfig] and the given metric.
func BuildWithMetric(points []Point, metric Metric) (*Tree, error) {
	cfg := DefaultConfig()
	cfg.Metric = metric
	return New(points, cfg)
}

// New builds a k-d tree from points by recursive median partitioning.
//
// The returned tree is never nil. If points is empty or invalid the error is
// logged and returned, and the tree has no root: every query on it reports
// no result.
func New(points []Point, cfg Config) (*Tree, error) {
	applyDefaults(&cfg, points)

	t := &Tree{
		metric: cfg.Metric,
		dims:   cfg.Metric.Dims(),
		logger: cfg.Logger,
	}

	if err := validateConfig(&cfg); err != nil {
		t.logger.LogBuild(len(points), 0, err)
		return t, err
	}
	if err := validatePoints(points, t.dims); err != nil {
		t.logger.LogBuild(len(points), 0, err)
		return t, err
	}

	t.points = make([]Point, len(points))
	copy(t.points, points)

	work := make([]Point, len(points))
	copy(work, points)
	t.root = t.buildNode(work, 0)
	t.height = nodeHeight(t.root)

	t.logger.LogBuild(len(points), t.height, nil)
	return t, nil
}

// validatePoints checks points against the metric dimensionality.
func validatePoints(points []Point, dims int) error {
	if len(points) == 0 {
		return ErrEmptyInput
	}
	if dims < 1 {
		return fmt.Errorf("%w: metric dimension must be >= 1, got %d", ErrInvalidInput, dims)
	}
	for i, p := range points {
		if p == nil {
			return fmt.Errorf("%w: point %d is nil", ErrInvalidInput, i)
		}
		if p.Dims() != dims {
			return &DimensionMismatchError{Expected: dims, Actual: p.Dims()}
		}
	}
	return nil
}

// buildNode builds the subtree for points, which it reorders in place.
// points[m-1] after sorting on the split axis becomes the node, with the
// m-1 smaller elements on the left and the rest on the right.
func (t *Tree) buildNode(points []Point, depth int) *Node {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return &Node{point: points[0]}
	}

	t.sortByAxis(points, depth%t.dims)
	m := (len(points) + 1) / 2

	n := &Node{point: points[m-1]}
	n.left = t.buildNode(points[:m-1], depth+1)
	n.right = t.buildNode(points[m:], depth+1)
	return n
}

// sortByAxis sorts points by the coordinate at axis.
func (t *Tree) sortByAxis(points []Point, axis int) {
	metric := t.metric
	sort.Slice(points, func(i, j int) bool {
		return metric.Coord(points[i], axis) < metric.Coord(points[j], axis)
	})
}

func nodeHeight(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(nodeHeight(n.left), nodeHeight(n.right))
}

// --- introspection ---

// Root returns the root node, or nil for a tree built from no points.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of points in the tree.
func (t *Tree) Len() int { return len(t.points) }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int { return t.height }

// Metric returns the metric used for splitting and distances.
func (t *Tree) Metric() Metric { return t.metric }

// Points returns a copy of the points in their original order.
func (t *Tree) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// BruteForce returns a linear-scan searcher over the tree's points that
// shares the tree's metric and logger.
func (t *Tree) BruteForce() *BruteForce {
	return &BruteForce{points: t.points, metric: t.metric, logger: t.logger}
}

// Walk visits every node in pre-order, passing its depth (root is 0).
// Walk stops as soon as fn returns false.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walkNodes(t.root, 0, fn)
}

func walkNodes(n *Node, depth int, fn func(*Node, int) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	return walkNodes(n.left, depth+1, fn) && walkNodes(n.right, depth+1, fn)
}

// SetMetric replaces the tree's metric. A nil or invalid metric, or one whose
// dimensionality differs from the tree's, is rejected and the previous
// metric is kept. SetMetric must not be called concurrently with queries.
func (t *Tree) SetMetric(m Metric) error {
	if m == nil {
		t.logger.LogInvalidMetric(ErrNilMetric)
		return ErrNilMetric
	}
	if err := validateMetric(m); err != nil {
		t.logger.LogInvalidMetric(err)
		return err
	}
	if t.root != nil && m.Dims() != t.dims {
		err := &DimensionMismatchError{Expected: t.dims, Actual: m.Dims()}
		t.logger.LogInvalidMetric(err)
		return err
	}
	t.metric = m
	t.dims = m.Dims()
	return nil
}
