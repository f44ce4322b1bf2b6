// Package kdtree implements a k-d tree for exact proximity queries over a
// static point set, together with brute-force versions of the same queries.
//
// A Tree is built once from a fixed set of points by recursive median
// partitioning, cycling the splitting axis with depth, and is immutable
// afterwards. It answers three query families:
//
//   - Nearest: the single closest point, using branch-and-bound pruning
//   - WithinRadius: every point within a distance of the query
//   - KNearest: the k closest points, kept in a bounded max-heap
//
// Basic usage:
//
//	points := []kdtree.Point{
//		kdtree.Coords{0, 0}, kdtree.Coords{1, 1}, kdtree.Coords{3, 0},
//	}
//	tree, err := kdtree.Build(points)
//	p, ok := tree.Nearest(kdtree.Coords{1, 0})
//	near := tree.WithinRadius(kdtree.Coords{1, 0}, 1.5)
//	knn := tree.KNearest(kdtree.Coords{1, 0}, 2)
//
// # Metrics
//
// Distances come from a [Metric], which supplies the dimensionality and a
// squared distance. The default is [Euclidean]; [Manhattan], [Chebyshev] and
// [Minkowski] are also provided, and [MetricFunc] wraps a custom function.
//
// # Errors
//
// Invalid input never panics. Building from no points returns
// [ErrEmptyInput] together with an empty tree whose queries report no
// result; a negative radius or k < 1 yields an empty result and a logged
// warning.
//
// # Brute force
//
// [BruteForce] scans the flat point list and returns the same result sets
// as the tree. [NewIndex] picks between the two based on
// [Config.BruteForceThreshold].
package kdtree
