package kdtree

// SpatialIndex is the query interface shared by Tree and BruteForce.
// Both implementations return the same result sets for the same inputs;
// only the order of WithinRadius results may differ.
type SpatialIndex interface {
	// Len returns the number of indexed points.
	Len() int

	// Nearest returns the point closest to q, or ok == false when q is nil
	// or the index is empty.
	Nearest(q Point) (p Point, ok bool)

	// WithinRadius returns every point at distance <= radius from q.
	WithinRadius(q Point, radius float64) []Point

	// KNearest returns the min(k, Len()) points closest to q, ordered by
	// ascending distance.
	KNearest(q Point, k int) []Point
}

var (
	_ SpatialIndex = (*Tree)(nil)
	_ SpatialIndex = (*BruteForce)(nil)
)
