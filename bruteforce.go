package kdtree

import "math"

// BruteForce answers the same queries as Tree by scanning a flat point list.
// It serves as the correctness baseline for the tree and as the cheaper
// index for point sets too small to amortize tree construction.
type BruteForce struct {
	points []Point
	metric Metric
	logger *Logger
}

// NewBruteForce returns a linear-scan searcher over points. A nil metric
// means Euclidean sized from the first point. points is copied.
//
// The returned searcher is never nil. Invalid points are validated the same
// way New validates them; on error the searcher is empty and every query
// reports no result.
func NewBruteForce(points []Point, metric Metric) (*BruteForce, error) {
	cfg := DefaultConfig()
	cfg.Metric = metric
	applyDefaults(&cfg, points)

	err := validateConfig(&cfg)
	if err == nil {
		err = validatePoints(points, cfg.Metric.Dims())
	}
	if err != nil {
		cfg.Logger.LogBuild(len(points), 0, err)
		return newBruteForce(nil, cfg), err
	}
	return newBruteForce(points, cfg), nil
}

func newBruteForce(points []Point, cfg Config) *BruteForce {
	own := make([]Point, len(points))
	copy(own, points)
	return &BruteForce{points: own, metric: cfg.Metric, logger: cfg.Logger}
}

// Len returns the number of points scanned.
func (b *BruteForce) Len() int { return len(b.points) }

// Nearest returns the point closest to q, stopping at the first exact match.
func (b *BruteForce) Nearest(q Point) (Point, bool) {
	p, _, ok := b.NearestDistance(q)
	return p, ok
}

// NearestDistance is like Nearest but also returns the squared distance.
func (b *BruteForce) NearestDistance(q Point) (Point, float64, bool) {
	if len(b.points) == 0 || !checkQuery(b.logger, "nearest", q, b.metric.Dims()) {
		return nil, 0, false
	}

	var best Point
	bestSq := math.Inf(1)
	for _, p := range b.points {
		d := b.metric.SquaredDistance(p, q)
		if d < bestSq {
			best, bestSq = p, d
		}
		if isExactMatch(d) {
			break
		}
	}
	if best == nil {
		return nil, 0, false
	}
	return best, bestSq, true
}

// WithinRadius returns every point within radius of q, in scan order.
func (b *BruteForce) WithinRadius(q Point, radius float64) []Point {
	if !validRadius(b.logger, radius) || len(b.points) == 0 || !checkQuery(b.logger, "radius", q, b.metric.Dims()) {
		return nil
	}

	radiusSq := radius * radius
	var found []Point
	for _, p := range b.points {
		if b.metric.SquaredDistance(p, q) <= radiusSq {
			found = append(found, p)
		}
	}
	return found
}

// KNearest returns the min(k, Len()) points closest to q, ordered by
// ascending distance.
func (b *BruteForce) KNearest(q Point, k int) []Point {
	return neighborPoints(b.KNearestNeighbors(q, k))
}

// KNearestNeighbors is like KNearest but also returns squared distances.
func (b *BruteForce) KNearestNeighbors(q Point, k int) []Neighbor {
	if !validK(b.logger, k) || len(b.points) == 0 || !checkQuery(b.logger, "knearest", q, b.metric.Dims()) {
		return nil
	}

	set := newBoundedSet(min(k, len(b.points)))
	for _, p := range b.points {
		set.offer(p, b.metric.SquaredDistance(p, q))
	}
	return set.sorted()
}
