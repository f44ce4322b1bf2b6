package kdtree

import (
	"fmt"
	"math"
)

// Metric supplies the dimensionality and the squared distance used by the
// tree and the brute-force search. The core never computes distances itself.
//
// SquaredDistance must be symmetric, non-negative and zero iff a equals b.
// For hyperplane pruning to be sound it must also satisfy
// SquaredDistance(a, b) >= (Coord(a, i) - Coord(b, i))^2 for every axis i.
// All built-in metrics do.
type Metric interface {
	Dims() int
	SquaredDistance(a, b Point) float64
	Coord(p Point, axis int) float64
}

// Euclidean is the Cartesian metric over Dim dimensions. It is the default
// metric when none is configured.
type Euclidean struct {
	Dim int
}

func (m Euclidean) Dims() int                     { return m.Dim }
func (Euclidean) Coord(p Point, axis int) float64 { return p.Coord(axis) }

func (m Euclidean) SquaredDistance(a, b Point) float64 {
	var sum float64
	for i := 0; i < m.Dim; i++ {
		d := a.Coord(i) - b.Coord(i)
		sum += d * d
	}
	return sum
}

// Manhattan is the L1 (city-block) metric. SquaredDistance returns the square
// of the L1 distance, which dominates every squared axis delta.
type Manhattan struct {
	Dim int
}

func (m Manhattan) Dims() int                     { return m.Dim }
func (Manhattan) Coord(p Point, axis int) float64 { return p.Coord(axis) }

func (m Manhattan) SquaredDistance(a, b Point) float64 {
	var sum float64
	for i := 0; i < m.Dim; i++ {
		sum += math.Abs(a.Coord(i) - b.Coord(i))
	}
	return sum * sum
}

// Chebyshev is the L-infinity metric. SquaredDistance returns the square of
// the largest per-axis difference.
type Chebyshev struct {
	Dim int
}

func (m Chebyshev) Dims() int                     { return m.Dim }
func (Chebyshev) Coord(p Point, axis int) float64 { return p.Coord(axis) }

func (m Chebyshev) SquaredDistance(a, b Point) float64 {
	var maxVal float64
	for i := 0; i < m.Dim; i++ {
		if v := math.Abs(a.Coord(i) - b.Coord(i)); v > maxVal {
			maxVal = v
		}
	}
	return maxVal * maxVal
}

// Minkowski is the L-p metric for a finite P >= 1. SquaredDistance returns
// (sum |a_i - b_i|^P)^(2/P). P = 1 and P = 2 match Manhattan and Euclidean.
type Minkowski struct {
	Dim int
	P   float64
}

func (m Minkowski) Dims() int                     { return m.Dim }
func (Minkowski) Coord(p Point, axis int) float64 { return p.Coord(axis) }

func (m Minkowski) SquaredDistance(a, b Point) float64 {
	var sum float64
	for i := 0; i < m.Dim; i++ {
		sum += math.Pow(math.Abs(a.Coord(i)-b.Coord(i)), m.P)
	}
	return math.Pow(sum, 2/m.P)
}

func (m Minkowski) validate() error {
	if !(m.P >= 1) || math.IsInf(m.P, 1) {
		return fmt.Errorf("%w: Minkowski P must be finite and >= 1, got %v", ErrInvalidInput, m.P)
	}
	return nil
}

// validateMetric rejects metrics whose parameters break the pruning bound.
func validateMetric(m Metric) error {
	if v, ok := m.(interface{ validate() error }); ok {
		return v.validate()
	}
	return nil
}

// MetricFunc adapts a plain squared-distance function into a Metric over Dim
// dimensions. Coordinates are read directly from the points.
type MetricFunc struct {
	Dim  int
	Func func(a, b Point) float64
}

func (m MetricFunc) Dims() int                          { return m.Dim }
func (MetricFunc) Coord(p Point, axis int) float64      { return p.Coord(axis) }
func (m MetricFunc) SquaredDistance(a, b Point) float64 { return m.Func(a, b) }
