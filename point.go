package kdtree

import "gonum.org/v1/gonum/mat"

// Point is a read-only k-dimensional coordinate. The tree never modifies a
// Point and never compares Points for equality; callers that need identity
// should compare the values they stored.
type Point interface {
	// Dims returns the number of coordinates.
	Dims() int
	// Coord returns the coordinate at axis i, 0 <= i < Dims().
	Coord(i int) float64
}

// Coords is a Point backed by a plain float64 slice.
type Coords []float64

func (c Coords) Dims() int           { return len(c) }
func (c Coords) Coord(i int) float64 { return c[i] }

// vectorPoint adapts a gonum vector.
type vectorPoint struct {
	v mat.Vector
}

func (p vectorPoint) Dims() int           { return p.v.Len() }
func (p vectorPoint) Coord(i int) float64 { return p.v.AtVec(i) }

// FromVector wraps a gonum vector as a Point. The vector is read lazily, so it
// must not be mutated while a tree holds it.
func FromVector(v mat.Vector) Point {
	return vectorPoint{v: v}
}

// PointsFromRows returns one Point per row of m. Each row is copied, so the
// result is independent of later changes to m.
func PointsFromRows(m mat.Matrix) []Point {
	rows, cols := m.Dims()
	points := make([]Point, rows)
	for i := 0; i < rows; i++ {
		row := make(Coords, cols)
		for j := 0; j < cols; j++ {
			row[j] = m.At(i, j)
		}
		points[i] = row
	}
	return points
}

// coordsOf copies the coordinates of p into a fresh slice.
func coordsOf(p Point) []float64 {
	out := make([]float64, p.Dims())
	for i := range out {
		out[i] = p.Coord(i)
	}
	return out
}
