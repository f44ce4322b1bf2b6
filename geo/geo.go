// Package geo adapts geometry types from go-geom and golang/geo to
// kdtree.Point, and maps latitude/longitude onto the unit sphere so that
// great-circle proximity queries can run on a three-dimensional k-d tree.
package geo

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/twpayne/go-geom"

	"github.com/TrevorS/kdtree"
)

// geomPoint adapts a go-geom point. Every coordinate of the layout (X, Y and
// optional Z and M) is an axis.
type geomPoint struct {
	p *geom.Point
}

func (g geomPoint) Dims() int           { return g.p.Layout().Stride() }
func (g geomPoint) Coord(i int) float64 { return g.p.FlatCoords()[i] }

// FromPoint wraps a go-geom point as a kdtree.Point.
func FromPoint(p *geom.Point) kdtree.Point {
	return geomPoint{p: p}
}

// FromMultiPoint returns one kdtree.Point per member of mp.
func FromMultiPoint(mp *geom.MultiPoint) []kdtree.Point {
	points := make([]kdtree.Point, mp.NumPoints())
	for i := range points {
		points[i] = geomPoint{p: mp.Point(i)}
	}
	return points
}

// Unwrap returns the go-geom point behind p, if p came from FromPoint or
// FromMultiPoint.
func Unwrap(p kdtree.Point) (*geom.Point, bool) {
	g, ok := p.(geomPoint)
	if !ok {
		return nil, false
	}
	return g.p, true
}

// Vector is an r3.Vector usable as a three-dimensional kdtree.Point.
type Vector r3.Vector

func (Vector) Dims() int { return 3 }

func (v Vector) Coord(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("geo: axis out of range")
}

// SphereMetric measures chord distance between points on the unit sphere.
// Chord distance grows monotonically with great-circle distance, so nearest
// and k-nearest results match great-circle ordering.
var SphereMetric kdtree.Metric = kdtree.Euclidean{Dim: 3}

// FromLatLng returns the unit-sphere point for a latitude and longitude in
// degrees.
func FromLatLng(lat, lng float64) Vector {
	return Vector(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng)).Vector)
}

// ToLatLng returns the latitude and longitude of a unit-sphere point.
func ToLatLng(v Vector) s2.LatLng {
	return s2.LatLngFromPoint(s2.Point{Vector: r3.Vector(v)})
}

// ChordRadius converts a great-circle angle into the chord length to pass as
// the radius of a WithinRadius query under SphereMetric.
func ChordRadius(a s1.Angle) float64 {
	return math.Sqrt(float64(s1.ChordAngleFromAngle(a)))
}

// Angle converts a squared chord distance returned by SphereMetric into a
// great-circle angle.
func Angle(distSq float64) s1.Angle {
	return s1.ChordAngle(distSq).Angle()
}
