package geo

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/TrevorS/kdtree"
)

func quietConfig(metric kdtree.Metric) kdtree.Config {
	cfg := kdtree.DefaultConfig()
	cfg.Logger = kdtree.NoopLogger()
	cfg.Metric = metric
	return cfg
}

func TestFromPoint(t *testing.T) {
	p := FromPoint(geom.NewPoint(geom.XYZ).MustSetCoords(geom.Coord{1, 2, 3}))

	assert.Equal(t, 3, p.Dims())
	assert.Equal(t, 2.0, p.Coord(1))
}

func TestFromMultiPoint_NearestAndUnwrap(t *testing.T) {
	mp := geom.NewMultiPoint(geom.XY).MustSetCoords([]geom.Coord{
		{0, 0}, {1, 1}, {2, 2}, {3, 0}, {0, 3},
	})
	points := FromMultiPoint(mp)
	require.Len(t, points, 5)

	tree, err := kdtree.New(points, quietConfig(nil))
	require.NoError(t, err)

	p, ok := tree.Nearest(FromPoint(geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{2.9, 0.2})))
	require.True(t, ok)
	gp, ok := Unwrap(p)
	require.True(t, ok)
	assert.Equal(t, geom.Coord{3, 0}, gp.Coords())

	_, ok = Unwrap(kdtree.Coords{1, 2})
	assert.False(t, ok)
}

func TestVector(t *testing.T) {
	v := Vector{X: 1, Y: 2, Z: 3}

	assert.Equal(t, 3, v.Dims())
	assert.Equal(t, []float64{1, 2, 3}, []float64{v.Coord(0), v.Coord(1), v.Coord(2)})
	assert.Panics(t, func() { v.Coord(3) })
}

func TestFromLatLng_RoundTrip(t *testing.T) {
	v := FromLatLng(48.8566, 2.3522)
	ll := ToLatLng(v)

	assert.InDelta(t, 48.8566, ll.Lat.Degrees(), 1e-9)
	assert.InDelta(t, 2.3522, ll.Lng.Degrees(), 1e-9)
	norm := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	assert.InDelta(t, 1, norm, 1e-12)
}

func TestSphere_NearestCity(t *testing.T) {
	cities := map[string][2]float64{
		"paris":      {48.8566, 2.3522},
		"london":     {51.5074, -0.1278},
		"berlin":     {52.5200, 13.4050},
		"madrid":     {40.4168, -3.7038},
		"tokyo":      {35.6762, 139.6503},
		"sydney":     {-33.8688, 151.2093},
		"wellington": {-41.2865, 174.7762},
	}
	names := make(map[kdtree.Point]string, len(cities))
	points := make([]kdtree.Point, 0, len(cities))
	for name, ll := range cities {
		v := FromLatLng(ll[0], ll[1])
		names[v] = name
		points = append(points, v)
	}

	tree, err := kdtree.New(points, quietConfig(SphereMetric))
	require.NoError(t, err)

	// Brussels.
	p, ok := tree.Nearest(FromLatLng(50.8503, 4.3517))
	require.True(t, ok)
	assert.Equal(t, "paris", names[p])

	// Across the antimeridian from Wellington.
	p, ok = tree.Nearest(FromLatLng(-40, -179))
	require.True(t, ok)
	assert.Equal(t, "wellington", names[p])
}

func TestSphere_WithinRadius(t *testing.T) {
	paris := FromLatLng(48.8566, 2.3522)
	london := FromLatLng(51.5074, -0.1278)
	tokyo := FromLatLng(35.6762, 139.6503)

	tree, err := kdtree.New([]kdtree.Point{paris, london, tokyo}, quietConfig(SphereMetric))
	require.NoError(t, err)

	// Paris and London are about 3.1 degrees of arc apart.
	found := tree.WithinRadius(paris, ChordRadius(5*s1.Degree))
	assert.ElementsMatch(t, []kdtree.Point{paris, london}, found)

	found = tree.WithinRadius(paris, ChordRadius(2*s1.Degree))
	assert.ElementsMatch(t, []kdtree.Point{paris}, found)
}

func TestAngle_InvertsChordRadius(t *testing.T) {
	a := 10 * s1.Degree
	r := ChordRadius(a)
	assert.InDelta(t, a.Degrees(), Angle(r*r).Degrees(), 1e-9)
}
