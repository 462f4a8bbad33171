package region

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tdewolff/test"
)

// orbRing converts a contour to a closed orb ring for cross-checking results
// against an independent geometry library.
func orbRing(c Contour) orb.Ring {
	ring := make(orb.Ring, 0, len(c)+1)
	for _, p := range c {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	ring = append(ring, ring[0])
	return ring
}

func TestRegionArea(t *testing.T) {
	var tts = []struct {
		r    Region
		area float64
	}{
		{Region{square(0, 0, 10, 10), square(20, 0, 8, 8)}, 164.0},
		{Region{square(0, 0, 10, 10), square(2, 2, 6, 6).Reverse()}, 64.0}, // hole
		{Region{square(0, 0, 10, 10)}, 100.0},
		{Region{}, 0.0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.Float(t, tt.r.Area(), tt.area)

			// cross-check against orb's shoelace implementation
			area := 0.0
			for _, c := range tt.r {
				ringArea := math.Abs(planar.Area(orbRing(c)))
				if cw, _ := c.Clockwise(Eps); cw {
					ringArea = -ringArea
				}
				area += ringArea
			}
			test.Float(t, area, tt.area)
		})
	}
}

func TestRegionBounds(t *testing.T) {
	r := Region{square(0, 0, 10, 10), square(20, 0, 8, 8)}
	test.T(t, r.Bounds(), Rect{0, 0, 28, 10})
	test.T(t, Region{}.Bounds(), Rect{})
}

func TestPointInRegion(t *testing.T) {
	r := Region{square(0, 0, 10, 10), square(2, 2, 6, 6).Reverse()} // square with hole
	var tts = []struct {
		p     Point
		class int
	}{
		{Point{1, 1}, 1},     // between outer and hole
		{Point{5, 5}, -1},    // inside the hole
		{Point{-1, 5}, -1},   // outside
		{Point{0, 5}, 0},     // on outer boundary
		{Point{2, 5}, 0},     // on hole boundary
		{Point{9, 9}, 1},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.p), func(t *testing.T) {
			test.T(t, PointInRegion(tt.p, r, Eps), tt.class)
		})
	}

	// cross-check strict containment against orb
	poly := orb.Polygon{orbRing(r[0]), orbRing(r[1])}
	for _, p := range []Point{{1, 1}, {5, 5}, {-1, 5}, {9, 9}, {2.5, 7}, {11, 3}} {
		test.T(t, planar.PolygonContains(poly, orb.Point{p.X, p.Y}), PointInRegion(p, r, Eps) == 1)
	}
}

func TestRegionValidate(t *testing.T) {
	test.Error(t, Region{square(0, 0, 10, 10), square(20, 0, 8, 8)}.Validate(Eps))
	test.Error(t, Region{}.Validate(Eps))

	var tts = []struct {
		r   Region
		err error
	}{
		{Region{Contour{{0, 0}, {1, 0}}}, ErrInvalidInput},                          // too few vertices
		{Region{Contour{{0, 0}, {1, 0}, {math.NaN(), 1}}}, ErrInvalidInput},         // non-numeric coordinate
		{Region{Contour{{0, 0}, {math.Inf(1), 0}, {1, 1}}}, ErrInvalidInput},        // infinite coordinate
		{Region{Contour{{0, 0}, {5, 0}, {10, 0}}}, ErrDegenerate},                   // zero area
		{Region{Contour{{0, 0}, {10, 0}, {0, 10}, {10, 10}}}, ErrSelfIntersecting},  // bowtie
		{Region{square(0, 0, 10, 10), Contour{{20, 0}, {30, 0}, {20, 10}, {30, 10}}}, ErrSelfIntersecting},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			err := tt.r.Validate(Eps)
			test.That(t, errors.Is(err, tt.err), "expected ", tt.err, " got ", err)
		})
	}
}

func TestRegionNormalize(t *testing.T) {
	r := Region{
		Contour{{0, 0}, {10, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		Contour{},
	}
	test.T(t, r.Normalize(0.0), Region{square(0, 0, 10, 10)})
}
