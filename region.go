// Package region implements boolean operations over 2D polygon regions for
// parametric CAD scripting, together with the generic comparison, sorting and
// approximate-equality utilities the clipping engine relies on for
// deterministic output. A region is an ordered set of simple closed contours
// interpreted under the nonzero fill rule: counter clockwise contours enclose
// area and clockwise contours cut holes.
package region

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for arguments that are not a structurally
	// valid point, contour or region.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerate is returned for geometry whose orientation or boundary
	// cannot be determined, such as zero-area contours.
	ErrDegenerate = errors.New("degenerate geometry")

	// ErrSelfIntersecting is returned when a contour of a region argument
	// intersects itself; use MakeRegion to split such paths first.
	ErrSelfIntersecting = errors.New("self-intersecting contour")
)

// Region is an ordered set of simple closed contours. Overlapping contours
// within one region are allowed and resolved by the nonzero fill rule; a
// single contour must not intersect itself.
type Region []Contour

// Normalize returns the region with every contour normalized and empty
// contours removed.
func (r Region) Normalize(eps float64) Region {
	s := make(Region, 0, len(r))
	for _, c := range r {
		if c = c.Normalize(eps); 0 < len(c) {
			s = append(s, c)
		}
	}
	return s
}

// Validate returns an error when r is not a valid region argument for the
// boolean operations: every contour must have at least three distinct finite
// vertices, a determinable orientation, and no self-intersections.
func (r Region) Validate(eps float64) error {
	for i, c := range r {
		for _, p := range c {
			if !p.IsFinite() {
				return fmt.Errorf("contour %d: vertex %v: %w", i, p, ErrInvalidInput)
			}
		}
		c = c.Normalize(eps)
		if len(c) < 3 {
			return fmt.Errorf("contour %d: fewer than 3 distinct vertices: %w", i, ErrInvalidInput)
		}
		if _, err := c.Clockwise(eps); err != nil {
			return fmt.Errorf("contour %d: %w", i, err)
		}
		if c.SelfIntersects(eps) {
			return fmt.Errorf("contour %d: %w", i, ErrSelfIntersecting)
		}
	}
	return nil
}

// Area returns the area enclosed by the region: the sum of the signed
// contour areas, so that clockwise holes subtract from their surrounding
// counter clockwise contours.
func (r Region) Area() float64 {
	a := 0.0
	for _, c := range r {
		a += c.SignedArea()
	}
	return a
}

// Bounds returns the bounding rectangle of the region.
func (r Region) Bounds() Rect {
	if len(r) == 0 {
		return Rect{}
	}
	rect := r[0].Bounds()
	for _, c := range r[1:] {
		rect = rect.Add(c.Bounds())
	}
	return rect
}

// Empty returns true when the region contains no contours.
func (r Region) Empty() bool {
	return len(r) == 0
}

// windingCount returns the sum of the contour winding counts at p.
func (r Region) windingCount(p Point) int {
	count := 0
	for _, c := range r {
		count += c.windingCount(p)
	}
	return count
}

// onBoundary returns true when p lies within eps of any contour.
func (r Region) onBoundary(p Point, eps float64) bool {
	for _, c := range r {
		if c.onBoundary(p, eps) {
			return true
		}
	}
	return false
}

// PointInRegion reports where p lies relative to the region under the
// nonzero fill rule: +1 inside, 0 on a contour boundary within eps, and -1
// outside.
func PointInRegion(p Point, r Region, eps float64) int {
	if r.onBoundary(p, eps) {
		return 0
	}
	if r.windingCount(p) != 0 {
		return 1
	}
	return -1
}
