package region

import "math"

// Contour is a simple closed polygon given as an ordered list of vertices.
// The last vertex connects back to the first implicitly; a coincident closing
// vertex is allowed on input and removed by Normalize. Counter clockwise
// contours enclose positive area, clockwise contours describe holes.
type Contour []Point

// Normalize returns the contour with a coincident closing vertex and
// consecutive approximately equal vertices removed.
func (c Contour) Normalize(eps float64) Contour {
	if len(c) == 0 {
		return nil
	}
	d := make(Contour, 0, len(c))
	d = append(d, c[0])
	for _, p := range c[1:] {
		if !p.EqualsEps(d[len(d)-1], eps) {
			d = append(d, p)
		}
	}
	for 1 < len(d) && d[len(d)-1].EqualsEps(d[0], eps) {
		d = d[:len(d)-1]
	}
	return d
}

// Reverse returns the contour with its traversal direction inverted, keeping
// the same starting vertex.
func (c Contour) Reverse() Contour {
	d := make(Contour, len(c))
	for i, p := range c {
		if i == 0 {
			d[0] = p
		} else {
			d[len(c)-i] = p
		}
	}
	return d
}

// SignedArea returns the enclosed area by the shoelace formula, positive for
// counter clockwise contours and negative for clockwise ones.
func (c Contour) SignedArea() float64 {
	a := 0.0
	for i, p := range c {
		q := c[(i+1)%len(c)]
		a += p.PerpDot(q)
	}
	return a / 2.0
}

// Clockwise returns true when the contour is traversed clockwise. Contours
// whose area vanishes within eps have no meaningful orientation and return
// ErrDegenerate.
func (c Contour) Clockwise(eps float64) (bool, error) {
	scale := 0.0
	for _, p := range c {
		scale = math.Max(scale, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	a := c.SignedArea()
	if math.Abs(a) <= eps*(1.0+scale) {
		return false, ErrDegenerate
	}
	return a < 0.0, nil
}

// Centroid returns the center of mass of the contour.
func (c Contour) Centroid() Point {
	if len(c) == 0 {
		return Point{}
	} else if len(c) == 1 {
		return c[0]
	} else if len(c) == 2 {
		return c[0].Interpolate(c[1], 0.5)
	}
	d := Point{}
	for i, p := range c {
		q := c[(i+1)%len(c)]
		f := p.PerpDot(q)
		d = d.Add(p.Add(q).Mul(f))
	}
	return d.Div(6.0 * c.SignedArea())
}

// Bounds returns the bounding rectangle of the contour.
func (c Contour) Bounds() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	r := Rect{c[0].X, c[0].Y, 0.0, 0.0}
	for _, p := range c[1:] {
		r = r.Expand(p)
	}
	return r
}

// distPointSegment returns the distance from p to segment ab.
func distPointSegment(p, a, b Point) float64 {
	d := b.Sub(a)
	if d.IsZero() {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(d) / d.Dot(d)
	if t < 0.0 {
		t = 0.0
	} else if 1.0 < t {
		t = 1.0
	}
	return p.Sub(a.Interpolate(b, t)).Length()
}

// onBoundary returns true when p lies within eps of the contour's boundary.
func (c Contour) onBoundary(p Point, eps float64) bool {
	for i, a := range c {
		b := c[(i+1)%len(c)]
		if distPointSegment(p, a, b) <= eps {
			return true
		}
	}
	return false
}

// windingCount returns the number of times the closed contour encloses p.
// Counter clockwise enclosures count positively and clockwise ones
// negatively.
// see https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
func (c Contour) windingCount(p Point) int {
	count := 0
	prev := c[len(c)-1]
	for _, cur := range c {
		if (p.Y < cur.Y) != (p.Y < prev.Y) &&
			p.X < (prev.X-cur.X)*(p.Y-cur.Y)/(prev.Y-cur.Y)+cur.X {
			if prev.Y < cur.Y {
				count--
			} else {
				count++
			}
		}
		prev = cur
	}
	return count
}

// PointInContour reports where p lies relative to the closed contour c:
// +1 inside, 0 on the boundary within eps, and -1 outside.
func PointInContour(p Point, c Contour, eps float64) int {
	if len(c) == 0 {
		return -1
	}
	if c.onBoundary(p, eps) {
		return 0
	}
	if c.windingCount(p) != 0 {
		return 1
	}
	return -1
}

// SelfIntersects returns true when two non-adjacent segments of the contour
// cross or overlap, or when adjacent segments fold back onto each other.
func (c Contour) SelfIntersects(eps float64) bool {
	n := len(c)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a0, a1 := c[i], c[(i+1)%n]
		for j := i + 1; j < n; j++ {
			b0, b1 := c[j], c[(j+1)%n]
			adjacent := j == i+1 || i == 0 && j == n-1
			zs := intersectSegments(a0, a1, b0, b1, eps)
			for _, z := range zs {
				if adjacent {
					// segments share an endpoint, only overlaps count
					if !z.parallel {
						continue
					}
					shared := a1
					if i == 0 && j == n-1 {
						shared = a0
					}
					if z.p.EqualsEps(shared, eps) {
						continue
					}
				}
				onAEnd := equalWithin(z.ta, 0.0, eps) || equalWithin(z.ta, 1.0, eps)
				onBEnd := equalWithin(z.tb, 0.0, eps) || equalWithin(z.tb, 1.0, eps)
				if z.parallel || !onAEnd || !onBEnd {
					return true
				}
				// vertex touch, not a crossing
			}
		}
	}
	return false
}
