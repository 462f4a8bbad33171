package region

import (
	"fmt"
	"math"
	"sort"
)

// The boolean engine cuts the contours of both regions at their mutual
// intersections into fragments, classifies every fragment against the other
// region by testing its midpoint, selects fragments according to the
// operation, and stitches the survivors back into closed contours. Fragments
// that lie on the other region's boundary are resolved by comparing traversal
// directions, so touching or overlapping edges do not fragment the result.

// FillRule defines how overlapping or self-intersecting outlines are
// resolved into filled area: NonZero fills where the winding number is
// non-zero, EvenOdd where it is odd.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
)

func (fillRule FillRule) String() string {
	if fillRule == NonZero {
		return "nonzero"
	}
	return "evenodd"
}

func (fillRule FillRule) filled(winding int) bool {
	if fillRule == NonZero {
		return winding != 0
	}
	return winding%2 != 0
}

type boolOp int

const (
	opAnd boolOp = iota
	opOr
	opXor
	opNot
)

// Union returns the region covering the area of a and of b.
func Union(a, b Region, eps float64) (Region, error) {
	return boolean(a, opOr, b, eps)
}

// Intersection returns the region covering the area common to a and b.
func Intersection(a, b Region, eps float64) (Region, error) {
	return boolean(a, opAnd, b, eps)
}

// Difference returns the region covering the area of a not covered by b.
func Difference(a, b Region, eps float64) (Region, error) {
	return boolean(a, opNot, b, eps)
}

// ExclusiveOr returns the region covering the area of exactly one of a and b.
func ExclusiveOr(a, b Region, eps float64) (Region, error) {
	return boolean(a, opXor, b, eps)
}

func boolean(a Region, op boolOp, b Region, eps float64) (Region, error) {
	if err := a.Validate(eps); err != nil {
		return nil, fmt.Errorf("first region: %w", err)
	}
	if err := b.Validate(eps); err != nil {
		return nil, fmt.Errorf("second region: %w", err)
	}

	// resolve overlaps between contours of the same region first
	var err error
	if a, err = settleValid(a.Normalize(eps), NonZero, eps); err != nil {
		return nil, fmt.Errorf("first region: %w", err)
	}
	if b, err = settleValid(b.Normalize(eps), NonZero, eps); err != nil {
		return nil, fmt.Errorf("second region: %w", err)
	}

	if b.Empty() {
		if op == opAnd {
			return Region{}, nil
		}
		return a, nil
	}
	if a.Empty() {
		if op == opOr || op == opXor {
			return b, nil
		}
		return Region{}, nil
	}

	vm := newVertexMap(eps)
	fragsA := splitContours(a, b, false, vm, eps)
	fragsB := splitContours(b, a, false, vm, eps)

	var kept []fragment
	for _, f := range fragsA {
		class, same := classifyFragment(f, b, eps)
		switch op {
		case opOr:
			if class < 0 || class == 0 && same {
				kept = append(kept, f)
			}
		case opAnd:
			if 0 < class || class == 0 && same {
				kept = append(kept, f)
			}
		case opNot:
			if class < 0 || class == 0 && !same {
				kept = append(kept, f)
			}
		case opXor:
			if class < 0 || class == 0 && !same {
				kept = append(kept, f)
			} else if 0 < class {
				kept = append(kept, f.reverse())
			}
		}
	}
	for _, f := range fragsB {
		class, same := classifyFragment(f, a, eps)
		switch op {
		case opOr:
			if class < 0 {
				kept = append(kept, f)
			}
		case opAnd:
			if 0 < class {
				kept = append(kept, f)
			}
		case opNot:
			if 0 < class {
				kept = append(kept, f.reverse())
			}
		case opXor:
			if class < 0 || class == 0 && !same {
				kept = append(kept, f)
			} else if 0 < class {
				kept = append(kept, f.reverse())
			}
		}
	}
	return assemble(kept, vm, eps)
}

// Settle rebuilds a region from possibly overlapping or mutually
// intersecting simple contours so that the result's contours are disjoint
// except for shared vertices, with filled area on the left of every contour:
// enclosing contours counter clockwise and holes clockwise.
func Settle(r Region, fillRule FillRule, eps float64) (Region, error) {
	if err := r.Validate(eps); err != nil {
		return nil, err
	}
	return settleValid(r.Normalize(eps), fillRule, eps)
}

// settleValid is Settle without input validation.
func settleValid(r Region, fillRule FillRule, eps float64) (Region, error) {
	if !contoursInteract(r, eps) {
		return r, nil
	}
	return rebuild(r, fillRule, eps)
}

// MakeRegion decomposes a single, possibly self-intersecting closed path
// into a region of simple contours. With EvenOdd the path splits into
// independent contours segregated by local winding parity; with NonZero all
// area with non-zero winding is merged, yielding the outline.
func MakeRegion(path Contour, fillRule FillRule, eps float64) (Region, error) {
	for _, p := range path {
		if !p.IsFinite() {
			return nil, fmt.Errorf("vertex %v: %w", p, ErrInvalidInput)
		}
	}
	path = path.Normalize(eps)
	if len(path) < 3 {
		return nil, fmt.Errorf("fewer than 3 distinct vertices: %w", ErrInvalidInput)
	}
	return rebuild(Region{path}, fillRule, eps)
}

// rebuild splits all contours at all intersections, including
// self-intersections, keeps the fragments that separate filled from unfilled
// area by sampling the winding number on both sides, and reassembles them.
func rebuild(r Region, fillRule FillRule, eps float64) (Region, error) {
	vm := newVertexMap(eps)
	frags := splitContours(r, r, true, vm, eps)

	bounds := r.Bounds()
	delta := (1.0 + math.Hypot(bounds.W, bounds.H)) * 1e-7

	var kept []fragment
	for _, f := range frags {
		mid, dir := f.sample()
		normal := dir.Rot90CCW().Norm(delta)
		left := fillRule.filled(r.windingCount(mid.Add(normal)))
		right := fillRule.filled(r.windingCount(mid.Sub(normal)))
		if left == right {
			continue
		}
		if right {
			f = f.reverse()
		}
		kept = append(kept, f)
	}
	kept = dedupFragments(kept)
	return assemble(kept, vm, eps)
}

// contoursInteract returns true when segments of two different contours
// intersect, touch mid-edge, or overlap.
func contoursInteract(r Region, eps float64) bool {
	for i := 0; i < len(r); i++ {
		bi := r[i].Bounds()
		for j := i + 1; j < len(r); j++ {
			if !bi.Overlaps(r[j].Bounds(), eps) {
				continue
			}
			for k, a0 := range r[i] {
				a1 := r[i][(k+1)%len(r[i])]
				for l, b0 := range r[j] {
					b1 := r[j][(l+1)%len(r[j])]
					for _, z := range intersectSegments(a0, a1, b0, b1, eps) {
						onAEnd := z.ta == 0.0 || z.ta == 1.0
						onBEnd := z.tb == 0.0 || z.tb == 1.0
						if z.parallel || !onAEnd || !onBEnd {
							return true
						}
						// vertex-vertex touch doesn't alter fill
					}
				}
			}
		}
	}
	return false
}

////////////////////////////////////////////////////////////////

type segIntersection struct {
	p        Point
	ta, tb   float64
	parallel bool
}

// intersectSegments returns the intersections between segments a0a1 and
// b0b1. A crossing or endpoint touch yields one intersection; a collinear
// overlap yields the overlap's end points with parallel set, snapped onto
// the existing end points so that overlapping edges are not fragmented.
// Adapted from line-line intersection with parameter snapping; parallel
// non-collinear segments yield none.
func intersectSegments(a0, a1, b0, b1 Point, eps float64) []segIntersection {
	if a0.EqualsEps(a1, eps) || b0.EqualsEps(b1, eps) {
		return nil // zero-length segment
	}
	tol := math.Max(eps, 1e-12)
	da, db := a1.Sub(a0), b1.Sub(b0)
	lenA, lenB := da.Length(), db.Length()

	distB0 := math.Abs(da.PerpDot(b0.Sub(a0))) / lenA
	distB1 := math.Abs(da.PerpDot(b1.Sub(a0))) / lenA
	if distB0 <= tol && distB1 <= tol {
		// collinear, possibly overlapping
		u := da.Div(lenA)
		sb0 := b0.Sub(a0).Dot(u)
		sb1 := b1.Sub(a0).Dot(u)
		lo := math.Max(math.Min(sb0, sb1), 0.0)
		hi := math.Min(math.Max(sb0, sb1), lenA)
		if hi < lo-tol {
			return nil
		}
		if hi < lo {
			lo, hi = (lo+hi)/2.0, (lo+hi)/2.0
		}
		var zs []segIntersection
		for _, s := range []float64{lo, hi} {
			ta := snapParam(s/lenA, tol/lenA)
			tb := snapParam((s-sb0)/(sb1-sb0), tol/lenB)
			zs = append(zs, segIntersection{paramPoint(a0, a1, b0, b1, ta, tb), ta, tb, true})
			if hi-lo <= tol {
				break // single touch point
			}
		}
		return zs
	}

	div := da.PerpDot(db)
	if div == 0.0 {
		return nil // parallel but not collinear
	}
	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	epsA, epsB := tol/lenA, tol/lenB
	if -epsA <= ta && ta <= 1.0+epsA && -epsB <= tb && tb <= 1.0+epsB {
		ta = snapParam(ta, epsA)
		tb = snapParam(tb, epsB)
		return []segIntersection{{paramPoint(a0, a1, b0, b1, ta, tb), ta, tb, false}}
	}
	return nil
}

func snapParam(t, epsT float64) float64 {
	if t <= epsT {
		return 0.0
	} else if 1.0-epsT <= t {
		return 1.0
	}
	return t
}

// paramPoint returns the intersection point, preferring existing end points
// when a parameter snapped onto one.
func paramPoint(a0, a1, b0, b1 Point, ta, tb float64) Point {
	if ta == 0.0 {
		return a0
	} else if ta == 1.0 {
		return a1
	} else if tb == 0.0 {
		return b0
	} else if tb == 1.0 {
		return b1
	}
	return a0.Interpolate(a1, ta)
}

////////////////////////////////////////////////////////////////

// vertexMap merges nearly coincident intersection points into canonical
// vertices using a grid bucketed by eps, so that cut points found on
// different segments become the same graph node.
type vertexMap struct {
	h     float64
	cells map[[2]int][]Point
}

func newVertexMap(eps float64) *vertexMap {
	h := eps
	if h <= 0.0 {
		h = 1e-12
	}
	return &vertexMap{h, map[[2]int][]Point{}}
}

// canonical returns the representative vertex for p, registering p if no
// vertex within eps exists yet.
func (vm *vertexMap) canonical(p Point) Point {
	ix := int(math.Floor(p.X / vm.h))
	iy := int(math.Floor(p.Y / vm.h))
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, q := range vm.cells[[2]int{ix + dx, iy + dy}] {
				if q.EqualsEps(p, vm.h) {
					return q
				}
			}
		}
	}
	key := [2]int{ix, iy}
	vm.cells[key] = append(vm.cells[key], p)
	return p
}

////////////////////////////////////////////////////////////////

// fragment is a run of contour vertices between two junction vertices, or a
// full uncut contour when closed is set.
type fragment struct {
	pts    []Point
	closed bool
}

func (f fragment) start() Point {
	return f.pts[0]
}

func (f fragment) end() Point {
	return f.pts[len(f.pts)-1]
}

func (f fragment) reverse() fragment {
	pts := make([]Point, len(f.pts))
	for i, p := range f.pts {
		pts[len(pts)-1-i] = p
	}
	if f.closed {
		// keep the starting vertex of closed rings
		pts = append(pts[len(pts)-1:], pts[:len(pts)-1]...)
	}
	return fragment{pts, f.closed}
}

// sample returns the midpoint and direction of the fragment's middle
// segment.
func (f fragment) sample() (Point, Point) {
	i := (len(f.pts) - 1) / 2
	j := i + 1
	if f.closed {
		i, j = 0, 1
	}
	return f.pts[i].Interpolate(f.pts[j], 0.5), f.pts[j].Sub(f.pts[i])
}

type cut struct {
	pos float64 // segment index plus parameter, in [0,n]
	p   Point
}

// splitContours cuts every contour of r at its intersections with the
// cutters and returns the resulting fragments with junctions merged through
// vm. With self set, r and cutters are the same group: every unordered
// segment pair is visited once and cuts are recorded on both sides, which
// also splits contours at their self-intersections.
func splitContours(r Region, cutters Region, self bool, vm *vertexMap, eps float64) []fragment {
	cuts := make([][]cut, len(r))
	for i, c := range r {
		n := len(c)
		for k, a0 := range c {
			a1 := c[(k+1)%n]
			for j, d := range cutters {
				m := len(d)
				for l, b0 := range d {
					if self {
						// visit each unordered pair once
						if j < i || j == i && l < k {
							continue
						}
						if j == i && l == k {
							continue // same segment
						}
					}
					b1 := d[(l+1)%m]
					adjacent := self && j == i && (l == k+1 || k == 0 && l == n-1)
					for _, z := range intersectSegments(a0, a1, b0, b1, eps) {
						if adjacent && !z.parallel {
							// consecutive segments always share a vertex
							shared := a1
							if k == 0 && l == n-1 {
								shared = a0
							}
							if z.p.EqualsEps(shared, eps) {
								continue
							}
						}
						p := vm.canonical(z.p)
						cuts[i] = append(cuts[i], cut{float64(k) + z.ta, p})
						if self {
							cuts[j] = append(cuts[j], cut{float64(l) + z.tb, p})
						}
					}
				}
			}
		}
	}

	var frags []fragment
	for i, c := range r {
		frags = append(frags, cutContour(c, cuts[i], vm, eps)...)
	}
	return frags
}

// cutContour splits a single contour at the given cut positions.
func cutContour(c Contour, cs []cut, vm *vertexMap, eps float64) []fragment {
	n := len(c)
	if len(cs) == 0 {
		return []fragment{{c, true}}
	}
	for i := range cs {
		if float64(n) <= cs[i].pos {
			cs[i].pos -= float64(n)
		}
	}
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].pos < cs[j].pos
	})

	// merge duplicate cuts of the same junction
	merged := cs[:1]
	for _, z := range cs[1:] {
		last := merged[len(merged)-1]
		if z.p == last.p && z.pos-last.pos < 0.5 {
			continue
		}
		merged = append(merged, z)
	}
	if 1 < len(merged) {
		first, last := merged[0], merged[len(merged)-1]
		if first.p == last.p && first.pos+float64(n)-last.pos < 0.5 {
			merged = merged[:len(merged)-1]
		}
	}
	cs = merged

	// build the augmented vertex ring with junction marks; cut parameters
	// are snapped so that cuts at vertices have exactly integral positions
	type ringPt struct {
		p        Point
		junction bool
	}
	var ring []ringPt
	j := 0
	for i := 0; i < n; i++ {
		v := ringPt{c[i], false}
		if j < len(cs) && cs[j].pos == float64(i) {
			v = ringPt{cs[j].p, true}
			j++
		}
		ring = append(ring, v)
		for j < len(cs) && cs[j].pos < float64(i)+1.0 {
			ring = append(ring, ringPt{cs[j].p, true})
			j++
		}
	}

	// collapse approximately equal neighbours, junction points win
	var clean []ringPt
	for _, v := range ring {
		if 0 < len(clean) && clean[len(clean)-1].p.EqualsEps(v.p, eps) {
			if v.junction {
				clean[len(clean)-1] = v
			}
			continue
		}
		clean = append(clean, v)
	}
	for 1 < len(clean) && clean[len(clean)-1].p.EqualsEps(clean[0].p, eps) {
		if clean[len(clean)-1].junction {
			clean[0] = clean[len(clean)-1]
		}
		clean = clean[:len(clean)-1]
	}
	ring = clean

	// rotate the ring to start at a junction
	first := -1
	for i, v := range ring {
		if v.junction {
			first = i
			break
		}
	}
	if first == -1 {
		pts := make([]Point, len(ring))
		for i, v := range ring {
			pts[i] = v.p
		}
		return []fragment{{pts, true}}
	}
	ring = append(ring[first:], ring[:first]...)

	var frags []fragment
	cur := []Point{ring[0].p}
	for _, v := range ring[1:] {
		cur = append(cur, v.p)
		if v.junction {
			frags = append(frags, fragment{cur, false})
			cur = []Point{v.p}
		}
	}
	frags = append(frags, fragment{append(cur, ring[0].p), false})
	return frags
}

// classifyFragment reports where the fragment lies relative to the other
// region: +1 inside, -1 outside, or 0 on its boundary, in which case same
// tells whether the coincident boundary runs in the same direction.
func classifyFragment(f fragment, other Region, eps float64) (int, bool) {
	mid, dir := f.sample()
	class := PointInRegion(mid, other, eps)
	same := true
	if class == 0 {
		if d, ok := boundaryDirAt(other, mid, eps); ok {
			same = 0.0 < dir.Dot(d)
		}
	}
	return class, same
}

// boundaryDirAt returns the direction of the contour segment of r that
// passes within eps of p.
func boundaryDirAt(r Region, p Point, eps float64) (Point, bool) {
	tol := math.Max(eps, 1e-12)
	for _, c := range r {
		for i, a := range c {
			b := c[(i+1)%len(c)]
			if distPointSegment(p, a, b) <= tol {
				return b.Sub(a), true
			}
		}
	}
	return Point{}, false
}

// dedupFragments removes directed duplicates, which arise when coincident
// contour parts are both kept with the same orientation.
func dedupFragments(frags []fragment) []fragment {
	var out []fragment
	for _, f := range frags {
		dup := false
		for _, g := range out {
			if g.closed == f.closed && len(g.pts) == len(f.pts) && g.start() == f.start() && g.end() == f.end() {
				gm, _ := g.sample()
				fm, _ := f.sample()
				if gm.Equals(fm) {
					dup = true
					break
				}
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}

////////////////////////////////////////////////////////////////

// assemble stitches directed fragments into closed contours. At junctions
// with several continuations it takes the most clockwise outgoing fragment
// relative to the reversed incoming direction, tracing faces with their
// interior on the left.
func assemble(frags []fragment, vm *vertexMap, eps float64) (Region, error) {
	var r Region
	var open []fragment
	for _, f := range frags {
		if f.closed {
			if c := Contour(f.pts).Normalize(eps); 3 <= len(c) {
				r = append(r, c)
			}
		} else {
			open = append(open, f)
		}
	}
	sort.Slice(open, func(i, j int) bool {
		if cmp := comparePoints(open[i].start(), open[j].start()); cmp != 0 {
			return cmp < 0
		}
		return comparePoints(open[i].end(), open[j].end()) < 0
	})

	starts := map[Point][]int{}
	for i, f := range open {
		key := vm.canonical(f.start())
		starts[key] = append(starts[key], i)
	}
	used := make([]bool, len(open))

	for i := range open {
		if used[i] {
			continue
		}
		loop := open[i]
		used[i] = true
		pts := append([]Point{}, loop.pts...)
		startKey := vm.canonical(loop.start())
		cur := vm.canonical(loop.end())
		dir := loop.end().Sub(loop.pts[len(loop.pts)-2])
		for cur != startKey {
			next := -1
			bestTheta := math.Inf(1)
			rev := angleNorm(dir.Angle() + math.Pi)
			for _, j := range starts[cur] {
				if used[j] {
					continue
				}
				cand := open[j]
				theta := angleNorm(rev - cand.pts[1].Sub(cand.pts[0]).Angle())
				if theta < 1e-7 {
					// doubling straight back closes a zero-area sliver,
					// take it only as a last resort
					theta += 2.0 * math.Pi
				}
				if theta < bestTheta {
					bestTheta = theta
					next = j
				}
			}
			if next == -1 {
				return nil, fmt.Errorf("open fragment chain at %v: %w", cur, ErrDegenerate)
			}
			used[next] = true
			pts = append(pts, open[next].pts[1:]...)
			cur = vm.canonical(open[next].end())
			dir = open[next].end().Sub(open[next].pts[len(open[next].pts)-2])
		}
		if c := Contour(pts).Normalize(eps); 3 <= len(c) {
			r = append(r, c)
		}
	}
	return r, nil
}
