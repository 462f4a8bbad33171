package region

// ContoursEqual returns true if c and d trace the same vertex loop up to a
// cyclic rotation of the starting vertex, with vertices matching within eps.
func ContoursEqual(c, d Contour, eps float64) bool {
	c, d = c.Normalize(eps), d.Normalize(eps)
	if len(c) != len(d) {
		return false
	}
	n := len(c)
	for offset := 0; offset < n; offset++ {
		match := true
		for i := 0; i < n; i++ {
			if !c[i].EqualsEps(d[(i+offset)%n], eps) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// RegionsEqual returns true if r1 and r2 contain the same multiset of
// contours, matching each contour up to cyclic rotation of its starting
// vertex and epsilon point equality. With eitherWinding set, contours also
// match when one is the reverse of the other; the boolean operations do not
// fix a canonical winding direction for their output, so consumers comparing
// against hand-written expectations usually want this.
func RegionsEqual(r1, r2 Region, eitherWinding bool, eps float64) bool {
	r1, r2 = r1.Normalize(eps), r2.Normalize(eps)
	if len(r1) != len(r2) {
		return false
	}
	used := make([]bool, len(r2))
	for _, c := range r1 {
		found := false
		for j, d := range r2 {
			if used[j] {
				continue
			}
			if ContoursEqual(c, d, eps) || eitherWinding && ContoursEqual(c, d.Reverse(), eps) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
