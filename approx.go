package region

// Approx returns true if a and b are structurally equal where corresponding
// numeric leaves may differ by at most eps. Non-numeric leaves must be
// exactly equal and mismatched kinds or list lengths are never approximately
// equal.
func Approx(a, b Value, eps float64) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case UndefinedKind:
		return true
	case BoolKind:
		return a.b == b.b
	case NumberKind:
		return equalWithin(a.n, b.n, eps)
	case StringKind:
		return a.s == b.s
	case ListKind:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Approx(a.list[i], b.list[i], eps) {
				return false
			}
		}
		return true
	}
	return false
}
