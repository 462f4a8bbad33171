package region

import "sort"

// Identity is the default sort key.
func Identity(v Value) Value {
	return v
}

// Sort returns a new slice with the values ordered by Compare. The relative
// order of equal values is unspecified; the current implementation happens to
// preserve input order.
func Sort(vs []Value) []Value {
	return SortBy(vs, Identity)
}

// SortBy returns a new slice with the values ordered by Compare over the
// projected keys.
func SortBy(vs []Value, key func(Value) Value) []Value {
	idx := SortIndicesBy(vs, key)
	return Select(vs, idx)
}

// SortIndices returns the permutation of indices that sorts vs.
func SortIndices(vs []Value) []int {
	return SortIndicesBy(vs, Identity)
}

// SortIndicesBy returns the permutation of indices that sorts vs by the
// projected keys, so that Select(vs, SortIndicesBy(vs, key)) equals
// SortBy(vs, key).
func SortIndicesBy(vs []Value, key func(Value) Value) []int {
	keys := make([]Value, len(vs))
	for i, v := range vs {
		keys[i] = key(v)
	}
	idx := make([]int, len(vs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return Compare(keys[idx[i]], keys[idx[j]]) < 0
	})
	return idx
}

// Select returns the values of vs at the given indices.
func Select(vs []Value, idx []int) []Value {
	ws := make([]Value, len(idx))
	for i, j := range idx {
		ws[i] = vs[j]
	}
	return ws
}

// GroupBy sorts vs by the projected keys and partitions the result into
// maximal runs of equal keys, preserving the sort order.
func GroupBy(vs []Value, key func(Value) Value) [][]Value {
	if len(vs) == 0 {
		return nil
	}
	idx := SortIndicesBy(vs, key)
	var groups [][]Value
	start := 0
	for i := 1; i <= len(idx); i++ {
		if i == len(idx) || Compare(key(vs[idx[i-1]]), key(vs[idx[i]])) != 0 {
			groups = append(groups, Select(vs, idx[start:i]))
			start = i
		}
	}
	return groups
}

// Unique returns the sorted values of vs with duplicates removed.
func Unique(vs []Value) []Value {
	ws, _ := UniqueCounts(vs)
	return ws
}

// UniqueCounts returns the sorted distinct values of vs together with the
// number of occurrences of each.
func UniqueCounts(vs []Value) ([]Value, []int) {
	if len(vs) == 0 {
		return nil, nil
	}
	sorted := Sort(vs)
	ws := []Value{sorted[0]}
	counts := []int{1}
	for _, v := range sorted[1:] {
		if Compare(ws[len(ws)-1], v) == 0 {
			counts[len(counts)-1]++
		} else {
			ws = append(ws, v)
			counts = append(counts, 1)
		}
	}
	return ws, counts
}

// Dedup returns vs with consecutive approximate duplicates removed, keeping
// the first of each run. Numeric leaves match within eps, everything else
// must be exactly equal. When closed is set the last value is also dropped
// if it matches the first.
func Dedup(vs []Value, closed bool, eps float64) []Value {
	if len(vs) == 0 {
		return nil
	}
	ws := []Value{vs[0]}
	for _, v := range vs[1:] {
		if !Approx(ws[len(ws)-1], v, eps) {
			ws = append(ws, v)
		}
	}
	if closed {
		for 1 < len(ws) && Approx(ws[len(ws)-1], ws[0], eps) {
			ws = ws[:len(ws)-1]
		}
	}
	return ws
}
