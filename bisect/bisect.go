package bisect

// Left returns the smallest index i such that all elements of s[:i] compare
// strictly less than v. If every element is less than v, Left returns len(s).
//
// s must be ordered with respect to cmp.
func Left[E any](s []E, v E, cmp func(a, b E) int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(s[mid], v) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Right returns the smallest index i such that all elements of s[:i] compare
// less than or equal to v. If no element is greater than v, Right returns len(s).
//
// s must be ordered with respect to cmp.
func Right[E any](s []E, v E, cmp func(a, b E) int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(v, s[mid]) < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// LeftFunc is like Left, but locates the target through probe, which must
// return cmp(element, target).
func LeftFunc[E any](s []E, probe func(E) int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if probe(s[mid]) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// RightFunc is like Right, but locates the target through probe, which must
// return cmp(element, target).
func RightFunc[E any](s []E, probe func(E) int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if probe(s[mid]) > 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Ints is Right specialized for non-decreasing int slices, as used for
// prefix sums.
func Ints(s []int, v int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if v < s[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
