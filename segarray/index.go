package segarray

import "github.com/npillmayer/sorted/bisect"

// invalidate truncates the cumulative index after segment seg. The prefix
// sum of seg itself does not depend on the length of seg and stays valid.
func (a *Array[T]) invalidate(seg int) {
	if len(a.offsets) > seg+1 {
		a.offsets = a.offsets[:seg+1]
	}
}

// Pos translates a position 0 <= pos < Len() into a (segment, offset) pair.
func (a *Array[T]) Pos(pos int) (seg, off int) {
	assert(pos >= 0 && pos < a.length, "Pos called with position out of range")
	if pos < len(a.lists[0]) {
		return 0, pos
	}
	last := len(a.lists) - 1
	if start := a.length - len(a.lists[last]); pos >= start {
		return last, pos - start
	}
	if n := len(a.offsets); n > 0 && pos < a.offsets[n-1]+len(a.lists[n-1]) {
		seg = bisect.Ints(a.offsets, pos) - 1
		return seg, pos - a.offsets[seg]
	}
	if len(a.offsets) == 0 {
		a.offsets = append(a.offsets, 0)
	}
	seg = len(a.offsets) - 1
	total := a.offsets[seg]
	for pos >= total+len(a.lists[seg]) {
		total += len(a.lists[seg])
		seg++
		a.offsets = append(a.offsets, total)
	}
	return seg, pos - total
}

// Index translates a (segment, offset) pair into a position. Index(Segments(), 0)
// is Len().
func (a *Array[T]) Index(seg, off int) int {
	switch {
	case seg == 0:
		return off
	case seg >= len(a.lists):
		return a.length
	case seg == len(a.lists)-1:
		return a.length - len(a.lists[seg]) + off
	case seg < len(a.offsets):
		return a.offsets[seg] + off
	}
	if len(a.offsets) == 0 {
		a.offsets = append(a.offsets, 0)
	}
	for i := len(a.offsets); i <= seg; i++ {
		a.offsets = append(a.offsets, a.offsets[i-1]+len(a.lists[i-1]))
	}
	return a.offsets[seg] + off
}

// IndexCacheLen reports how many prefix sums are currently cached.
func (a *Array[T]) IndexCacheLen() int {
	return len(a.offsets)
}
