package segarray

import "github.com/npillmayer/sorted/bisect"

// SearchLeft returns the segment and offset of the leftmost position whose
// element is not less than the target described by probe. probe must return
// cmp(element, target). If every element is less than the target, SearchLeft
// returns (Segments(), 0).
func (a *Array[T]) SearchLeft(probe func(T) int) (seg, off int) {
	seg = bisect.LeftFunc(a.maxes, probe)
	if seg == len(a.maxes) {
		return seg, 0
	}
	return seg, bisect.LeftFunc(a.lists[seg], probe)
}

// SearchRight returns the segment and offset of the leftmost position whose
// element is greater than the target described by probe. If no element is
// greater than the target, SearchRight returns (Segments(), 0).
func (a *Array[T]) SearchRight(probe func(T) int) (seg, off int) {
	seg = bisect.RightFunc(a.maxes, probe)
	if seg == len(a.maxes) {
		return seg, 0
	}
	return seg, bisect.RightFunc(a.lists[seg], probe)
}

// BisectLeft returns the position where v would be inserted before any equal
// elements.
func (a *Array[T]) BisectLeft(v T) int {
	seg := bisect.Left(a.maxes, v, a.cmp)
	if seg == len(a.maxes) {
		return a.length
	}
	return a.Index(seg, bisect.Left(a.lists[seg], v, a.cmp))
}

// BisectRight returns the position where v would be inserted after any equal
// elements.
func (a *Array[T]) BisectRight(v T) int {
	seg := bisect.Right(a.maxes, v, a.cmp)
	if seg == len(a.maxes) {
		return a.length
	}
	return a.Index(seg, bisect.Right(a.lists[seg], v, a.cmp))
}

// Find returns the segment and offset of the leftmost element equal to v.
func (a *Array[T]) Find(v T) (seg, off int, found bool) {
	seg = bisect.Left(a.maxes, v, a.cmp)
	if seg == len(a.maxes) {
		return seg, 0, false
	}
	off = bisect.Left(a.lists[seg], v, a.cmp)
	// maxes[seg] >= v guarantees off < len(lists[seg])
	return seg, off, a.cmp(a.lists[seg][off], v) == 0
}
