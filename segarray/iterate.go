package segarray

import "iter"

// All returns an iterator over all elements in order.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seg := range a.lists {
			for _, v := range seg {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Backward returns an iterator over all elements in reverse order.
func (a *Array[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(a.lists) - 1; i >= 0; i-- {
			seg := a.lists[i]
			for j := len(seg) - 1; j >= 0; j-- {
				if !yield(seg[j]) {
					return
				}
			}
		}
	}
}

// Window returns an iterator over the positions [start, stop), front to back
// or back to front. Bounds are clamped to [0, Len()].
//
// The window is resolved when iteration starts, so the returned iterator may
// be re-run after the array has been modified.
func (a *Array[T]) Window(start, stop int, reverse bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		lo, hi := max(start, 0), min(stop, a.length)
		if lo >= hi {
			return
		}
		if reverse {
			seg, off := a.Pos(hi - 1)
			for n := hi - lo; ; seg, off = seg-1, -1 {
				lst := a.lists[seg]
				if off < 0 {
					off = len(lst) - 1
				}
				for ; off >= 0; off-- {
					if !yield(lst[off]) {
						return
					}
					if n--; n == 0 {
						return
					}
				}
			}
		}
		seg, off := a.Pos(lo)
		for n := hi - lo; ; seg, off = seg+1, 0 {
			lst := a.lists[seg]
			for ; off < len(lst); off++ {
				if !yield(lst[off]) {
					return
				}
				if n--; n == 0 {
					return
				}
			}
		}
	}
}

// EachSegment visits all segments in order, passing each segment's index,
// the position of its first element and a read-only view of its elements.
// Iteration stops at the first callback error and returns that error.
func (a *Array[T]) EachSegment(f func(seg int, pos int, values []T) error) error {
	pos := 0
	for i, lst := range a.lists {
		if err := f(i, pos, lst); err != nil {
			return err
		}
		pos += len(lst)
	}
	return nil
}
