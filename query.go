package sorted

import (
	"fmt"
	"iter"
)

// Inclusive tells IRange whether its bounds belong to the range.
type Inclusive struct {
	Min, Max bool
}

// Closed includes both bounds of a range.
var Closed = Inclusive{Min: true, Max: true}

// BisectLeft returns the index where v would be inserted before any elements
// equal to v.
func (l *List[T]) BisectLeft(v T) int {
	return l.arr.BisectLeft(v)
}

// BisectRight returns the index where v would be inserted after any elements
// equal to v.
func (l *List[T]) BisectRight(v T) int {
	return l.arr.BisectRight(v)
}

// Count returns the number of elements equal to v.
func (l *List[T]) Count(v T) int {
	return l.arr.BisectRight(v) - l.arr.BisectLeft(v)
}

// Index returns the index of the first element equal to v, or an error
// wrapping ErrNotFound.
func (l *List[T]) Index(v T) (int, error) {
	return l.IndexIn(v, 0, l.Len())
}

// IndexIn returns the index of the first element equal to v within the
// positions [start, stop). Negative bounds count from the end of the list,
// bounds outside the list are clamped.
func (l *List[T]) IndexIn(v T, start, stop int) (int, error) {
	n := l.Len()
	start, stop = clamp(start, n), clamp(stop, n)
	if stop <= start {
		return 0, fmt.Errorf("%w: %v in empty range [%d,%d)", ErrNotFound, v, start, stop)
	}
	probe := func(e T) int { return l.compare(e, v) }
	return l.indexBy(probe, start, stop, v)
}

// indexBy locates the leftmost element matching probe within [start, stop).
func (l *List[T]) indexBy(probe func(T) int, start, stop int, v any) (int, error) {
	left := l.bisectLeftBy(probe)
	right := l.bisectRightBy(probe)
	pos := max(left, start)
	if pos >= right || pos >= stop {
		return 0, fmt.Errorf("%w: %v in range [%d,%d)", ErrNotFound, v, start, stop)
	}
	return pos, nil
}

func (l *List[T]) bisectLeftBy(probe func(T) int) int {
	return l.arr.Index(l.arr.SearchLeft(probe))
}

func (l *List[T]) bisectRightBy(probe func(T) int) int {
	return l.arr.Index(l.arr.SearchRight(probe))
}

// IRange returns an iterator over the elements between min and max. A nil
// bound leaves the respective end of the range open. inclusive tells whether
// elements equal to a bound belong to the range. If reverse is set, elements
// are produced from the largest to the smallest.
//
// Bounds are resolved whenever an iteration starts; the iterator may be
// re-run after l has been modified.
func (l *List[T]) IRange(min, max *T, inclusive Inclusive, reverse bool) iter.Seq[T] {
	var lo, hi func(T) int
	if min != nil {
		m := *min
		lo = func(e T) int { return l.compare(e, m) }
	}
	if max != nil {
		m := *max
		hi = func(e T) int { return l.compare(e, m) }
	}
	return l.irangeBy(lo, hi, inclusive, reverse)
}

func (l *List[T]) irangeBy(lo, hi func(T) int, inclusive Inclusive, reverse bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		start, stop := l.rangePositions(lo, hi, inclusive)
		l.arr.Window(start, stop, reverse)(yield)
	}
}

// rangePositions resolves range probes into positions [start, stop).
func (l *List[T]) rangePositions(lo, hi func(T) int, inclusive Inclusive) (start, stop int) {
	start, stop = 0, l.Len()
	if lo != nil {
		if inclusive.Min {
			start = l.bisectLeftBy(lo)
		} else {
			start = l.bisectRightBy(lo)
		}
	}
	if hi != nil {
		if inclusive.Max {
			stop = l.bisectRightBy(hi)
		} else {
			stop = l.bisectLeftBy(hi)
		}
	}
	return start, stop
}

// ISlice returns an iterator over the elements at positions [start, stop).
// Negative bounds count from the end of the list, bounds outside the list
// are clamped, and stop may be Open to denote the end of the list.
func (l *List[T]) ISlice(start, stop int, reverse bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := l.Len()
		lo, hi := 0, n
		if start != Open {
			lo = clamp(start, n)
		}
		if stop != Open {
			hi = clamp(stop, n)
		}
		l.arr.Window(lo, hi, reverse)(yield)
	}
}

// Compare compares l lexicographically with an ordered sequence of values,
// returning -1, 0 or +1. Comparison stops at the first differing element; a
// proper prefix is less than the longer sequence.
func (l *List[T]) Compare(other iter.Seq[T]) int {
	next, stop := iter.Pull(other)
	defer stop()
	for v := range l.arr.All() {
		w, ok := next()
		if !ok {
			return +1
		}
		if c := l.compare(v, w); c != 0 {
			if c < 0 {
				return -1
			}
			return +1
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}

// Equal reports whether other holds the same number of values as l, each
// comparing equal to the element of l at the same position.
func (l *List[T]) Equal(other iter.Seq[T]) bool {
	return l.Compare(other) == 0
}

// Shape describes the segment layout of a list.
type Shape struct {
	Len        int   // number of elements
	Lengths    []int // length of every segment, in order
	Load       int   // target segment length
	MinFill    int   // lower occupancy bound
	MaxFill    int   // upper occupancy bound
	IndexCache int   // number of cached prefix sums
}

// Shape returns a snapshot of the segment layout of l.
func (l *List[T]) Shape() Shape {
	cfg := l.arr.Config()
	sh := Shape{
		Len:        l.Len(),
		Lengths:    make([]int, l.arr.Segments()),
		Load:       cfg.Load,
		MinFill:    cfg.MinFill,
		MaxFill:    cfg.MaxFill,
		IndexCache: l.arr.IndexCacheLen(),
	}
	for i := range sh.Lengths {
		sh.Lengths[i] = len(l.arr.Segment(i))
	}
	return sh
}

// EachSegment visits all segments in order. The callback receives the index
// of each segment, the position of its first element and a read-only view of
// its elements. Iteration stops at the first callback error and returns that
// error to the caller.
func (l *List[T]) EachSegment(f func(seg int, pos int, values []T) error) error {
	return l.arr.EachSegment(f)
}
