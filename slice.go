package sorted

import (
	"fmt"
	"math"
)

// Open marks an omitted slice bound. A Slice with Start or Stop set to Open
// extends to the respective end of the list, in the direction of its step.
const Open = math.MinInt

// Slice selects list positions like an extended slice start:stop:step.
// Negative bounds count from the end of the list, bounds outside the list are
// clamped. Step must not be zero.
type Slice struct {
	Start, Stop, Step int
}

// Whole selects every position of a list.
var Whole = Slice{Start: Open, Stop: Open, Step: 1}

// Span returns the slice start:stop with step 1.
func Span(start, stop int) Slice {
	return Slice{Start: start, Stop: stop, Step: 1}
}

// By returns s with step set to step.
func (s Slice) By(step int) Slice {
	s.Step = step
	return s
}

// Indices resolves s against a sequence of length n. It returns the first
// position, the exclusive end position and the step, and the number of
// positions selected.
func (s Slice) Indices(n int) (start, stop, step, count int, err error) {
	step = s.Step
	if step == 0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: slice step must not be zero", ErrInvalidArgument)
	}
	if step > 0 {
		start = bound(s.Start, n, 0, 0, n)
		stop = bound(s.Stop, n, n, 0, n)
		if stop > start {
			count = (stop-start-1)/step + 1
		}
	} else {
		start = bound(s.Start, n, n-1, -1, n-1)
		stop = bound(s.Stop, n, -1, -1, n-1)
		if start > stop {
			count = (stop-start+1)/step + 1
		}
	}
	return start, stop, step, count, nil
}

func bound(i, n, open, lower, upper int) int {
	if i == Open {
		return open
	}
	if i < 0 {
		i += n
	}
	return min(max(i, lower), upper)
}

// ascending converts a resolved slice into its lowest position and a
// positive step, covering the same positions.
func ascending(start, step, count int) (lo, stride int) {
	if count <= 1 {
		return start, 1
	}
	if step > 0 {
		return start, step
	}
	return start + (count-1)*step, -step
}

// GetSlice returns the elements selected by s, in slice order.
func (l *List[T]) GetSlice(s Slice) ([]T, error) {
	start, _, step, count, err := s.Indices(l.Len())
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, count)
	if count == 0 {
		return out, nil
	}
	lo, stride := ascending(start, step, count)
	hi := lo + (count-1)*stride + 1
	i := 0
	for v := range l.arr.Window(lo, hi, step < 0) {
		if i%stride == 0 {
			out = append(out, v)
		}
		i++
	}
	return out, nil
}

// DeleteSlice removes the elements selected by s.
//
// Large contiguous ranges (see Config.RebuildFactor) are removed by
// rebuilding the list from the remaining elements, otherwise elements are
// deleted one at a time from the highest position downwards.
func (l *List[T]) DeleteSlice(s Slice) error {
	n := l.Len()
	start, _, step, count, err := s.Indices(n)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	lo, stride := ascending(start, step, count)
	if stride == 1 {
		l.deleteRange(lo, lo+count)
		return nil
	}
	for pos := lo + (count-1)*stride; pos >= lo; pos -= stride {
		l.arr.Delete(l.arr.Pos(pos))
	}
	return nil
}

// deleteRange removes positions [lo, hi).
func (l *List[T]) deleteRange(lo, hi int) {
	n, count := l.Len(), hi-lo
	switch {
	case count <= 0:
		return
	case lo == 0 && hi == n:
		l.arr.Clear()
	case n <= l.cfg.RebuildFactor*count:
		tracer().Debugf("sorted: deleting %d of %d elements by rebuild", count, n)
		values := l.arr.Values()
		values = append(values[:lo], values[hi:]...)
		l.arr.Reset(values)
	default:
		for pos := hi - 1; pos >= lo; pos-- {
			l.arr.Delete(l.arr.Pos(pos))
		}
	}
}

// SetSlice replaces the elements selected by s with values.
//
// For step 1 the slice may be replaced by any number of values, which have to
// be ordered and fit between the elements surrounding the slice. For other
// steps the number of values must equal the number of selected positions,
// and each value has to fit at its position. Values are assigned in slice
// order. If the new values would break the sort order, l remains unchanged
// and an error wrapping ErrOrderViolation is returned.
func (l *List[T]) SetSlice(s Slice, values []T) error {
	n := l.Len()
	start, stop, step, count, err := s.Indices(n)
	if err != nil {
		return err
	}
	if step == 1 {
		stop = max(stop, start)
		if err := l.checkReplacement(start, stop, values); err != nil {
			return err
		}
		l.deleteRange(start, stop)
		for i, v := range values {
			l.arr.InsertAt(start+i, v)
		}
		return nil
	}
	if len(values) != count {
		return fmt.Errorf("%w: assigning %d values to a slice of %d positions",
			ErrInvalidArgument, len(values), count)
	}
	type assignment struct {
		pos int
		old T
	}
	log := make([]assignment, 0, count)
	for k, v := range values {
		pos := start + k*step
		seg, off := l.arr.Pos(pos)
		log = append(log, assignment{pos: pos, old: l.arr.Get(seg, off)})
		l.arr.Put(seg, off, v)
	}
	for k, a := range log {
		if l.fitsBetween(a.pos-1, a.pos+1, values[k]) {
			continue
		}
		tracer().Infof("sorted: strided assignment violates order at index %d, rolling back", a.pos)
		for j := len(log) - 1; j >= 0; j-- {
			seg, off := l.arr.Pos(log[j].pos)
			l.arr.Put(seg, off, log[j].old)
		}
		return fmt.Errorf("%w: %v does not fit at index %d", ErrOrderViolation, values[k], a.pos)
	}
	return nil
}

// checkReplacement validates that values may replace positions [start, stop).
func (l *List[T]) checkReplacement(start, stop int, values []T) error {
	for i := 1; i < len(values); i++ {
		if l.compare(values[i-1], values[i]) > 0 {
			return fmt.Errorf("%w: values unordered at offset %d", ErrOrderViolation, i)
		}
	}
	if len(values) == 0 {
		return nil
	}
	if !l.fitsBetween(start-1, -1, values[0]) {
		return fmt.Errorf("%w: %v is less than the element before index %d",
			ErrOrderViolation, values[0], start)
	}
	if !l.fitsBetween(-1, stop, values[len(values)-1]) {
		return fmt.Errorf("%w: %v is greater than the element at index %d",
			ErrOrderViolation, values[len(values)-1], stop)
	}
	return nil
}
