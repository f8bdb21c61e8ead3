package segarray

import (
	"fmt"
	"slices"

	"github.com/npillmayer/sorted/bisect"
)

// Array is an ordered sequence of elements, stored as a slice of bounded,
// individually ordered segments.
//
// An Array created by New is empty. All operations keep the segments ordered
// among each other, keep maxes[i] equal to the last element of segment i, and
// keep Len equal to the sum of all segment lengths.
type Array[T any] struct {
	cfg     Config
	cmp     func(a, b T) int
	lists   [][]T
	maxes   []T
	offsets []int // cumulative index, offsets[i] = sum of lengths of lists[:i]
	length  int
}

// New creates an empty array ordered by cmp.
func New[T any](cmp func(a, b T) int, cfg Config) (*Array[T], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	cfg, err := cfg.Normalized()
	if err != nil {
		return nil, err
	}
	return &Array[T]{cfg: cfg, cmp: cmp}, nil
}

// Config returns the effective (normalized) configuration.
func (a *Array[T]) Config() Config {
	return a.cfg
}

// Compare returns the comparison function the array is ordered by.
func (a *Array[T]) Compare() func(a, b T) int {
	return a.cmp
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return a.length
}

// Segments returns the number of segments.
func (a *Array[T]) Segments() int {
	return len(a.lists)
}

// Segment returns a read-only view of segment i.
func (a *Array[T]) Segment(i int) []T {
	return a.lists[i]
}

// Max returns the cached maximum of segment i.
func (a *Array[T]) Max(i int) T {
	return a.maxes[i]
}

// First returns the smallest element. The array must not be empty.
func (a *Array[T]) First() T {
	assert(a.length > 0, "First called on empty array")
	return a.lists[0][0]
}

// Last returns the largest element. The array must not be empty.
func (a *Array[T]) Last() T {
	assert(a.length > 0, "Last called on empty array")
	return a.maxes[len(a.maxes)-1]
}

// Get returns the element at offset off of segment seg.
func (a *Array[T]) Get(seg, off int) T {
	return a.lists[seg][off]
}

// Clear drops all elements.
func (a *Array[T]) Clear() {
	a.lists = nil
	a.maxes = nil
	a.offsets = a.offsets[:0]
	a.length = 0
}

// Reset replaces the contents of the array with values, which must already be
// ordered. Values are chunked into segments of nearly equal length not
// exceeding Load. The array does not retain values.
func (a *Array[T]) Reset(values []T) {
	a.Clear()
	n := len(values)
	if n == 0 {
		return
	}
	k := (n + a.cfg.Load - 1) / a.cfg.Load
	base, extra := n/k, n%k
	a.lists = make([][]T, 0, k)
	a.maxes = make([]T, 0, k)
	start := 0
	for i := range k {
		size := base
		if i < extra {
			size++
		}
		seg := make([]T, size, size+size/2)
		copy(seg, values[start:start+size])
		a.lists = append(a.lists, seg)
		a.maxes = append(a.maxes, seg[size-1])
		start += size
	}
	a.length = n
	tracer().Debugf("segarray: rebuilt %d elements into %d segments", n, k)
}

// Locate returns the index of the segment an insertion of v is routed to,
// by rightmost bisection over the segment maxes. If v is greater than or
// equal to every max, Locate returns Segments().
func (a *Array[T]) Locate(v T) int {
	return bisect.Right(a.maxes, v, a.cmp)
}

// Insert adds v in order. Among equal elements, v is placed last.
func (a *Array[T]) Insert(v T) {
	if len(a.lists) == 0 {
		a.start(v)
		return
	}
	seg := a.Locate(v)
	if seg == len(a.maxes) {
		seg--
		a.lists[seg] = append(a.lists[seg], v)
		a.maxes[seg] = v
	} else {
		off := bisect.Right(a.lists[seg], v, a.cmp)
		a.lists[seg] = slices.Insert(a.lists[seg], off, v)
	}
	a.length++
	a.invalidate(seg)
	a.expand(seg)
}

// InsertAt inserts v at position pos, 0 <= pos <= Len(), without checking the
// ordering. The caller is responsible for placing v between its neighbours.
func (a *Array[T]) InsertAt(pos int, v T) {
	assert(pos >= 0 && pos <= a.length, "InsertAt position out of range")
	if len(a.lists) == 0 {
		a.start(v)
		return
	}
	var seg, off int
	if pos == a.length {
		seg = len(a.lists) - 1
		off = len(a.lists[seg])
	} else {
		seg, off = a.Pos(pos)
	}
	a.lists[seg] = slices.Insert(a.lists[seg], off, v)
	if off == len(a.lists[seg])-1 {
		a.maxes[seg] = v
	}
	a.length++
	a.invalidate(seg)
	a.expand(seg)
}

// Put replaces the element at (seg, off) without checking the ordering.
func (a *Array[T]) Put(seg, off int, v T) {
	a.lists[seg][off] = v
	if off == len(a.lists[seg])-1 {
		a.maxes[seg] = v
	}
}

// Delete removes the element at offset off of segment seg.
func (a *Array[T]) Delete(seg, off int) {
	a.lists[seg] = slices.Delete(a.lists[seg], off, off+1)
	a.length--
	a.invalidate(seg)
	n := len(a.lists[seg])
	if n == 0 {
		a.lists = slices.Delete(a.lists, seg, seg+1)
		a.maxes = slices.Delete(a.maxes, seg, seg+1)
		if len(a.lists) == 0 {
			a.Clear()
		} else if len(a.offsets) > len(a.lists) {
			a.offsets = a.offsets[:len(a.lists)]
		}
		return
	}
	a.maxes[seg] = a.lists[seg][n-1]
	if n >= a.cfg.MinFill || len(a.lists) == 1 {
		return
	}
	left := seg
	if seg == len(a.lists)-1 {
		left--
	}
	tracer().Debugf("segarray: merging segments %d and %d (%d+%d elements)",
		left, left+1, len(a.lists[left]), len(a.lists[left+1]))
	a.lists[left] = append(a.lists[left], a.lists[left+1]...)
	a.maxes[left] = a.maxes[left+1]
	a.lists = slices.Delete(a.lists, left+1, left+2)
	a.maxes = slices.Delete(a.maxes, left+1, left+2)
	a.invalidate(left)
	a.expand(left)
}

// DeleteAt removes the element at position pos.
func (a *Array[T]) DeleteAt(pos int) error {
	if pos < 0 || pos >= a.length {
		return ErrIndexOutOfBounds
	}
	a.Delete(a.Pos(pos))
	return nil
}

// At returns the element at position pos.
func (a *Array[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= a.length {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	seg, off := a.Pos(pos)
	return a.lists[seg][off], nil
}

// Values returns all elements in order as a fresh slice.
func (a *Array[T]) Values() []T {
	out := make([]T, 0, a.length)
	for _, seg := range a.lists {
		out = append(out, seg...)
	}
	return out
}

// start creates the first segment.
func (a *Array[T]) start(v T) {
	a.lists = append(a.lists, []T{v})
	a.maxes = append(a.maxes, v)
	a.offsets = a.offsets[:0]
	a.length = 1
}

// expand splits segment seg while it exceeds MaxFill.
func (a *Array[T]) expand(seg int) {
	load := a.cfg.Load
	for len(a.lists[seg]) > a.cfg.MaxFill {
		lst := a.lists[seg]
		right := make([]T, len(lst)-load, len(lst))
		copy(right, lst[load:])
		clear(lst[load:])
		a.lists[seg] = lst[:load]
		a.maxes[seg] = lst[load-1]
		a.lists = slices.Insert(a.lists, seg+1, right)
		a.maxes = slices.Insert(a.maxes, seg+1, right[len(right)-1])
		a.invalidate(seg)
		tracer().Debugf("segarray: split segment %d into %d+%d elements", seg, load, len(right))
		seg++
	}
}
