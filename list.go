package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/sorted/segarray"
)

// List is a sorted sequence of elements.
//
// Lists have to be created by one of the constructors; the zero value of List
// is not usable. Elements are ordered by the comparison function fixed at
// construction time. Equal elements (comparing to 0) are kept in insertion
// order.
type List[T any] struct {
	cfg     Config
	compare func(a, b T) int
	arr     *segarray.Array[T]
}

// New creates an empty list of naturally ordered elements with default
// configuration.
func New[T cmp.Ordered]() *List[T] {
	l, err := NewFunc(cmp.Compare[T], Config{})
	assert(err == nil, "New: default configuration rejected")
	return l
}

// NewFunc creates an empty list ordered by compare, which must return a
// negative number if a < b, a positive number if a > b and zero if a and b
// are equal in ordering.
func NewFunc[T any](compare func(a, b T) int, cfg Config) (*List[T], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	arr, err := segarray.New(compare, cfg.segments())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &List[T]{cfg: cfg, compare: compare, arr: arr}, nil
}

// From creates a list of naturally ordered elements from a sequence of values
// in arbitrary order.
func From[T cmp.Ordered](values iter.Seq[T]) *List[T] {
	l := New[T]()
	l.Update(slices.Collect(values)...)
	return l
}

// FromSlice creates a list of naturally ordered elements from values in
// arbitrary order. values is not retained.
func FromSlice[T cmp.Ordered](values []T) *List[T] {
	l := New[T]()
	l.Update(values...)
	return l
}

// Config returns the effective configuration of l.
func (l *List[T]) Config() Config {
	c := l.cfg
	seg := l.arr.Config()
	c.Load, c.MinFill, c.MaxFill = seg.Load, seg.MinFill, seg.MaxFill
	return c
}

// CompareFunc returns the comparison function of l.
func (l *List[T]) CompareFunc() func(a, b T) int {
	return l.compare
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.arr.Len()
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.arr.Clear()
}

// Copy returns an independent list with the same elements and configuration.
func (l *List[T]) Copy() *List[T] {
	c := l.empty()
	c.arr.Reset(l.arr.Values())
	return c
}

// empty returns an empty list configured like l.
func (l *List[T]) empty() *List[T] {
	arr, err := segarray.New(l.compare, l.cfg.segments())
	assert(err == nil, "list configuration became invalid")
	return &List[T]{cfg: l.cfg, compare: l.compare, arr: arr}
}

// Add inserts v in order. Among equal elements, v is placed last.
func (l *List[T]) Add(v T) {
	l.arr.Insert(v)
}

// Update adds all values. For batches large relative to the size of l (see
// Config.UpdateRatio) the list is rebuilt by sorting all elements at once,
// otherwise values are inserted one by one.
func (l *List[T]) Update(values ...T) {
	m := len(values)
	if m == 0 {
		return
	}
	n := l.Len()
	if float64(m) < l.cfg.UpdateRatio*float64(n) {
		tracer().Debugf("sorted: update inserts %d values into %d elements", m, n)
		for _, v := range values {
			l.arr.Insert(v)
		}
		return
	}
	tracer().Debugf("sorted: update rebuilds from %d+%d elements", n, m)
	all := make([]T, 0, n+m)
	all = append(all, l.arr.Values()...)
	all = append(all, values...)
	slices.SortStableFunc(all, l.compare)
	l.arr.Reset(all)
}

// UpdateSeq adds all values of a sequence, see Update.
func (l *List[T]) UpdateSeq(values iter.Seq[T]) {
	l.Update(slices.Collect(values)...)
}

// Contains reports whether an element equal to v is a member of l.
func (l *List[T]) Contains(v T) bool {
	_, _, found := l.arr.Find(v)
	return found
}

// Discard removes the first element equal to v. If there is no such element,
// Discard does nothing. It reports whether an element has been removed.
func (l *List[T]) Discard(v T) bool {
	seg, off, found := l.arr.Find(v)
	if found {
		l.arr.Delete(seg, off)
	}
	return found
}

// Remove removes the first element equal to v. If there is no such element,
// Remove returns an error wrapping ErrNotFound.
func (l *List[T]) Remove(v T) error {
	if !l.Discard(v) {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	return nil
}

// All returns an iterator over the elements of l in order.
func (l *List[T]) All() iter.Seq[T] {
	return l.arr.All()
}

// Backward returns an iterator over the elements of l in reverse order.
func (l *List[T]) Backward() iter.Seq[T] {
	return l.arr.Backward()
}

// Values returns the elements of l as a fresh slice.
func (l *List[T]) Values() []T {
	return l.arr.Values()
}

// Repeat returns a new list holding every element of l n times.
func (l *List[T]) Repeat(n int) *List[T] {
	r := l.empty()
	if n <= 0 || l.Len() == 0 {
		return r
	}
	values := make([]T, 0, n*l.Len())
	for v := range l.arr.All() {
		for range n {
			values = append(values, v)
		}
	}
	r.arr.Reset(values)
	return r
}

// Check validates the structural invariants of l and reports the first
// violation found. It is intended for tests and debugging.
func (l *List[T]) Check() error {
	return l.arr.Check()
}

// String returns a representation of l listing all elements.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("List[")
	first := true
	for v := range l.arr.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
