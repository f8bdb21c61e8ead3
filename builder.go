package sorted

import (
	"cmp"
	"iter"
	"slices"
)

// Builder incrementally stages values and finalizes them into a List.
//
// Builder collects values in arbitrary order and sorts them only once, when
// List is called. Values already known to be in order may be staged with
// AppendSorted, which only checks for order and skips sorting whenever all
// staged runs line up.
type Builder[T any] struct {
	compare func(a, b T) int
	cfg     Config
	staged  []T
	sorted  bool // staged is known to be in order
	done    bool
	dirty   bool
	list    *List[T]
}

// NewBuilder creates a new and empty builder for naturally ordered values.
func NewBuilder[T cmp.Ordered]() *Builder[T] {
	b, err := NewBuilderFunc(cmp.Compare[T], Config{})
	assert(err == nil, "NewBuilder: default configuration rejected")
	return b
}

// NewBuilderFunc creates a new and empty builder for lists ordered by
// compare and configured by cfg.
func NewBuilderFunc[T any](compare func(a, b T) int, cfg Config) (*Builder[T], error) {
	l, err := NewFunc(compare, cfg)
	if err != nil {
		return nil, err
	}
	return &Builder[T]{compare: compare, cfg: l.cfg, sorted: true, list: l}, nil
}

// List returns the list built from all staged values.
//
// It is illegal to continue adding values after List has been called, but
// List may be called multiple times. Each call returns the same list.
func (b *Builder[T]) List() *List[T] {
	if b.dirty {
		if !b.sorted {
			slices.SortStableFunc(b.staged, b.compare)
		}
		b.list.arr.Reset(b.staged)
		b.staged = nil
		b.dirty = false
	}
	b.done = true
	if b.list.Len() == 0 {
		tracer().Debugf("sorted builder: list is empty")
	}
	return b.list
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.staged = nil
	b.sorted = true
	b.done = false
	b.dirty = false
	b.list = b.list.empty()
}

// Len returns the number of values staged so far.
func (b *Builder[T]) Len() int {
	if b.done {
		return b.list.Len()
	}
	return len(b.staged)
}

// Add stages values in arbitrary order.
func (b *Builder[T]) Add(values ...T) error {
	if b.done {
		return ErrBuilderCompleted
	}
	for _, v := range values {
		b.stage(v)
	}
	return nil
}

// AddSeq stages all values of a sequence in arbitrary order.
func (b *Builder[T]) AddSeq(values iter.Seq[T]) error {
	if b.done {
		return ErrBuilderCompleted
	}
	for v := range values {
		b.stage(v)
	}
	return nil
}

// AppendSorted stages values which have to be in order. If they are not,
// nothing is staged and ErrOrderViolation is returned.
func (b *Builder[T]) AppendSorted(values ...T) error {
	if b.done {
		return ErrBuilderCompleted
	}
	if !slices.IsSortedFunc(values, b.compare) {
		return ErrOrderViolation
	}
	for _, v := range values {
		b.stage(v)
	}
	return nil
}

func (b *Builder[T]) stage(v T) {
	if n := len(b.staged); b.sorted && n > 0 && b.compare(b.staged[n-1], v) > 0 {
		b.sorted = false
	}
	b.staged = append(b.staged, v)
	b.dirty = true
}
