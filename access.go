package sorted

import "fmt"

// normalize maps a possibly negative index onto [0, n). It reports false for
// indices outside the list.
func normalize(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// clamp maps a possibly negative bound onto [0, n], the way Python clamps
// slice and search bounds.
func clamp(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	return min(i, n)
}

// At returns the element at index i. Negative indices count from the end of
// the list.
func (l *List[T]) At(i int) (T, error) {
	pos, ok := normalize(i, l.Len())
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, l.Len())
	}
	seg, off := l.arr.Pos(pos)
	return l.arr.Get(seg, off), nil
}

// First returns the smallest element.
func (l *List[T]) First() (T, error) {
	return l.At(0)
}

// Last returns the largest element.
func (l *List[T]) Last() (T, error) {
	return l.At(-1)
}

// Set replaces the element at index i with v. v has to fit between the
// neighbours of position i, otherwise an error wrapping ErrOrderViolation is
// returned and l is left unchanged.
func (l *List[T]) Set(i int, v T) error {
	pos, ok := normalize(i, l.Len())
	if !ok {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, l.Len())
	}
	if !l.fitsBetween(pos-1, pos+1, v) {
		return fmt.Errorf("%w: %v does not fit at index %d", ErrOrderViolation, v, pos)
	}
	seg, off := l.arr.Pos(pos)
	l.arr.Put(seg, off, v)
	return nil
}

// DeleteAt removes the element at index i.
func (l *List[T]) DeleteAt(i int) error {
	pos, ok := normalize(i, l.Len())
	if !ok {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, l.Len())
	}
	l.arr.Delete(l.arr.Pos(pos))
	return nil
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() (T, error) {
	return l.PopAt(-1)
}

// PopAt removes and returns the element at index i.
func (l *List[T]) PopAt(i int) (T, error) {
	pos, ok := normalize(i, l.Len())
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: pop index %d, length %d", ErrOutOfRange, i, l.Len())
	}
	seg, off := l.arr.Pos(pos)
	v := l.arr.Get(seg, off)
	l.arr.Delete(seg, off)
	return v, nil
}

// Insert inserts v before index i. Negative indices count from the end,
// indices beyond the bounds are clamped. v has to fit between its new
// neighbours, otherwise an error wrapping ErrOrderViolation is returned.
func (l *List[T]) Insert(i int, v T) error {
	pos := clamp(i, l.Len())
	if !l.fitsBetween(pos-1, pos, v) {
		return fmt.Errorf("%w: %v does not fit before index %d", ErrOrderViolation, v, pos)
	}
	l.arr.InsertAt(pos, v)
	return nil
}

// Append adds v at the end of the list. v must not be less than the current
// maximum.
func (l *List[T]) Append(v T) error {
	n := l.Len()
	if n > 0 && l.compare(v, l.arr.Last()) < 0 {
		return fmt.Errorf("%w: %v is less than the last element", ErrOrderViolation, v)
	}
	l.arr.InsertAt(n, v)
	return nil
}

// Extend adds values at the end of the list. values must be ordered and must
// not be less than the current maximum. If they are not, l remains unchanged
// and an error wrapping ErrOrderViolation is returned.
func (l *List[T]) Extend(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	for i := 1; i < len(values); i++ {
		if l.compare(values[i-1], values[i]) > 0 {
			return fmt.Errorf("%w: values unordered at offset %d", ErrOrderViolation, i)
		}
	}
	n := l.Len()
	if n == 0 {
		l.arr.Reset(values)
		return nil
	}
	if l.compare(values[0], l.arr.Last()) < 0 {
		return fmt.Errorf("%w: %v is less than the last element", ErrOrderViolation, values[0])
	}
	for _, v := range values {
		l.arr.InsertAt(l.arr.Len(), v)
	}
	return nil
}

// fitsBetween reports whether v may be placed between the elements at
// positions prev and next. Positions outside the list do not constrain v.
func (l *List[T]) fitsBetween(prev, next int, v T) bool {
	if prev >= 0 && prev < l.Len() {
		seg, off := l.arr.Pos(prev)
		if l.compare(l.arr.Get(seg, off), v) > 0 {
			return false
		}
	}
	if next >= 0 && next < l.Len() {
		seg, off := l.arr.Pos(next)
		if l.compare(v, l.arr.Get(seg, off)) > 0 {
			return false
		}
	}
	return true
}
