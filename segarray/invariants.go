package segarray

import "fmt"

// Check validates the structural invariants of the array and reports the
// first violation found.
//
// This checker is intended for tests and debugging; it visits every element.
func (a *Array[T]) Check() error {
	if a == nil {
		return fmt.Errorf("%w: nil array", ErrCorrupted)
	}
	if len(a.lists) != len(a.maxes) {
		return fmt.Errorf("%w: %d segments but %d maxes", ErrCorrupted, len(a.lists), len(a.maxes))
	}
	if len(a.lists) == 0 {
		if a.length != 0 {
			return fmt.Errorf("%w: empty array has length %d", ErrCorrupted, a.length)
		}
		if len(a.offsets) != 0 {
			return fmt.Errorf("%w: empty array has cached index", ErrCorrupted)
		}
		return nil
	}
	total := 0
	for i, lst := range a.lists {
		if len(lst) == 0 {
			return fmt.Errorf("%w: segment %d is empty", ErrCorrupted, i)
		}
		for j := 1; j < len(lst); j++ {
			if a.cmp(lst[j-1], lst[j]) > 0 {
				return fmt.Errorf("%w: segment %d unordered at offset %d", ErrCorrupted, i, j)
			}
		}
		if a.cmp(a.maxes[i], lst[len(lst)-1]) != 0 {
			return fmt.Errorf("%w: max of segment %d does not match its last element", ErrCorrupted, i)
		}
		if i > 0 && a.cmp(a.lists[i-1][len(a.lists[i-1])-1], lst[0]) > 0 {
			return fmt.Errorf("%w: segments %d and %d unordered", ErrCorrupted, i-1, i)
		}
		if len(lst) > a.cfg.MaxFill {
			return fmt.Errorf("%w: segment %d has %d elements, exceeds %d",
				ErrCorrupted, i, len(lst), a.cfg.MaxFill)
		}
		if i > 0 && i < len(a.lists)-1 && len(lst) < a.cfg.MinFill {
			return fmt.Errorf("%w: segment %d has %d elements, below %d",
				ErrCorrupted, i, len(lst), a.cfg.MinFill)
		}
		if i < len(a.offsets) && a.offsets[i] != total {
			return fmt.Errorf("%w: cached offset of segment %d is %d, should be %d",
				ErrCorrupted, i, a.offsets[i], total)
		}
		total += len(lst)
	}
	if total != a.length {
		return fmt.Errorf("%w: length %d, but segments hold %d elements", ErrCorrupted, a.length, total)
	}
	if len(a.offsets) > len(a.lists) {
		return fmt.Errorf("%w: index caches %d offsets for %d segments",
			ErrCorrupted, len(a.offsets), len(a.lists))
	}
	return nil
}
