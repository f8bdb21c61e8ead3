package sortedset

import (
	"iter"
	"slices"
)

// Update adds all values which are not yet members. The new members are
// merged into the ordered list in one batch, see sorted.List.Update.
func (s *Set[T]) Update(values ...T) {
	s.UpdateSeq(slices.Values(values))
}

// UpdateSeq adds all values of a sequence, see Update.
func (s *Set[T]) UpdateSeq(values iter.Seq[T]) {
	var fresh []T
	for v := range values {
		if !s.Contains(v) {
			s.members[v] = struct{}{}
			fresh = append(fresh, v)
		}
	}
	s.list.Update(fresh...)
}

// Union returns a new set with the members of s and all others.
func (s *Set[T]) Union(others ...iter.Seq[T]) *Set[T] {
	u := s.Copy()
	for _, other := range others {
		u.UpdateSeq(other)
	}
	return u
}

// Intersection returns a new set with the members of s which are contained
// in every one of others.
func (s *Set[T]) Intersection(others ...iter.Seq[T]) *Set[T] {
	c := s.Copy()
	c.IntersectionUpdate(others...)
	return c
}

// IntersectionUpdate removes all members of s which are not contained in
// every one of others.
func (s *Set[T]) IntersectionUpdate(others ...iter.Seq[T]) {
	for _, other := range others {
		keep := make(map[T]struct{})
		for v := range other {
			if s.Contains(v) {
				keep[v] = struct{}{}
			}
		}
		s.retain(func(v T) bool {
			_, ok := keep[v]
			return ok
		})
	}
}

// Difference returns a new set with the members of s which are contained in
// none of others.
func (s *Set[T]) Difference(others ...iter.Seq[T]) *Set[T] {
	c := s.Copy()
	c.DifferenceUpdate(others...)
	return c
}

// DifferenceUpdate removes all members of s which are contained in any of
// others.
func (s *Set[T]) DifferenceUpdate(others ...iter.Seq[T]) {
	drop := make(map[T]struct{})
	for _, other := range others {
		for v := range other {
			if s.Contains(v) {
				drop[v] = struct{}{}
			}
		}
	}
	s.retain(func(v T) bool {
		_, ok := drop[v]
		return !ok
	})
}

// SymmetricDifference returns a new set with the values which are members of
// either s or other, but not both.
func (s *Set[T]) SymmetricDifference(other iter.Seq[T]) *Set[T] {
	c := s.Copy()
	c.SymmetricDifferenceUpdate(other)
	return c
}

// SymmetricDifferenceUpdate replaces the members of s by the values which
// are members of either s or other, but not both.
func (s *Set[T]) SymmetricDifferenceUpdate(other iter.Seq[T]) {
	common := make(map[T]struct{})
	var fresh []T
	seen := make(map[T]struct{})
	for v := range other {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if s.Contains(v) {
			common[v] = struct{}{}
		} else {
			fresh = append(fresh, v)
		}
	}
	s.retain(func(v T) bool {
		_, ok := common[v]
		return !ok
	})
	s.Update(fresh...)
}

// retain keeps the members for which keep returns true. Few removals are
// applied one by one, otherwise the list is rebuilt from the survivors.
func (s *Set[T]) retain(keep func(T) bool) {
	n := s.Len()
	var survivors, doomed []T
	for v := range s.list.All() {
		if keep(v) {
			survivors = append(survivors, v)
		} else {
			doomed = append(doomed, v)
		}
	}
	if len(doomed) == 0 {
		return
	}
	for _, v := range doomed {
		delete(s.members, v)
	}
	if float64(len(doomed)) < s.list.Config().UpdateRatio*float64(n) {
		for _, v := range doomed {
			s.list.Discard(v)
		}
		return
	}
	tracer().Debugf("sortedset: rebuilding from %d of %d members", len(survivors), n)
	s.list.Clear()
	if err := s.list.Extend(survivors...); err != nil {
		panic("sortedset: survivors out of order")
	}
}

// IsSubset reports whether every member of s is a member of other.
func (s *Set[T]) IsSubset(other *Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for v := range s.members {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every value of other is a member of s.
func (s *Set[T]) IsSuperset(other iter.Seq[T]) bool {
	for v := range other {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether no value of other is a member of s.
func (s *Set[T]) IsDisjoint(other iter.Seq[T]) bool {
	for v := range other {
		if s.Contains(v) {
			return false
		}
	}
	return true
}
