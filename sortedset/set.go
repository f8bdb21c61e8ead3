package sortedset

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/sorted"
)

// ErrCorrupted is returned by Check if the hash set and the sorted list of a
// set disagree.
var ErrCorrupted = errors.New("sortedset: hash set and list out of sync")

// Set is an ordered set of distinct values.
//
// Values have to be comparable for hashing and ordered by the comparison
// function of the set. Two values which compare equal must also be == to each
// other, otherwise the set behaves unpredictably.
type Set[T comparable] struct {
	members map[T]struct{}
	list    *sorted.List[T]
}

// New creates an empty set of naturally ordered values.
func New[T cmp.Ordered]() *Set[T] {
	return &Set[T]{members: make(map[T]struct{}), list: sorted.New[T]()}
}

// NewFunc creates an empty set ordered by compare and configured by cfg.
func NewFunc[T comparable](compare func(a, b T) int, cfg sorted.Config) (*Set[T], error) {
	l, err := sorted.NewFunc(compare, cfg)
	if err != nil {
		return nil, err
	}
	return &Set[T]{members: make(map[T]struct{}), list: l}, nil
}

// From creates a set of naturally ordered values from a sequence, dropping
// duplicates.
func From[T cmp.Ordered](values iter.Seq[T]) *Set[T] {
	s := New[T]()
	s.UpdateSeq(values)
	return s
}

// empty returns an empty set configured like s.
func (s *Set[T]) empty() *Set[T] {
	l, err := sorted.NewFunc(s.list.CompareFunc(), s.list.Config())
	if err != nil {
		panic("sortedset: list configuration became invalid")
	}
	return &Set[T]{members: make(map[T]struct{}), list: l}
}

// Len returns the number of values in s.
func (s *Set[T]) Len() int {
	return len(s.members)
}

// Contains reports whether v is a member of s.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.members[v]
	return ok
}

// Add inserts v. It reports whether v has been added, i.e. was not already a
// member.
func (s *Set[T]) Add(v T) bool {
	if s.Contains(v) {
		return false
	}
	s.members[v] = struct{}{}
	s.list.Add(v)
	return true
}

// Discard removes v from s, if present. It reports whether v has been
// removed.
func (s *Set[T]) Discard(v T) bool {
	if !s.Contains(v) {
		return false
	}
	delete(s.members, v)
	s.list.Discard(v)
	return true
}

// Remove removes v from s, or returns an error wrapping sorted.ErrNotFound.
func (s *Set[T]) Remove(v T) error {
	if !s.Discard(v) {
		return fmt.Errorf("%w: %v", sorted.ErrNotFound, v)
	}
	return nil
}

// At returns the value at index i. Negative indices count from the end.
func (s *Set[T]) At(i int) (T, error) {
	return s.list.At(i)
}

// DeleteAt removes the value at index i.
func (s *Set[T]) DeleteAt(i int) error {
	_, err := s.PopAt(i)
	return err
}

// Pop removes and returns the largest value.
func (s *Set[T]) Pop() (T, error) {
	return s.PopAt(-1)
}

// PopAt removes and returns the value at index i.
func (s *Set[T]) PopAt(i int) (T, error) {
	v, err := s.list.PopAt(i)
	if err == nil {
		delete(s.members, v)
	}
	return v, err
}

// GetSlice returns the values at the positions selected by sl.
func (s *Set[T]) GetSlice(sl sorted.Slice) ([]T, error) {
	return s.list.GetSlice(sl)
}

// DeleteSlice removes the values at the positions selected by sl.
func (s *Set[T]) DeleteSlice(sl sorted.Slice) error {
	doomed, err := s.list.GetSlice(sl)
	if err != nil {
		return err
	}
	for _, v := range doomed {
		delete(s.members, v)
	}
	return s.list.DeleteSlice(sl)
}

// BisectLeft returns the index where v would be inserted before an equal
// member.
func (s *Set[T]) BisectLeft(v T) int {
	return s.list.BisectLeft(v)
}

// BisectRight returns the index where v would be inserted after an equal
// member.
func (s *Set[T]) BisectRight(v T) int {
	return s.list.BisectRight(v)
}

// Count returns 1 if v is a member of s, 0 otherwise.
func (s *Set[T]) Count(v T) int {
	if s.Contains(v) {
		return 1
	}
	return 0
}

// Index returns the position of v, or an error wrapping sorted.ErrNotFound.
func (s *Set[T]) Index(v T) (int, error) {
	if !s.Contains(v) {
		return 0, fmt.Errorf("%w: %v", sorted.ErrNotFound, v)
	}
	return s.list.BisectLeft(v), nil
}

// IRange returns an iterator over the members between min and max, see
// sorted.List.IRange.
func (s *Set[T]) IRange(min, max *T, inclusive sorted.Inclusive, reverse bool) iter.Seq[T] {
	return s.list.IRange(min, max, inclusive, reverse)
}

// ISlice returns an iterator over the members at positions [start, stop).
func (s *Set[T]) ISlice(start, stop int, reverse bool) iter.Seq[T] {
	return s.list.ISlice(start, stop, reverse)
}

// All returns an iterator over the members in order.
func (s *Set[T]) All() iter.Seq[T] {
	return s.list.All()
}

// Backward returns an iterator over the members in reverse order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return s.list.Backward()
}

// Values returns the members in order.
func (s *Set[T]) Values() []T {
	return s.list.Values()
}

// Clear removes all members.
func (s *Set[T]) Clear() {
	clear(s.members)
	s.list.Clear()
}

// Copy returns an independent copy of s.
func (s *Set[T]) Copy() *Set[T] {
	c := &Set[T]{members: make(map[T]struct{}, len(s.members)), list: s.list.Copy()}
	for v := range s.members {
		c.members[v] = struct{}{}
	}
	return c
}

// Compare compares the members of s lexicographically with an ordered
// sequence.
func (s *Set[T]) Compare(other iter.Seq[T]) int {
	return s.list.Compare(other)
}

// Equal reports whether s and other have the same members.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	return s.IsSubset(other)
}

// Check validates the underlying list and its agreement with the hash set.
func (s *Set[T]) Check() error {
	if err := s.list.Check(); err != nil {
		return err
	}
	if s.list.Len() != len(s.members) {
		return fmt.Errorf("%w: list holds %d values, hash set %d", ErrCorrupted, s.list.Len(), len(s.members))
	}
	var prev T
	pos := 0
	for v := range s.list.All() {
		if !s.Contains(v) {
			return fmt.Errorf("%w: %v at index %d is not a member", ErrCorrupted, v, pos)
		}
		if pos > 0 && s.list.CompareFunc()(prev, v) == 0 {
			return fmt.Errorf("%w: duplicate %v at index %d", ErrCorrupted, v, pos)
		}
		prev = v
		pos++
	}
	return nil
}

// String returns a representation of s listing all members.
func (s *Set[T]) String() string {
	return "Set" + strings.TrimPrefix(s.list.String(), "List")
}
