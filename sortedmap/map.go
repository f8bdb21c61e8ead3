package sortedmap

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/sorted"
)

// ErrCorrupted is returned by Check if the hash map and the sorted key list
// of a map disagree.
var ErrCorrupted = errors.New("sortedmap: hash map and key list out of sync")

// Item is a key/value pair of a map.
type Item[K, V any] struct {
	Key   K
	Value V
}

// Map is a map with keys kept in sorted order.
//
// Keys have to be comparable for hashing and ordered by the comparison
// function of the map. Two keys which compare equal must also be == to each
// other.
type Map[K comparable, V any] struct {
	entries map[K]V
	keys    *sorted.List[K]
}

// New creates an empty map with naturally ordered keys.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V), keys: sorted.New[K]()}
}

// NewFunc creates an empty map with keys ordered by compare, with the key
// list configured by cfg.
func NewFunc[K comparable, V any](compare func(a, b K) int, cfg sorted.Config) (*Map[K, V], error) {
	l, err := sorted.NewFunc(compare, cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{entries: make(map[K]V), keys: l}, nil
}

// FromKeys creates a map with naturally ordered keys, all mapped to v.
func FromKeys[K cmp.Ordered, V any](keys iter.Seq[K], v V) *Map[K, V] {
	m := New[K, V]()
	m.Update(func(yield func(K, V) bool) {
		for k := range keys {
			if !yield(k, v) {
				return
			}
		}
	})
	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Has reports whether k is a key of m.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// Get returns the value for k and whether k is a key of m.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

// GetOr returns the value for k, or dflt if k is not a key of m.
func (m *Map[K, V]) GetOr(k K, dflt V) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	return dflt
}

// Set maps k to v.
func (m *Map[K, V]) Set(k K, v V) {
	if _, ok := m.entries[k]; !ok {
		m.keys.Add(k)
	}
	m.entries[k] = v
}

// SetDefault returns the value for k. If k is not a key of m, it is mapped
// to dflt first.
func (m *Map[K, V]) SetDefault(k K, dflt V) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	m.Set(k, dflt)
	return dflt
}

// Update sets all key/value pairs of a sequence. Later pairs win. New keys
// are merged into the key list in one batch, see sorted.List.Update.
func (m *Map[K, V]) Update(pairs iter.Seq2[K, V]) {
	var fresh []K
	for k, v := range pairs {
		if _, ok := m.entries[k]; !ok {
			fresh = append(fresh, k)
		}
		m.entries[k] = v
	}
	m.keys.Update(fresh...)
}

// Delete removes the entry for k. It reports whether k had been a key of m.
func (m *Map[K, V]) Delete(k K) bool {
	if _, ok := m.entries[k]; !ok {
		return false
	}
	delete(m.entries, k)
	m.keys.Discard(k)
	return true
}

// Pop removes the entry for k and returns its value, or returns an error
// wrapping sorted.ErrNotFound.
func (m *Map[K, V]) Pop(k K) (V, error) {
	v, ok := m.entries[k]
	if !ok {
		return v, fmt.Errorf("%w: key %v", sorted.ErrNotFound, k)
	}
	m.Delete(k)
	return v, nil
}

// PopItem removes and returns the entry at index i of the key order.
// Negative indices count from the end; PopItem(-1) removes the entry with
// the largest key.
func (m *Map[K, V]) PopItem(i int) (K, V, error) {
	k, err := m.keys.PopAt(i)
	if err != nil {
		var v V
		return k, v, err
	}
	v := m.entries[k]
	delete(m.entries, k)
	return k, v, nil
}

// PeekItem returns the entry at index i of the key order.
func (m *Map[K, V]) PeekItem(i int) (K, V, error) {
	k, err := m.keys.At(i)
	if err != nil {
		var v V
		return k, v, err
	}
	return k, m.entries[k], nil
}

// Index returns the position of k in the key order, or an error wrapping
// sorted.ErrNotFound.
func (m *Map[K, V]) Index(k K) (int, error) {
	if !m.Has(k) {
		return 0, fmt.Errorf("%w: key %v", sorted.ErrNotFound, k)
	}
	return m.keys.BisectLeft(k), nil
}

// BisectLeft returns the position where k would be inserted before an equal
// key.
func (m *Map[K, V]) BisectLeft(k K) int {
	return m.keys.BisectLeft(k)
}

// BisectRight returns the position where k would be inserted after an equal
// key.
func (m *Map[K, V]) BisectRight(k K) int {
	return m.keys.BisectRight(k)
}

// DeleteSlice removes the entries at the key positions selected by s.
func (m *Map[K, V]) DeleteSlice(s sorted.Slice) error {
	doomed, err := m.keys.GetSlice(s)
	if err != nil {
		return err
	}
	for _, k := range doomed {
		delete(m.entries, k)
	}
	return m.keys.DeleteSlice(s)
}

// All returns an iterator over the entries in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.pairs(m.keys.All())
}

// Backward returns an iterator over the entries in reverse key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.pairs(m.keys.Backward())
}

// IRange returns an iterator over the entries with keys between min and
// max, see sorted.List.IRange.
func (m *Map[K, V]) IRange(min, max *K, inclusive sorted.Inclusive, reverse bool) iter.Seq2[K, V] {
	return m.pairs(m.keys.IRange(min, max, inclusive, reverse))
}

func (m *Map[K, V]) pairs(keys iter.Seq[K]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k := range keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
	m.keys.Clear()
}

// Copy returns a shallow copy of m.
func (m *Map[K, V]) Copy() *Map[K, V] {
	c := &Map[K, V]{entries: make(map[K]V, len(m.entries)), keys: m.keys.Copy()}
	for k, v := range m.entries {
		c.entries[k] = v
	}
	return c
}

// Check validates the key list and its agreement with the hash map.
func (m *Map[K, V]) Check() error {
	if err := m.keys.Check(); err != nil {
		return err
	}
	if m.keys.Len() != len(m.entries) {
		return fmt.Errorf("%w: key list holds %d keys, hash map %d", ErrCorrupted, m.keys.Len(), len(m.entries))
	}
	compare := m.keys.CompareFunc()
	var prev K
	pos := 0
	for k := range m.keys.All() {
		if !m.Has(k) {
			return fmt.Errorf("%w: key %v at index %d has no entry", ErrCorrupted, k, pos)
		}
		if pos > 0 && compare(prev, k) == 0 {
			return fmt.Errorf("%w: duplicate key %v at index %d", ErrCorrupted, k, pos)
		}
		prev = k
		pos++
	}
	return nil
}

// String returns a representation of m listing all entries.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("Map[")
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')
	return b.String()
}
