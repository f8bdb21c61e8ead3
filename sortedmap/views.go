package sortedmap

import (
	"iter"

	"github.com/npillmayer/sorted"
)

// KeysView is a live view of the keys of a map, in order.
type KeysView[K comparable, V any] struct {
	m *Map[K, V]
}

// Keys returns a view of the keys of m.
func (m *Map[K, V]) Keys() KeysView[K, V] {
	return KeysView[K, V]{m: m}
}

// Len returns the number of keys.
func (kv KeysView[K, V]) Len() int {
	return kv.m.Len()
}

// At returns the key at index i. Negative indices count from the end.
func (kv KeysView[K, V]) At(i int) (K, error) {
	return kv.m.keys.At(i)
}

// Contains reports whether k is a key of the map.
func (kv KeysView[K, V]) Contains(k K) bool {
	return kv.m.Has(k)
}

// Index returns the position of k.
func (kv KeysView[K, V]) Index(k K) (int, error) {
	return kv.m.Index(k)
}

// Slice returns the keys at the positions selected by s.
func (kv KeysView[K, V]) Slice(s sorted.Slice) ([]K, error) {
	return kv.m.keys.GetSlice(s)
}

// All returns an iterator over the keys in order.
func (kv KeysView[K, V]) All() iter.Seq[K] {
	return kv.m.keys.All()
}

// Backward returns an iterator over the keys in reverse order.
func (kv KeysView[K, V]) Backward() iter.Seq[K] {
	return kv.m.keys.Backward()
}

// ValuesView is a live view of the values of a map, in key order.
type ValuesView[K comparable, V any] struct {
	m *Map[K, V]
}

// Values returns a view of the values of m.
func (m *Map[K, V]) Values() ValuesView[K, V] {
	return ValuesView[K, V]{m: m}
}

// Len returns the number of values.
func (vv ValuesView[K, V]) Len() int {
	return vv.m.Len()
}

// At returns the value of the key at index i.
func (vv ValuesView[K, V]) At(i int) (V, error) {
	_, v, err := vv.m.PeekItem(i)
	return v, err
}

// IndexFunc returns the position of the first value satisfying pred, or -1.
func (vv ValuesView[K, V]) IndexFunc(pred func(V) bool) int {
	pos := 0
	for _, v := range vv.m.All() {
		if pred(v) {
			return pos
		}
		pos++
	}
	return -1
}

// Slice returns the values at the key positions selected by s.
func (vv ValuesView[K, V]) Slice(s sorted.Slice) ([]V, error) {
	keys, err := vv.m.keys.GetSlice(s)
	if err != nil {
		return nil, err
	}
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = vv.m.entries[k]
	}
	return values, nil
}

// All returns an iterator over the values in key order.
func (vv ValuesView[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range vv.m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ItemsView is a live view of the entries of a map, in key order.
type ItemsView[K comparable, V any] struct {
	m *Map[K, V]
}

// Items returns a view of the entries of m.
func (m *Map[K, V]) Items() ItemsView[K, V] {
	return ItemsView[K, V]{m: m}
}

// Len returns the number of entries.
func (iv ItemsView[K, V]) Len() int {
	return iv.m.Len()
}

// At returns the entry at index i of the key order.
func (iv ItemsView[K, V]) At(i int) (Item[K, V], error) {
	k, v, err := iv.m.PeekItem(i)
	return Item[K, V]{Key: k, Value: v}, err
}

// Index returns the position of the entry with key k.
func (iv ItemsView[K, V]) Index(k K) (int, error) {
	return iv.m.Index(k)
}

// Slice returns the entries at the key positions selected by s.
func (iv ItemsView[K, V]) Slice(s sorted.Slice) ([]Item[K, V], error) {
	keys, err := iv.m.keys.GetSlice(s)
	if err != nil {
		return nil, err
	}
	items := make([]Item[K, V], len(keys))
	for i, k := range keys {
		items[i] = Item[K, V]{Key: k, Value: iv.m.entries[k]}
	}
	return items, nil
}

// All returns an iterator over the entries in key order.
func (iv ItemsView[K, V]) All() iter.Seq[Item[K, V]] {
	return func(yield func(Item[K, V]) bool) {
		for k, v := range iv.m.All() {
			if !yield(Item[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}
