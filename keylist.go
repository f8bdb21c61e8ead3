package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/sorted/segarray"
)

// KeyFuncs configures how a KeyList derives and orders keys.
type KeyFuncs[T, K any] struct {
	// Key derives the sort key of a value. Required.
	Key func(T) K
	// CompareKeys orders keys. Required.
	CompareKeys func(a, b K) int
	// CompareValues orders values with equal keys. If nil, values with equal
	// keys are kept in insertion order.
	CompareValues func(a, b T) int
	// Equal decides value identity for lookups when CompareValues is nil. If
	// both are nil, any two values with equal keys are considered equal.
	Equal func(a, b T) bool
}

// keyed is a value together with its cached key and a tie-breaker.
type keyed[T, K any] struct {
	key K
	seq uint64
	val T
}

// String renders the wrapped value, so that errors of the underlying list
// name the caller's value.
func (e keyed[T, K]) String() string {
	return fmt.Sprint(e.val)
}

// KeyList is a sorted sequence of values, ordered by a key derived from each
// value.
//
// Ordering is by (key, discriminator). The discriminator is the value itself
// if a value ordering is configured, otherwise a monotonically increasing
// insertion counter. In the latter case Insert, Set and contiguous SetSlice
// let a value take over the counter of its right neighbour if both share a
// key, so the value may be placed in front of it. Strided SetSlice always
// draws fresh counters, which place a value after all others with its key.
type KeyList[T, K any] struct {
	fn   KeyFuncs[T, K]
	list *List[keyed[T, K]]
	seq  uint64
}

// NewKeyList creates an empty key list of naturally ordered values and keys,
// with default configuration.
func NewKeyList[T, K cmp.Ordered](key func(T) K) *KeyList[T, K] {
	kl, err := NewKeyListFunc(KeyFuncs[T, K]{
		Key:           key,
		CompareKeys:   cmp.Compare[K],
		CompareValues: cmp.Compare[T],
	}, Config{})
	assert(err == nil, "NewKeyList: cannot create key list")
	return kl
}

// NewKeyListFunc creates an empty key list ordered by fn.
func NewKeyListFunc[T, K any](fn KeyFuncs[T, K], cfg Config) (*KeyList[T, K], error) {
	if fn.Key == nil || fn.CompareKeys == nil {
		return nil, fmt.Errorf("%w: key and key comparison functions are required", ErrInvalidConfig)
	}
	compareKeys, compareValues := fn.CompareKeys, fn.CompareValues
	compare := func(a, b keyed[T, K]) int {
		if c := compareKeys(a.key, b.key); c != 0 {
			return c
		}
		if compareValues != nil {
			return compareValues(a.val, b.val)
		}
		return cmp.Compare(a.seq, b.seq)
	}
	list, err := NewFunc(compare, cfg)
	if err != nil {
		return nil, err
	}
	return &KeyList[T, K]{fn: fn, list: list}, nil
}

func (kl *KeyList[T, K]) wrap(v T) keyed[T, K] {
	kl.seq++
	return keyed[T, K]{key: kl.fn.Key(v), seq: kl.seq, val: v}
}

// placeBefore wraps v for the position directly in front of index next.
func (kl *KeyList[T, K]) placeBefore(v T, next int) keyed[T, K] {
	e := kl.wrap(v)
	if kl.byValue() || next < 0 || next >= kl.list.Len() {
		return e
	}
	n, _ := kl.list.At(next)
	if kl.fn.CompareKeys(e.key, n.key) == 0 {
		e.seq = n.seq
	}
	return e
}

func (kl *KeyList[T, K]) wrapAll(values []T) []keyed[T, K] {
	out := make([]keyed[T, K], len(values))
	for i, v := range values {
		out[i] = kl.wrap(v)
	}
	return out
}

func unwrap[T, K any](elems []keyed[T, K]) []T {
	out := make([]T, len(elems))
	for i, e := range elems {
		out[i] = e.val
	}
	return out
}

func unwrapSeq[T, K any](seq iter.Seq[keyed[T, K]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range seq {
			if !yield(e.val) {
				return
			}
		}
	}
}

// byValue reports whether values with equal keys are ordered by value.
func (kl *KeyList[T, K]) byValue() bool {
	return kl.fn.CompareValues != nil
}

func (kl *KeyList[T, K]) keyProbe(k K) func(keyed[T, K]) int {
	return func(e keyed[T, K]) int { return kl.fn.CompareKeys(e.key, k) }
}

func (kl *KeyList[T, K]) valueProbe(v T) func(keyed[T, K]) int {
	k := kl.fn.Key(v)
	return func(e keyed[T, K]) int {
		if c := kl.fn.CompareKeys(e.key, k); c != 0 {
			return c
		}
		return kl.fn.CompareValues(e.val, v)
	}
}

// matches reports whether an element with the same key as v is equal to v.
func (kl *KeyList[T, K]) matches(e keyed[T, K], v T) bool {
	switch {
	case kl.fn.CompareValues != nil:
		return kl.fn.CompareValues(e.val, v) == 0
	case kl.fn.Equal != nil:
		return kl.fn.Equal(e.val, v)
	}
	return true
}

// probes returns the lower and upper probes locating values equal to v.
func (kl *KeyList[T, K]) probes(v T) func(keyed[T, K]) int {
	if kl.byValue() {
		return kl.valueProbe(v)
	}
	return kl.keyProbe(kl.fn.Key(v))
}

// find returns the position of the first element equal to v within
// [start, stop).
func (kl *KeyList[T, K]) find(v T, start, stop int) (int, bool) {
	probe := kl.probes(v)
	lo := max(kl.list.bisectLeftBy(probe), start)
	hi := min(kl.list.bisectRightBy(probe), stop)
	if kl.byValue() || kl.fn.Equal == nil {
		return lo, lo < hi
	}
	pos := lo
	for e := range kl.list.arr.Window(lo, hi, false) {
		if kl.matches(e, v) {
			return pos, true
		}
		pos++
	}
	return 0, false
}

// KeyOf returns the key kl derives for v.
func (kl *KeyList[T, K]) KeyOf(v T) K {
	return kl.fn.Key(v)
}

// Len returns the number of values in kl.
func (kl *KeyList[T, K]) Len() int {
	return kl.list.Len()
}

// Config returns the effective configuration of kl.
func (kl *KeyList[T, K]) Config() Config {
	return kl.list.Config()
}

// Clear removes all values.
func (kl *KeyList[T, K]) Clear() {
	kl.list.Clear()
}

// Copy returns an independent key list with the same values and functions.
func (kl *KeyList[T, K]) Copy() *KeyList[T, K] {
	return &KeyList[T, K]{fn: kl.fn, list: kl.list.Copy(), seq: kl.seq}
}

// Add inserts v in order. Among values with equal keys and equal in value
// order, v is placed last.
func (kl *KeyList[T, K]) Add(v T) {
	kl.list.Add(kl.wrap(v))
}

// Update adds all values, see List.Update.
func (kl *KeyList[T, K]) Update(values ...T) {
	kl.list.Update(kl.wrapAll(values)...)
}

// Contains reports whether v is a member of kl.
func (kl *KeyList[T, K]) Contains(v T) bool {
	_, ok := kl.find(v, 0, kl.Len())
	return ok
}

// Discard removes the first value equal to v, if any. It reports whether a
// value has been removed.
func (kl *KeyList[T, K]) Discard(v T) bool {
	pos, ok := kl.find(v, 0, kl.Len())
	if ok {
		kl.list.arr.Delete(kl.list.arr.Pos(pos))
	}
	return ok
}

// Remove removes the first value equal to v, or returns an error wrapping
// ErrNotFound.
func (kl *KeyList[T, K]) Remove(v T) error {
	if !kl.Discard(v) {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	return nil
}

// At returns the value at index i. Negative indices count from the end.
func (kl *KeyList[T, K]) At(i int) (T, error) {
	e, err := kl.list.At(i)
	return e.val, err
}

// Set replaces the value at index i with v, see List.Set.
func (kl *KeyList[T, K]) Set(i int, v T) error {
	e, err := kl.list.At(i)
	if err != nil {
		return err
	}
	repl := keyed[T, K]{key: kl.fn.Key(v), seq: e.seq, val: v}
	if kl.fn.CompareKeys(repl.key, e.key) != 0 {
		pos, _ := normalize(i, kl.list.Len())
		repl = kl.placeBefore(v, pos+1)
	}
	return kl.list.Set(i, repl)
}

// DeleteAt removes the value at index i.
func (kl *KeyList[T, K]) DeleteAt(i int) error {
	return kl.list.DeleteAt(i)
}

// Pop removes and returns the last value.
func (kl *KeyList[T, K]) Pop() (T, error) {
	e, err := kl.list.Pop()
	return e.val, err
}

// PopAt removes and returns the value at index i.
func (kl *KeyList[T, K]) PopAt(i int) (T, error) {
	e, err := kl.list.PopAt(i)
	return e.val, err
}

// Insert inserts v before index i, see List.Insert.
func (kl *KeyList[T, K]) Insert(i int, v T) error {
	return kl.list.Insert(i, kl.placeBefore(v, clamp(i, kl.list.Len())))
}

// Append adds v at the end, see List.Append.
func (kl *KeyList[T, K]) Append(v T) error {
	return kl.list.Append(kl.wrap(v))
}

// Extend adds values at the end, see List.Extend.
func (kl *KeyList[T, K]) Extend(values ...T) error {
	return kl.list.Extend(kl.wrapAll(values)...)
}

// GetSlice returns the values selected by s, in slice order.
func (kl *KeyList[T, K]) GetSlice(s Slice) ([]T, error) {
	elems, err := kl.list.GetSlice(s)
	if err != nil {
		return nil, err
	}
	return unwrap(elems), nil
}

// DeleteSlice removes the values selected by s.
func (kl *KeyList[T, K]) DeleteSlice(s Slice) error {
	return kl.list.DeleteSlice(s)
}

// SetSlice replaces the values selected by s, see List.SetSlice.
func (kl *KeyList[T, K]) SetSlice(s Slice, values []T) error {
	elems := kl.wrapAll(values)
	start, stop, step, _, err := s.Indices(kl.list.Len())
	if err != nil {
		return err
	}
	if step == 1 && !kl.byValue() {
		stop = max(stop, start)
		if n, err := kl.list.At(stop); err == nil {
			for j := len(elems) - 1; j >= 0 && kl.fn.CompareKeys(elems[j].key, n.key) == 0; j-- {
				elems[j].seq = n.seq
			}
		}
	}
	return kl.list.SetSlice(s, elems)
}

// Index returns the index of the first value equal to v.
func (kl *KeyList[T, K]) Index(v T) (int, error) {
	return kl.IndexIn(v, 0, kl.Len())
}

// IndexIn returns the index of the first value equal to v within the
// positions [start, stop), see List.IndexIn.
func (kl *KeyList[T, K]) IndexIn(v T, start, stop int) (int, error) {
	n := kl.Len()
	start, stop = clamp(start, n), clamp(stop, n)
	if pos, ok := kl.find(v, start, stop); ok {
		return pos, nil
	}
	return 0, fmt.Errorf("%w: %v in range [%d,%d)", ErrNotFound, v, start, stop)
}

// BisectLeft returns the index where v would be inserted before any values
// equal to v. Without value ordering, all values with the key of v count as
// equal.
func (kl *KeyList[T, K]) BisectLeft(v T) int {
	return kl.list.bisectLeftBy(kl.probes(v))
}

// BisectRight returns the index where v would be inserted after any values
// equal to v.
func (kl *KeyList[T, K]) BisectRight(v T) int {
	return kl.list.bisectRightBy(kl.probes(v))
}

// Count returns the number of values equal to v.
func (kl *KeyList[T, K]) Count(v T) int {
	probe := kl.probes(v)
	lo, hi := kl.list.bisectLeftBy(probe), kl.list.bisectRightBy(probe)
	if kl.byValue() || kl.fn.Equal == nil {
		return hi - lo
	}
	count := 0
	for e := range kl.list.arr.Window(lo, hi, false) {
		if kl.matches(e, v) {
			count++
		}
	}
	return count
}

// BisectKeyLeft returns the index of the first value with a key not less
// than k.
func (kl *KeyList[T, K]) BisectKeyLeft(k K) int {
	return kl.list.bisectLeftBy(kl.keyProbe(k))
}

// BisectKeyRight returns the index of the first value with a key greater
// than k.
func (kl *KeyList[T, K]) BisectKeyRight(k K) int {
	return kl.list.bisectRightBy(kl.keyProbe(k))
}

// IRange returns an iterator over the values between min and max, see
// List.IRange. Without value ordering, the bounds act through their keys.
func (kl *KeyList[T, K]) IRange(min, max *T, inclusive Inclusive, reverse bool) iter.Seq[T] {
	var lo, hi func(keyed[T, K]) int
	if min != nil {
		lo = kl.probes(*min)
	}
	if max != nil {
		hi = kl.probes(*max)
	}
	return unwrapSeq(kl.list.irangeBy(lo, hi, inclusive, reverse))
}

// IRangeKey returns an iterator over the values with keys between min and
// max. Values with equal keys are produced in discriminator order (reversed
// if reverse is set).
func (kl *KeyList[T, K]) IRangeKey(min, max *K, inclusive Inclusive, reverse bool) iter.Seq[T] {
	var lo, hi func(keyed[T, K]) int
	if min != nil {
		lo = kl.keyProbe(*min)
	}
	if max != nil {
		hi = kl.keyProbe(*max)
	}
	return unwrapSeq(kl.list.irangeBy(lo, hi, inclusive, reverse))
}

// ISlice returns an iterator over the values at positions [start, stop),
// see List.ISlice.
func (kl *KeyList[T, K]) ISlice(start, stop int, reverse bool) iter.Seq[T] {
	return unwrapSeq(kl.list.ISlice(start, stop, reverse))
}

// All returns an iterator over the values of kl in order.
func (kl *KeyList[T, K]) All() iter.Seq[T] {
	return unwrapSeq(kl.list.All())
}

// Backward returns an iterator over the values of kl in reverse order.
func (kl *KeyList[T, K]) Backward() iter.Seq[T] {
	return unwrapSeq(kl.list.Backward())
}

// Values returns the values of kl as a fresh slice.
func (kl *KeyList[T, K]) Values() []T {
	return unwrap(kl.list.Values())
}

// Compare compares kl lexicographically with an ordered sequence of values,
// ordering by key and, if configured, by value.
func (kl *KeyList[T, K]) Compare(other iter.Seq[T]) int {
	next, stop := iter.Pull(other)
	defer stop()
	for e := range kl.list.All() {
		w, ok := next()
		if !ok {
			return +1
		}
		c := kl.fn.CompareKeys(e.key, kl.fn.Key(w))
		if c == 0 && kl.byValue() {
			c = kl.fn.CompareValues(e.val, w)
		}
		if c != 0 {
			return cmp.Compare(c, 0)
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}

// Equal reports whether other holds the same values as kl, in the same order.
func (kl *KeyList[T, K]) Equal(other iter.Seq[T]) bool {
	return kl.Compare(other) == 0
}

// Shape returns a snapshot of the segment layout of kl.
func (kl *KeyList[T, K]) Shape() Shape {
	return kl.list.Shape()
}

// Check validates the structural invariants of kl, including that every
// cached key matches the key derived from its value.
func (kl *KeyList[T, K]) Check() error {
	if err := kl.list.Check(); err != nil {
		return err
	}
	pos := 0
	for e := range kl.list.All() {
		if kl.fn.CompareKeys(kl.fn.Key(e.val), e.key) != 0 {
			return fmt.Errorf("%w: cached key at index %d does not match its value", segarray.ErrCorrupted, pos)
		}
		if e.seq > kl.seq {
			return fmt.Errorf("%w: tie-breaker at index %d exceeds counter", segarray.ErrCorrupted, pos)
		}
		pos++
	}
	return nil
}

// String returns a representation of kl listing all values.
func (kl *KeyList[T, K]) String() string {
	var b strings.Builder
	b.WriteString("KeyList[")
	for i, v := range kl.Values() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
