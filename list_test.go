package sorted

import (
	"cmp"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newIntList(t *testing.T, load int, values ...int) *List[int] {
	t.Helper()
	l, err := NewFunc(cmp.Compare[int], Config{Load: load})
	if err != nil {
		t.Fatalf("cannot create list: %v", err)
	}
	l.Update(values...)
	return l
}

func mustCheck[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if err := l.Check(); err != nil {
		t.Fatalf("structure check failed: %v", err)
	}
}

func rangeInts(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestRandomInsert(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := newIntList(t, 10)
	rnd := rand.New(rand.NewSource(1))
	for _, v := range rnd.Perm(1000) {
		l.Add(v)
	}
	if l.Len() != 1000 {
		t.Fatalf("expected length 1000, have %d", l.Len())
	}
	if !slices.Equal(l.Values(), rangeInts(1000)) {
		t.Fatalf("iteration does not yield 0..999")
	}
	mustCheck(t, l)
	if sh := l.Shape(); len(sh.Lengths) < 50 {
		t.Errorf("expected list to be split into many segments, have %d", len(sh.Lengths))
	}
}

func TestDiscard(t *testing.T) {
	l := newIntList(t, 4, 1, 2, 2, 2, 3, 3, 5)
	if l.Discard(6) || l.Discard(4) {
		t.Fatalf("discarding non-members should be a no-op")
	}
	if l.Len() != 7 {
		t.Fatalf("expected length 7 after no-op discards, have %d", l.Len())
	}
	if !l.Discard(2) {
		t.Fatalf("expected 2 to be discarded")
	}
	if !slices.Equal(l.Values(), []int{1, 2, 2, 3, 3, 5}) {
		t.Fatalf("unexpected values after discard: %v", l)
	}
	mustCheck(t, l)
	if err := l.Remove(4); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := l.Remove(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBisectDuplicates(t *testing.T) {
	values := append(rangeInts(10000), rangeInts(10000)...)
	l := newIntList(t, 0, values...)
	if got := l.BisectLeft(1000); got != 2000 {
		t.Errorf("BisectLeft(1000) = %d, expected 2000", got)
	}
	if got := l.BisectRight(1000); got != 2002 {
		t.Errorf("BisectRight(1000) = %d, expected 2002", got)
	}
	if got := l.Count(1000); got != 2 {
		t.Errorf("Count(1000) = %d, expected 2", got)
	}
	if got := l.BisectLeft(-1); got != 0 {
		t.Errorf("BisectLeft(-1) = %d, expected 0", got)
	}
	if got := l.BisectRight(10000); got != 20000 {
		t.Errorf("BisectRight(10000) = %d, expected 20000", got)
	}
	mustCheck(t, l)
}

func TestSetOrderViolation(t *testing.T) {
	l := newIntList(t, 4, rangeInts(10)...)
	err := l.Set(9, 0)
	if !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation, got %v", err)
	}
	if !slices.Equal(l.Values(), rangeInts(10)) {
		t.Fatalf("list changed by rejected assignment: %v", l)
	}
	if err := l.Set(-1, 9); err != nil {
		t.Fatalf("assigning an equal value should be fine: %v", err)
	}
	if err := l.Set(10, 20); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	mustCheck(t, l)
}

func TestPositionalAccess(t *testing.T) {
	l := newIntList(t, 4, rangeInts(50)...)
	for i := range 50 {
		v, err := l.At(i)
		if err != nil || v != i {
			t.Fatalf("At(%d) = %d, %v", i, v, err)
		}
	}
	if v, _ := l.At(-3); v != 47 {
		t.Errorf("At(-3) = %d, expected 47", v)
	}
	if _, err := l.At(50); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if v, err := l.Pop(); err != nil || v != 49 {
		t.Errorf("Pop() = %d, %v", v, err)
	}
	if v, err := l.PopAt(0); err != nil || v != 0 {
		t.Errorf("PopAt(0) = %d, %v", v, err)
	}
	if err := l.DeleteAt(-1); err != nil {
		t.Errorf("DeleteAt(-1): %v", err)
	}
	if first, _ := l.First(); first != 1 {
		t.Errorf("First() = %d, expected 1", first)
	}
	if last, _ := l.Last(); last != 47 {
		t.Errorf("Last() = %d, expected 47", last)
	}
	mustCheck(t, l)
	empty := newIntList(t, 4)
	if _, err := empty.Pop(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Pop on empty list: expected ErrOutOfRange, got %v", err)
	}
}

func TestInsertAppendExtend(t *testing.T) {
	l := newIntList(t, 4)
	if err := l.Extend(1, 2, 3); err != nil {
		t.Fatalf("Extend on empty list: %v", err)
	}
	if err := l.Append(3); err != nil {
		t.Fatalf("Append(3): %v", err)
	}
	if err := l.Append(2); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation for Append(2), got %v", err)
	}
	if err := l.Extend(5, 4); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation for unordered Extend, got %v", err)
	}
	if err := l.Extend(2, 9); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation for Extend below maximum, got %v", err)
	}
	if err := l.Extend(rangeInts(20)[4:]...); err != nil {
		t.Fatalf("Extend: %v", err)
	}
	if err := l.Insert(0, 0); err != nil {
		t.Fatalf("Insert(0, 0): %v", err)
	}
	if err := l.Insert(100, 100); err != nil {
		t.Fatalf("Insert beyond end should clamp: %v", err)
	}
	if err := l.Insert(2, 7); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation for Insert(2, 7), got %v", err)
	}
	expected := append([]int{0, 1, 2, 3, 3}, rangeInts(20)[4:]...)
	expected = append(expected, 100)
	if !slices.Equal(l.Values(), expected) {
		t.Fatalf("unexpected values %v", l)
	}
	mustCheck(t, l)
}

func TestUpdateCrossover(t *testing.T) {
	l := newIntList(t, 8, rangeInts(100)...)
	l.Update(50, 51)            // few values, inserted one by one
	l.Update(rangeInts(200)...) // rebuild
	if l.Len() != 302 {
		t.Fatalf("expected 302 elements, have %d", l.Len())
	}
	if !slices.IsSorted(l.Values()) {
		t.Fatalf("list not sorted after update")
	}
	if l.Count(50) != 3 || l.Count(150) != 1 {
		t.Fatalf("unexpected counts: 50 → %d, 150 → %d", l.Count(50), l.Count(150))
	}
	mustCheck(t, l)
}

func TestStableEqualElements(t *testing.T) {
	type pair struct{ k, v int }
	byKey := func(a, b pair) int { return cmp.Compare(a.k, b.k) }
	l, err := NewFunc(byKey, Config{Load: 4})
	if err != nil {
		t.Fatal(err)
	}
	for i := range 20 {
		l.Add(pair{k: i % 3, v: i})
	}
	prev := pair{k: -1}
	for p := range l.All() {
		if p.k == prev.k && p.v < prev.v {
			t.Fatalf("equal elements out of insertion order: %v after %v", p, prev)
		}
		prev = p
	}
}

func TestCopyClearRepeat(t *testing.T) {
	l := newIntList(t, 4, 3, 1, 2)
	c := l.Copy()
	l.Clear()
	if l.Len() != 0 || c.Len() != 3 {
		t.Fatalf("copy not independent: l=%v, c=%v", l, c)
	}
	mustCheck(t, l)
	r := c.Repeat(3)
	if !slices.Equal(r.Values(), []int{1, 1, 1, 2, 2, 2, 3, 3, 3}) {
		t.Fatalf("unexpected repetition %v", r)
	}
	mustCheck(t, r)
	if c.Repeat(0).Len() != 0 {
		t.Fatalf("Repeat(0) should be empty")
	}
	if s := c.String(); s != "List[1 2 3]" {
		t.Fatalf("unexpected string %q", s)
	}
}

func TestInvalidConfig(t *testing.T) {
	if _, err := NewFunc[int](nil, Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for missing comparison, got %v", err)
	}
	if _, err := NewFunc(cmp.Compare[int], Config{UpdateRatio: -1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for negative ratio, got %v", err)
	}
	if _, err := NewFunc(cmp.Compare[int], Config{Load: 10, MaxFill: 11}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for narrow fill bounds, got %v", err)
	}
	cfg := New[int]().Config()
	if cfg.Load != DefaultLoad || cfg.UpdateRatio != DefaultUpdateRatio || cfg.RebuildFactor != DefaultRebuildFactor {
		t.Errorf("unexpected default config %+v", cfg)
	}
}

func TestFrom(t *testing.T) {
	l := From(slices.Values([]string{"pear", "apple", "fig"}))
	if !slices.Equal(l.Values(), []string{"apple", "fig", "pear"}) {
		t.Fatalf("unexpected values %v", l)
	}
	if !l.Contains("fig") || l.Contains("kiwi") {
		t.Fatalf("membership broken")
	}
	back := slices.Collect(FromSlice([]int{2, 3, 1}).Backward())
	if !slices.Equal(back, []int{3, 2, 1}) {
		t.Fatalf("unexpected backward iteration %v", back)
	}
}

func TestCompareFuncAndCompare(t *testing.T) {
	desc := func(a, b int) int { return cmp.Compare(b, a) }
	l, err := NewFunc(desc, Config{Load: 4})
	if err != nil {
		t.Fatal(err)
	}
	l.Update(1, 5, 3)
	if c := l.CompareFunc()(1, 2); c <= 0 {
		t.Errorf("CompareFunc should return the list's descending order, have %d", c)
	}
	if c := l.Compare(slices.Values([]int{5, 3, 1})); c != 0 {
		t.Errorf("list should compare equal to its own values, have %d", c)
	}
	if c := l.Compare(slices.Values([]int{5, 3})); c != +1 {
		t.Errorf("list should compare greater than its prefix, have %d", c)
	}
	c, err := NewFunc(l.CompareFunc(), l.Config())
	if err != nil {
		t.Fatal(err)
	}
	c.Update(l.Values()...)
	if !slices.Equal(c.Values(), []int{5, 3, 1}) {
		t.Errorf("list built from CompareFunc should order alike, have %v", c.Values())
	}
}
