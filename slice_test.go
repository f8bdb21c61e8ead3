package sorted

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSliceIndices(t *testing.T) {
	cases := []struct {
		s                          Slice
		start, stop, step, count int
	}{
		{Whole, 0, 10, 1, 10},
		{Span(2, 5), 2, 5, 1, 3},
		{Span(-3, Open), 7, 10, 1, 3},
		{Span(5, 2), 5, 2, 1, 0},
		{Span(Open, Open).By(-1), 9, -1, -1, 10},
		{Span(8, 2).By(-3), 8, 2, -3, 2},
		{Span(-100, 100).By(4), 0, 10, 4, 3},
		{Span(Open, 3).By(-2), 9, 3, -2, 3},
		{Whole.By(math.MaxInt), 0, 10, math.MaxInt, 1},
		{Whole.By(math.MinInt), 9, -1, math.MinInt, 1},
		{Span(3, 4).By(math.MinInt), 3, 4, math.MinInt, 0},
	}
	for i, c := range cases {
		start, stop, step, count, err := c.s.Indices(10)
		if err != nil {
			t.Fatalf("case %d: unexpected error %v", i, err)
		}
		if start != c.start || stop != c.stop || step != c.step || count != c.count {
			t.Errorf("case %d: %+v resolves to (%d,%d,%d,%d), expected (%d,%d,%d,%d)", i, c.s,
				start, stop, step, count, c.start, c.stop, c.step, c.count)
		}
	}
	if _, _, _, _, err := Span(0, 5).By(0).Indices(10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for step 0, got %v", err)
	}
}

func TestExtremeSteps(t *testing.T) {
	l := newIntList(t, 4, rangeInts(10)...)
	if got, _ := l.GetSlice(Whole.By(math.MaxInt)); !slices.Equal(got, []int{0}) {
		t.Errorf("step MaxInt should select the first element, have %v", got)
	}
	if got, _ := l.GetSlice(Whole.By(math.MinInt)); !slices.Equal(got, []int{9}) {
		t.Errorf("step MinInt should select the last element, have %v", got)
	}
	if err := l.DeleteSlice(Whole.By(math.MinInt)); err != nil {
		t.Fatal(err)
	}
	if err := l.DeleteSlice(Whole.By(math.MaxInt)); err != nil {
		t.Fatal(err)
	}
	if err := l.SetSlice(Whole.By(math.MaxInt), []int{1}); err != nil {
		t.Fatal(err)
	}
	mustCheck(t, l)
	if !slices.Equal(l.Values(), []int{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("unexpected list after extreme-step edits: %v", l.Values())
	}
}

func TestGetSlice(t *testing.T) {
	l := newIntList(t, 4, rangeInts(30)...)
	cases := []struct {
		s        Slice
		expected []int
	}{
		{Span(3, 7), []int{3, 4, 5, 6}},
		{Span(25, Open).By(2), []int{25, 27, 29}},
		{Span(5, 0).By(-2), []int{5, 3, 1}},
		{Span(-2, Open), []int{28, 29}},
		{Span(10, 10), []int{}},
		{Span(Open, 24).By(-1), []int{29, 28, 27, 26, 25}},
	}
	for i, c := range cases {
		got, err := l.GetSlice(c.s)
		if err != nil {
			t.Fatalf("case %d: unexpected error %v", i, err)
		}
		if !slices.Equal(got, c.expected) {
			t.Errorf("case %d: GetSlice(%+v) = %v, expected %v", i, c.s, got, c.expected)
		}
	}
	whole, _ := l.GetSlice(Whole)
	if !slices.Equal(whole, rangeInts(30)) {
		t.Errorf("GetSlice(Whole) differs from list values")
	}
}

func TestDeleteStridedSlice(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := newIntList(t, 8, rangeInts(100)...)
	if err := l.DeleteSlice(Span(10, 40).By(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var expected []int
	for i := range 100 {
		if i < 10 || i >= 40 || i%2 == 1 {
			expected = append(expected, i)
		}
	}
	if !slices.Equal(l.Values(), expected) {
		t.Fatalf("unexpected values after strided delete: %v", l)
	}
	mustCheck(t, l)
}

func TestDeleteSliceVariants(t *testing.T) {
	l := newIntList(t, 4, rangeInts(100)...)
	if err := l.DeleteSlice(Span(90, 95)); err != nil { // one by one
		t.Fatal(err)
	}
	if err := l.DeleteSlice(Span(0, 50)); err != nil { // rebuild
		t.Fatal(err)
	}
	if err := l.DeleteSlice(Span(Open, Open).By(-10)); err != nil {
		t.Fatal(err)
	}
	mustCheck(t, l)
	var expected []int
	for i := 50; i < 100; i++ {
		if i < 90 || i >= 95 {
			expected = append(expected, i)
		}
	}
	var rest []int
	for i, v := range expected {
		if (len(expected)-1-i)%10 != 0 {
			rest = append(rest, v)
		}
	}
	if !slices.Equal(l.Values(), rest) {
		t.Fatalf("unexpected values %v, expected %v", l.Values(), rest)
	}
	if err := l.DeleteSlice(Whole); err != nil || l.Len() != 0 {
		t.Fatalf("deleting the whole list failed: %v, %v", err, l)
	}
	mustCheck(t, l)
	if err := l.DeleteSlice(Whole.By(0)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSetContiguousSlice(t *testing.T) {
	l := newIntList(t, 4, 0, 10, 20, 30, 40)
	if err := l.SetSlice(Span(1, 3), []int{11, 12, 13, 14, 15}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(l.Values(), []int{0, 11, 12, 13, 14, 15, 30, 40}) {
		t.Fatalf("unexpected values %v", l)
	}
	if err := l.SetSlice(Span(1, 6), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(l.Values(), []int{0, 30, 40}) {
		t.Fatalf("unexpected values %v", l)
	}
	if err := l.SetSlice(Span(1, 1), []int{35}); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation for 35 before 30, got %v", err)
	}
	if err := l.SetSlice(Span(1, 2), []int{25, 20}); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation for unordered values, got %v", err)
	}
	if !slices.Equal(l.Values(), []int{0, 30, 40}) {
		t.Fatalf("list changed by rejected assignment: %v", l)
	}
	mustCheck(t, l)
}

func TestSetStridedSliceRollback(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := newIntList(t, 4, rangeInts(20)...)
	before := l.Values()
	if err := l.SetSlice(Span(0, 20).By(5), []int{0, 5, 10}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for count mismatch, got %v", err)
	}
	// the second assignment breaks the order, the first must be rolled back
	err := l.SetSlice(Span(1, 20).By(5), []int{1, 100, 11, 16})
	if !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation, got %v", err)
	}
	if !slices.Equal(l.Values(), before) {
		t.Fatalf("list not rolled back: %v", l)
	}
	if err := l.SetSlice(Span(Open, Open).By(-5), []int{19, 14, 9, 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.SetSlice(Span(2, 20).By(4), []int{2, 6, 10, 14, 18}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(l.Values(), before) {
		t.Fatalf("assigning identical values changed the list: %v", l)
	}
	if err := l.SetSlice(Span(0, 20).By(10), []int{-5, 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := l.At(0); v != -5 {
		t.Fatalf("expected -5 at index 0, have %d", v)
	}
	mustCheck(t, l)
}
