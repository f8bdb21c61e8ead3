package segarray

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPosIndexRoundTrip(t *testing.T) {
	a := newIntArray(t, 8)
	a.Reset(seq(0, 1000))
	for pos := range a.Len() {
		seg, off := a.Pos(pos)
		if a.Get(seg, off) != pos {
			t.Fatalf("Pos(%d) = (%d,%d) holds %d", pos, seg, off, a.Get(seg, off))
		}
		if back := a.Index(seg, off); back != pos {
			t.Fatalf("Index(Pos(%d)) = %d", pos, back)
		}
	}
	mustCheck(t, a)
	if a.Index(a.Segments(), 0) != a.Len() {
		t.Errorf("Index past the last segment must equal Len")
	}
}

func TestIndexCacheTruncation(t *testing.T) {
	a := newIntArray(t, 8)
	a.Reset(seq(0, 1000))
	_, _ = a.Pos(a.Len() - a.Len()/3) // warm up well into the array
	warm := a.IndexCacheLen()
	if warm < 2 {
		t.Fatalf("expected index to be warmed up, caches %d offsets", warm)
	}
	a.Insert(-1) // lands in segment 0
	if a.IndexCacheLen() > 1 {
		t.Errorf("expected index to be truncated after segment 0, caches %d", a.IndexCacheLen())
	}
	mustCheck(t, a)
	for pos := range a.Len() {
		seg, off := a.Pos(pos)
		if a.Get(seg, off) != pos-1 {
			t.Fatalf("stale index: Pos(%d) holds %d", pos, a.Get(seg, off))
		}
	}
	mustCheck(t, a)
}

func TestIndexStaysConsistentUnderRandomEdits(t *testing.T) {
	a := newIntArray(t, 6)
	rnd := rand.New(rand.NewSource(11))
	for i := range 2000 {
		a.Insert(rnd.Intn(500))
		if i%7 == 0 && a.Len() > 0 {
			_ = a.DeleteAt(rnd.Intn(a.Len()))
		}
		if i%13 == 0 && a.Len() > 0 {
			_, _ = a.At(rnd.Intn(a.Len()))
		}
		if i%97 == 0 {
			mustCheck(t, a)
		}
	}
	values := a.Values()
	for pos, v := range values {
		if got, _ := a.At(pos); got != v {
			t.Fatalf("At(%d) = %d, expected %d", pos, got, v)
		}
	}
	mustCheck(t, a)
}

func TestEmptiedArrayRejectsPositions(t *testing.T) {
	a := newIntArray(t, 6)
	a.Insert(7)
	if err := a.DeleteAt(0); err != nil {
		t.Fatal(err)
	}
	if _, err := a.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for empty array, have %v", err)
	}
	if err := a.DeleteAt(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds deleting from empty array, have %v", err)
	}
	mustCheck(t, a)
}
