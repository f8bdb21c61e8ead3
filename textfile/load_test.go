package textfile

import (
	"cmp"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sorted"
)

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	data, err := os.ReadFile("testdata/fruits.txt")
	if err != nil {
		t.Fatal(err)
	}
	expected := strings.Fields(string(data))
	slices.Sort(expected)
	for _, frag := range []int64{0, 1, 3, 7, 64} {
		l, err := Load("testdata/fruits.txt", frag)
		if err != nil {
			t.Fatalf("fragment size %d: %v", frag, err)
		}
		if !slices.Equal(l.Values(), expected) {
			t.Errorf("fragment size %d: lines = %v, expected %v", frag, l.Values(), expected)
		}
		if err := l.Check(); err != nil {
			t.Errorf("fragment size %d: %v", frag, err)
		}
	}
}

func TestLoadLineEndings(t *testing.T) {
	l, err := Load("testdata/crlf.txt", 4)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(l.Values(), []string{"", "alpha", "mu", "zeta"}) {
		t.Errorf("unexpected lines %q", l.Values())
	}
}

func TestLoadFuncOrdering(t *testing.T) {
	byLength := func(a, b string) int { return cmp.Compare(len(a), len(b)) }
	l, err := LoadFunc(context.Background(), "testdata/fruits.txt", byLength, sorted.Config{Load: 4}, 5)
	if err != nil {
		t.Fatal(err)
	}
	if first, _ := l.First(); first != "fig" {
		t.Errorf("expected shortest line first, is %q", first)
	}
	if last, _ := l.Last(); last != "elderberry" {
		t.Errorf("expected longest line last, is %q", last)
	}
	if l.Config().Load != 4 {
		t.Errorf("configuration not passed on")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.txt", 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if _, err := Load("testdata", 0); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular, got %v", err)
	}
	bad := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(bad, []byte("ok\n\xff\xfe\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, 0); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LoadFunc(ctx, "testdata/fruits.txt", strings.Compare, sorted.Config{}, 1); err == nil {
		t.Errorf("expected error for cancelled context")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(empty, 0)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("expected empty list, have %v", l)
	}
}
