package formatter

import (
	"cmp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sorted"
	"github.com/npillmayer/uax/uax11"
)

func intList(t *testing.T, load, n int) *sorted.List[int] {
	t.Helper()
	l, err := sorted.NewFunc(cmp.Compare[int], sorted.Config{Load: load})
	if err != nil {
		t.Fatal(err)
	}
	for i := range n {
		l.Add(i)
	}
	return l
}

func TestPlainDump(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := intList(t, 4, 10)
	var b strings.Builder
	config := &Config{LineWidth: 40, Context: uax11.LatinContext}
	if err := Dump(l, &b, config, Plain{}); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2*len(l.Shape().Lengths) {
		t.Fatalf("expected header and element line per segment, have %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "#0 @0 (") {
		t.Errorf("unexpected first header %q", lines[0])
	}
	if strings.Contains(out, "!") {
		t.Errorf("no segment should be flagged")
	}
	if !strings.HasSuffix(lines[len(lines)-1], "9") {
		t.Errorf("last line should end with the maximum, is %q", lines[len(lines)-1])
	}
}

func TestDumpWrapsAndElides(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := intList(t, 50, 60)
	var b strings.Builder
	config := &Config{LineWidth: 20, MaxElements: 30}
	if err := Dump(l, &b, config, Plain{}); err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(b.String(), "\n") {
		if strings.HasPrefix(line, "#") || strings.Contains(line, "…") {
			continue
		}
		if len(line) > 20 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
	if !strings.Contains(b.String(), "…+30") {
		t.Errorf("expected elision marker in\n%s", b.String())
	}
}

func TestDumpWideCharacters(t *testing.T) {
	l := sorted.New[string]()
	l.Update("日本", "中文", "한국어", "abc")
	var b strings.Builder
	if err := Dump(l, &b, &Config{LineWidth: 12}, Plain{}); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", b.String())
	// East Asian wide characters take two positions each
	lines := strings.Split(b.String(), "\n")
	if len(lines) < 4 {
		t.Errorf("expected wide elements to wrap, have\n%s", b.String())
	}
}

func TestConsoleDump(t *testing.T) {
	save := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = save }()
	l := intList(t, 4, 10)
	var plain, console strings.Builder
	config := &Config{LineWidth: 40}
	if err := Dump(l, &plain, config, Plain{}); err != nil {
		t.Fatal(err)
	}
	if err := Dump(l, &console, config, NewConsole(nil)); err != nil {
		t.Fatal(err)
	}
	if plain.String() != console.String() {
		t.Errorf("console output without colors should equal plain output:\n%s\n%s",
			plain.String(), console.String())
	}
	if err := Dump[int](nil, &console, config, Plain{}); err == nil {
		t.Errorf("expected error for nil list")
	}
}

func TestConfigFromTerminal(t *testing.T) {
	config := ConfigFromTerminal()
	if config.LineWidth < 10 {
		t.Errorf("line width too small: %d", config.LineWidth)
	}
}
