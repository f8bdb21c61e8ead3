package formatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/sorted"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth   int            // target line width in “en”s
	MaxElements int            // elements shown per segment, 0 for all
	Context     *uax11.Context // display width context, default Latin
}

// SegmentInfo describes a segment to a Format.
type SegmentInfo struct {
	Index   int  // segment index
	Pos     int  // position of the first element
	Len     int  // number of elements
	Flagged bool // segment violates occupancy bounds
}

// Format is an interface for formatting drivers, given an io.Writer.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	Segment(SegmentInfo, io.Writer)
	Element(s string, last bool, w io.Writer)
	Elided(n int, w io.Writer)
	Newline(io.Writer)
}

var setupClasses sync.Once

// Dump formats the segment layout of a list using a given formatter.
// Elements are rendered with fmt.Sprint.
//
// Neither of the arguments may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
func Dump[T any](l *sorted.List[T], out io.Writer, config *Config, format Format) error {
	if l == nil || config == nil || format == nil {
		return errors.New("illegal argument: nil")
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	width := max(config.LineWidth, 10)
	shape := l.Shape()
	last := len(shape.Lengths) - 1
	w := bufio.NewWriter(out)
	format.Preamble(w)
	err := l.EachSegment(func(seg, pos int, values []T) error {
		info := SegmentInfo{Index: seg, Pos: pos, Len: len(values)}
		info.Flagged = len(values) > shape.MaxFill ||
			(len(values) < shape.MinFill && seg != 0 && seg != last)
		format.Segment(info, w)
		format.Newline(w)
		shown := values
		if config.MaxElements > 0 && len(shown) > config.MaxElements {
			shown = shown[:config.MaxElements]
		}
		col := 0
		for i, v := range shown {
			s := fmt.Sprint(v)
			sw := uax11.StringWidth(grapheme.StringFromString(s), config.Context)
			if col > 0 && col+1+sw > width {
				format.Newline(w)
				col = 0
			}
			if col > 0 {
				w.WriteByte(' ')
				col++
			}
			format.Element(s, i == len(values)-1, w)
			col += sw
		}
		if n := len(values) - len(shown); n > 0 {
			format.Elided(n, w)
		}
		format.Newline(w)
		return nil
	})
	format.Postamble(w)
	if err != nil {
		tracer().Errorf("formatter: %s", err.Error())
		return err
	}
	tracer().Debugf("formatter: dumped %d segments at line width %d", len(shape.Lengths), width)
	return w.Flush()
}

// Plain is a format without any decoration, suitable for logs and files.
type Plain struct{}

// Preamble does nothing.
func (Plain) Preamble(io.Writer) {}

// Postamble does nothing.
func (Plain) Postamble(io.Writer) {}

// Segment writes a segment header.
func (Plain) Segment(info SegmentInfo, w io.Writer) {
	fmt.Fprintf(w, "#%d @%d (%d)", info.Index, info.Pos, info.Len)
	if info.Flagged {
		io.WriteString(w, " !")
	}
}

// Element writes an element.
func (Plain) Element(s string, last bool, w io.Writer) {
	io.WriteString(w, s)
}

// Elided writes the number of elements not shown.
func (Plain) Elided(n int, w io.Writer) {
	fmt.Fprintf(w, " …+%d", n)
}

// Newline writes a newline.
func (Plain) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}
