package sorted

import (
	"fmt"
	"io"
	"strings"
)

// ListToDot outputs the segment layout of a list in Graphviz DOT format (for
// debugging purposes). The root node carries the list length, every segment
// node its length, starting position, maximum and first few elements.
// Segments violating occupancy bounds are highlighted.
func ListToDot[T any](l *List[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	cfg := l.arr.Config()
	last := l.arr.Segments() - 1
	fmt.Fprintf(&nodelist, "\"root\" [label=\"%d\" %s];\n", l.Len(), segmentDotStyles(false, false))
	err := l.EachSegment(func(seg, pos int, values []T) error {
		ID := seg + 1
		label := fmt.Sprintf("%d @%d\\nmax %s\\n“%s”", len(values), pos,
			dotEscape(fmt.Sprint(values[len(values)-1])), segstart(values))
		badFill := len(values) > cfg.MaxFill ||
			(len(values) < cfg.MinFill && seg != 0 && seg != last)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, segmentDotStyles(true, badFill))
		fmt.Fprintf(&edgelist, "\"root\" -> \"%d\";\n", ID)
		if seg > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [style=dotted];\n", ID-1, ID)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("list DOT: %s", err.Error())
		return err
	}
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err = io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// segstart renders the first few elements of a segment.
func segstart[T any](values []T) string {
	const show = 3
	var b strings.Builder
	for i, v := range values {
		if i == show {
			b.WriteString(" …")
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(dotEscape(fmt.Sprint(v)))
	}
	return b.String()
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func segmentDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	if highlight {
		s += ",fillcolor=\"#FF7700\""
	}
	return s
}
