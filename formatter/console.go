package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/sorted"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors a console uses to visualize parts of a dump.
type Palette struct {
	Header  *color.Color // segment headers
	Flagged *color.Color // headers of segments out of bounds
	Max     *color.Color // the maximum of each segment
	Elided  *color.Color // elision markers
}

// DefaultPalette returns the default console palette.
func DefaultPalette() Palette {
	return Palette{
		Header:  color.New(color.FgBlue),
		Flagged: color.New(color.FgRed, color.Bold),
		Max:     color.New(color.FgGreen),
		Elided:  color.New(color.Faint),
	}
}

// Console is a format for outputting segment dumps to a console with a fixed
// width font. It uses colors to visualize parts of the dump.
type Console struct {
	Palette Palette
}

// NewConsole creates a new console format. If palette is nil, the default
// palette is used.
func NewConsole(palette *Palette) *Console {
	c := &Console{Palette: DefaultPalette()}
	if palette != nil {
		c.Palette = *palette
	}
	return c
}

// Print dumps a list to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print[T any](l *sorted.List[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Dump(l, os.Stdout, config, NewConsole(nil))
}

// Preamble does nothing for consoles.
func (c *Console) Preamble(io.Writer) {}

// Postamble resets colors.
func (c *Console) Postamble(w io.Writer) {
	if !color.NoColor {
		io.WriteString(w, "\x1b[0m")
	}
}

// Segment outputs a colored segment header.
func (c *Console) Segment(info SegmentInfo, w io.Writer) {
	header := fmt.Sprintf("#%d @%d (%d)", info.Index, info.Pos, info.Len)
	if info.Flagged {
		c.Palette.Flagged.Fprint(w, header+" !")
		return
	}
	c.Palette.Header.Fprint(w, header)
}

// Element outputs an element, highlighting the segment maximum.
func (c *Console) Element(s string, last bool, w io.Writer) {
	if last {
		c.Palette.Max.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// Elided outputs the number of elements not shown.
func (c *Console) Elided(n int, w io.Writer) {
	c.Palette.Elided.Fprintf(w, " …+%d", n)
}

// Newline outputs a newline.
func (c *Console) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			switch {
			case w > 65:
				config.LineWidth = w - 10
			case w > 30:
				config.LineWidth = w - 5
			case w > 10:
				config.LineWidth = w
			default:
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
