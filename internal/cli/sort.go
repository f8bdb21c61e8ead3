package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/sorted"
	"github.com/npillmayer/sorted/formatter"
	"github.com/npillmayer/sorted/textfile"
	"github.com/spf13/cobra"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	Reverse  bool
	Unique   bool
	Fold     bool
	FragSize int64
	Load     int
	Layout   bool
}

// SortResult is the JSON payload of the sort command.
type SortResult struct {
	Lines    []string `json:"lines"`
	Segments int      `json:"segments"`
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{}

	cmd := &cobra.Command{
		Use:   "sort <file>",
		Short: "Sort the lines of a UTF-8 text file",
		Long: `Sort loads the lines of a text file into a sorted list and prints them
in order. With --layout the segment layout of the list is dumped instead.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			compare := strings.Compare
			if opts.Fold {
				compare = compareFolded
			}
			lines, err := textfile.LoadFunc(cmd.Context(), args[0], compare,
				sorted.Config{Load: opts.Load}, opts.FragSize)
			if err != nil {
				code := ExitCommandError
				if errors.Is(err, textfile.ErrInvalidUTF8) || errors.Is(err, textfile.ErrShortRead) {
					code = ExitFailure
				}
				return WrapExitError(code, fmt.Sprintf("cannot load %s", args[0]), err)
			}
			tracer().Debugf("sort: loaded %d lines from %s", lines.Len(), args[0])
			if opts.Layout {
				return dumpLayout(cmd, rootOpts, lines)
			}
			result := SortResult{Lines: collect(lines, opts), Segments: len(lines.Shape().Lengths)}
			if rootOpts.Format == "json" {
				out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return out.Success(result)
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, line := range result.Lines {
				w.WriteString(line)
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&opts.Reverse, "reverse", "r", false, "output lines in descending order")
	cmd.Flags().BoolVarP(&opts.Unique, "unique", "u", false, "output only the first of equal lines")
	cmd.Flags().BoolVarP(&opts.Fold, "ignore-case", "f", false, "order lines case-insensitively")
	cmd.Flags().Int64Var(&opts.FragSize, "frag", 0, "read fragment size in bytes (0 for default)")
	cmd.Flags().IntVar(&opts.Load, "load", 0, "target segment length")
	cmd.Flags().BoolVar(&opts.Layout, "layout", false, "dump the segment layout instead of the lines")

	return cmd
}

func compareFolded(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// collect returns the lines of l in output order.
func collect(l *sorted.List[string], opts *SortOptions) []string {
	seq := l.All()
	if opts.Reverse {
		seq = l.Backward()
	}
	lines := make([]string, 0, l.Len())
	for line := range seq {
		if opts.Unique && len(lines) > 0 && lines[len(lines)-1] == line {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func dumpLayout(cmd *cobra.Command, rootOpts *RootOptions, l *sorted.List[string]) error {
	var format formatter.Format = formatter.NewConsole(nil)
	if rootOpts.NoColor {
		format = formatter.Plain{}
	}
	config := formatter.ConfigFromTerminal()
	if f, ok := cmd.OutOrStdout().(*os.File); !ok || f != os.Stdout {
		config = &formatter.Config{LineWidth: 65}
	}
	config.MaxElements = 5
	return formatter.Dump(l, cmd.OutOrStdout(), config, format)
}
