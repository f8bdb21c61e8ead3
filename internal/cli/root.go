package cli

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	NoColor bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the sortbench CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "sortbench - exercise segmented sorted lists",
		Long: `Replay workload profiles against sorted lists with configurable load
parameters, report timings and segment shape metrics, and sort text files.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			setupTracing(opts.Verbose)
			if opts.NoColor {
				color.NoColor = true
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "trace structural events of lists")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewBenchCommand(opts))
	cmd.AddCommand(NewSortCommand(opts))

	return cmd
}

// setupTracing installs a log-based core tracer. Verbose mode traces
// segment splits, merges and rebuilds.
func setupTracing(verbose bool) {
	gtrace.CoreTracer = gologadapter.New()
	if verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	if gtrace.CoreTracer == nil {
		setupTracing(false)
	}
	return gtrace.CoreTracer
}
