package cli

import (
	"cmp"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/npillmayer/sorted"
	"github.com/npillmayer/sorted/metrics"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// BenchOptions holds flags for the bench command. Flags explicitly set on the
// command line override the profile.
type BenchOptions struct {
	Load          int
	UpdateRatio   float64
	RebuildFactor int
	Size          int
	Ops           int
	Seed          int64
	Check         bool
	Jobs          int
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench [profile.yaml ...]",
		Short: "Run weighted workloads against sorted lists",
		Long: `Bench replays a random workload of list operations, as described by a
YAML profile, and reports timings per operation together with shape metrics
of the resulting segment layout. Several profiles may be given; up to --jobs
of them run concurrently.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			profiles, err := benchProfiles(cmd, opts, args)
			if err != nil {
				return err
			}
			reports, err := RunBenches(cmd.Context(), profiles, opts.Jobs, opts.Check)
			if err != nil {
				_ = out.Error(err)
				return WrapExitError(ExitFailure, "benchmark failed", err)
			}
			if len(reports) == 1 {
				return out.Success(reports[0])
			}
			return out.Success(reports)
		},
	}

	cmd.Flags().IntVar(&opts.Load, "load", 0, "target segment length")
	cmd.Flags().Float64Var(&opts.UpdateRatio, "ratio", 0, "bulk update crossover ratio")
	cmd.Flags().IntVar(&opts.RebuildFactor, "rebuild", 0, "slice deletion rebuild factor")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "initial number of elements")
	cmd.Flags().IntVar(&opts.Ops, "ops", 0, "number of operations")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "verify list invariants after the run")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 1, "number of profiles to run concurrently")

	return cmd
}

// benchProfiles loads the profiles named by args, or the default profile,
// and applies flag overrides to each of them.
func benchProfiles(cmd *cobra.Command, opts *BenchOptions, args []string) ([]*Profile, error) {
	if opts.Jobs < 1 {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid number of jobs %d", opts.Jobs))
	}
	var profiles []*Profile
	if len(args) == 0 {
		p := DefaultProfile
		profiles = append(profiles, &p)
	}
	for _, path := range args {
		p, err := LoadProfile(path)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("cannot load profile %s", path), err)
		}
		profiles = append(profiles, p)
	}
	for _, p := range profiles {
		applyBenchFlags(cmd, opts, p)
		if err := p.validate(); err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("invalid parameters for %s", p.Name), err)
		}
	}
	return profiles, nil
}

func applyBenchFlags(cmd *cobra.Command, opts *BenchOptions, p *Profile) {
	flags := cmd.Flags()
	if flags.Changed("load") {
		p.Load = opts.Load
	}
	if flags.Changed("ratio") {
		p.UpdateRatio = opts.UpdateRatio
	}
	if flags.Changed("rebuild") {
		p.RebuildFactor = opts.RebuildFactor
	}
	if flags.Changed("size") {
		p.Size = opts.Size
	}
	if flags.Changed("ops") {
		p.Ops = opts.Ops
	}
	if flags.Changed("seed") {
		p.Seed = opts.Seed
	}
}

// OpStats collects timings of one kind of operation.
type OpStats struct {
	Name  string        `json:"name"`
	Count int           `json:"count"`
	Total time.Duration `json:"total_ns"`
}

// Mean returns the mean duration of an operation.
func (s OpStats) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// BenchReport is the result of a benchmark run.
type BenchReport struct {
	RunID   string          `json:"run_id"`
	Profile string          `json:"profile"`
	Fill    time.Duration   `json:"fill_ns"`
	Ops     []OpStats       `json:"ops"`
	Len     int             `json:"len"`
	Summary metrics.Summary `json:"summary"`
	Metrics []metrics.Value `json:"metrics"`
	Checked bool            `json:"checked"`
}

func (r *BenchReport) String() string {
	var b strings.Builder
	head := color.New(color.Bold)
	head.Fprintf(&b, "profile %s [%s]: %d elements after fill in %v\n", r.Profile, r.RunID, r.Len, r.Fill)
	for _, op := range r.Ops {
		if op.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-13s %8d ops  %10v/op\n", op.Name, op.Count, op.Mean())
	}
	s := r.Summary
	fmt.Fprintf(&b, "segments %d, lengths %d..%d, mean %.1f, stddev %.1f",
		s.Segments, s.Min, s.Max, s.Mean, s.StdDev)
	if s.Underfull+s.Overfull > 0 {
		color.New(color.FgRed).Fprintf(&b, ", %d underfull, %d overfull", s.Underfull, s.Overfull)
	}
	b.WriteByte('\n')
	for i, m := range r.Metrics {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.String())
	}
	if r.Checked {
		b.WriteString("\ninvariants ok")
	}
	return b.String()
}

// BenchReports are the results of several benchmark runs.
type BenchReports []*BenchReport

func (rs BenchReports) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, "\n\n")
}

// RunBenches runs the workloads of profiles, at most jobs of them at a time.
// Reports are returned in the order of profiles. The first failing run
// cancels the runs not yet started.
func RunBenches(ctx context.Context, profiles []*Profile, jobs int, check bool) (BenchReports, error) {
	tracer() // install the fallback tracer before any run starts
	reports := make(BenchReports, len(profiles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, p := range profiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := RunBench(p, check)
			if err != nil {
				return fmt.Errorf("profile %s: %w", p.Name, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// workload holds the state of a benchmark run.
type workload struct {
	p     *Profile
	rnd   *rand.Rand
	list  *sorted.List[int]
	bound int
	ops   []weighted
	total int
}

// RunBench runs the workload described by p. If check is set, the list
// invariants are verified after the run.
func RunBench(p *Profile, check bool) (*BenchReport, error) {
	list, err := sorted.NewFunc(cmp.Compare[int], p.config())
	if err != nil {
		return nil, err
	}
	seed := p.Seed
	if seed == 0 {
		seed = 1
	}
	w := &workload{p: p, rnd: rand.New(rand.NewSource(seed)), list: list}
	w.bound = p.Range
	if w.bound == 0 {
		w.bound = max(10*p.Size, 1)
	}
	for _, op := range p.Mix.operations() {
		if op.weight > 0 {
			w.ops = append(w.ops, op)
			w.total += op.weight
		}
	}
	report := &BenchReport{RunID: uuid.NewString(), Profile: p.Name}
	start := time.Now()
	fill := make([]int, p.Size)
	for i := range fill {
		fill[i] = w.rnd.Intn(w.bound)
	}
	list.Update(fill...)
	report.Fill = time.Since(start)
	tracer().Debugf("bench: filled %d elements", list.Len())

	stats := make(map[string]*OpStats, len(w.ops))
	for _, op := range w.ops {
		stats[op.name] = &OpStats{Name: op.name}
	}
	for range p.Ops {
		name := w.pick()
		t := time.Now()
		w.run(name)
		s := stats[name]
		s.Total += time.Since(t)
		s.Count++
	}
	for _, op := range w.ops {
		report.Ops = append(report.Ops, *stats[op.name])
	}
	if check {
		if err := list.Check(); err != nil {
			return nil, err
		}
		report.Checked = true
	}
	sh := list.Shape()
	report.Len = list.Len()
	report.Summary = metrics.Summarize(sh)
	report.Metrics = metrics.Measure(sh, metrics.Standard...)
	return report, nil
}

func (w *workload) pick() string {
	r := w.rnd.Intn(w.total)
	for _, op := range w.ops {
		if r < op.weight {
			return op.name
		}
		r -= op.weight
	}
	return w.ops[len(w.ops)-1].name
}

func (w *workload) run(op string) {
	l, n := w.list, w.list.Len()
	switch op {
	case "add":
		l.Add(w.rnd.Intn(w.bound))
	case "discard":
		if n > 0 && w.rnd.Intn(2) == 0 {
			v, _ := l.At(w.rnd.Intn(n))
			l.Discard(v)
		} else {
			l.Discard(w.rnd.Intn(w.bound))
		}
	case "contains":
		l.Contains(w.rnd.Intn(w.bound))
	case "at":
		if n > 0 {
			_, _ = l.At(w.rnd.Intn(n))
		}
	case "bisect":
		l.BisectLeft(w.rnd.Intn(w.bound))
	case "update":
		batch := make([]int, max(w.p.Batch, 1))
		for i := range batch {
			batch[i] = w.rnd.Intn(w.bound)
		}
		l.Update(batch...)
	case "delete_slice":
		if n > 0 {
			lo := w.rnd.Intn(n)
			_ = l.DeleteSlice(sorted.Span(lo, lo+max(w.p.Batch, 1)))
		}
	case "irange":
		lo := w.rnd.Intn(w.bound)
		hi := lo + w.bound/100
		for range l.IRange(&lo, &hi, sorted.Closed, false) {
		}
	}
}
