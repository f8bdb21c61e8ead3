package metrics

import (
	"fmt"
	"math"
	"slices"

	"github.com/npillmayer/sorted"
)

// ShapeMetric maps the segment layout of a list onto a single number.
type ShapeMetric interface {
	Name() string
	Measure(sorted.Shape) float64
}

type metricFunc struct {
	name string
	f    func(sorted.Shape) float64
}

func (m metricFunc) Name() string                    { return m.name }
func (m metricFunc) Measure(sh sorted.Shape) float64 { return m.f(sh) }

// Pre-manufactured shape metrics.
var (
	// SegmentCount is the number of segments.
	SegmentCount ShapeMetric = metricFunc{"segments", func(sh sorted.Shape) float64 {
		return float64(len(sh.Lengths))
	}}
	// MeanFill is the mean segment length relative to the load.
	MeanFill ShapeMetric = metricFunc{"fill", func(sh sorted.Shape) float64 {
		if len(sh.Lengths) == 0 || sh.Load == 0 {
			return 0
		}
		return float64(sh.Len) / float64(len(sh.Lengths)*sh.Load)
	}}
	// Imbalance is the ratio of the longest to the shortest segment.
	Imbalance ShapeMetric = metricFunc{"imbalance", func(sh sorted.Shape) float64 {
		if len(sh.Lengths) == 0 {
			return 0
		}
		return float64(slices.Max(sh.Lengths)) / float64(slices.Min(sh.Lengths))
	}}
	// IndexCoverage is the fraction of segments covered by the cumulative
	// index cache.
	IndexCoverage ShapeMetric = metricFunc{"index", func(sh sorted.Shape) float64 {
		if len(sh.Lengths) == 0 {
			return 1
		}
		return float64(sh.IndexCache) / float64(len(sh.Lengths))
	}}
)

// Standard is the set of shape metrics reported by tools.
var Standard = []ShapeMetric{SegmentCount, MeanFill, Imbalance, IndexCoverage}

// Value is the result of measuring a shape metric.
type Value struct {
	Name  string
	Value float64
}

func (v Value) String() string {
	return fmt.Sprintf("%s=%.3g", v.Name, v.Value)
}

// Measure applies metrics to a shape, in order.
func Measure(sh sorted.Shape, metrics ...ShapeMetric) []Value {
	values := make([]Value, len(metrics))
	for i, m := range metrics {
		values[i] = Value{Name: m.Name(), Value: m.Measure(sh)}
	}
	return values
}

// ---------------------------------------------------------------------------

// Summary condenses the segment lengths of a shape.
type Summary struct {
	Len       int     // number of elements
	Segments  int     // number of segments
	Min, Max  int     // shortest and longest segment
	Mean      float64 // mean segment length
	StdDev    float64 // standard deviation of segment lengths
	Underfull int     // inner segments shorter than MinFill
	Overfull  int     // segments longer than MaxFill
}

// Summarize computes a summary of the segment lengths of sh.
func Summarize(sh sorted.Shape) Summary {
	s := Summary{Len: sh.Len, Segments: len(sh.Lengths)}
	if s.Segments == 0 {
		return s
	}
	s.Min, s.Max = slices.Min(sh.Lengths), slices.Max(sh.Lengths)
	s.Mean = float64(sh.Len) / float64(s.Segments)
	var sq float64
	for i, n := range sh.Lengths {
		d := float64(n) - s.Mean
		sq += d * d
		if n > sh.MaxFill {
			s.Overfull++
		} else if n < sh.MinFill && i > 0 && i < s.Segments-1 {
			s.Underfull++
		}
	}
	s.StdDev = math.Sqrt(sq / float64(s.Segments))
	if s.Underfull+s.Overfull > 0 {
		tracer().Infof("metrics: %d segments out of occupancy bounds", s.Underfull+s.Overfull)
	}
	return s
}

// Bucket is a histogram bin of segment lengths [Lo, Hi].
type Bucket struct {
	Lo, Hi int
	Count  int
}

// Histogram bins the segment lengths of sh into at most n buckets of equal
// width, spanning the range from the shortest to the longest segment.
func Histogram(sh sorted.Shape, n int) ([]Bucket, error) {
	if n <= 0 {
		return nil, fmt.Errorf("metrics.Histogram: bucket count must be positive, is %d", n)
	}
	if len(sh.Lengths) == 0 {
		return []Bucket{}, nil
	}
	lo, hi := slices.Min(sh.Lengths), slices.Max(sh.Lengths)
	width := (hi - lo + n) / n // ceil((hi-lo+1)/n)
	buckets := make([]Bucket, 0, n)
	for b := lo; b <= hi; b += width {
		buckets = append(buckets, Bucket{Lo: b, Hi: min(b+width-1, hi)})
	}
	for _, l := range sh.Lengths {
		buckets[(l-lo)/width].Count++
	}
	return buckets, nil
}
