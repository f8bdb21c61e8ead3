/*
Package segarray provides the segmented-array backend for sorted lists.

An Array keeps its elements in a slice of bounded segments, each segment an
ordered slice of its own. A parallel slice caches the maximum (last element)
of every segment, so locating the segment responsible for a value is a
bisection over the maxes followed by a bisection inside one segment.

Segment lengths are kept within [MinFill, MaxFill]. A segment growing beyond
MaxFill is split at Load, a segment shrinking below MinFill is merged with a
neighbour (and re-split if the merge overshoots). The first and the last
segment are exempt from the lower bound, as is a single remaining segment.

Positional access goes through a cumulative index: a memoized prefix sum of
segment lengths. The index is never authoritative. Mutations truncate it
right after the first segment whose length changed, and lookups extend it on
demand. Sequential positional access therefore costs amortized O(log s) for
s segments.

Arrays are not safe for concurrent mutation. Iterators are live views over
the segments; mutating an array during iteration yields unspecified results.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segarray

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces to the global core tracer.
func tracer() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
