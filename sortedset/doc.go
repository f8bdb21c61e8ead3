/*
Package sortedset implements an ordered set: a set of distinct values which
can be iterated in order and accessed by position.

A Set combines a hash set for membership tests with a sorted.List for
ordered and positional access. Membership tests are O(1) on average,
insertions and removals are those of the underlying list.

	s := sortedset.New[int]()
	s.Add(3)
	s.Add(1)
	s.Add(3)        // no-op
	s.At(0)         // 1
	s.Union(other)  // new set

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package sortedset

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
