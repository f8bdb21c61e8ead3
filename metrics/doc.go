/*
Package metrics provides some pre-manufactured metrics on the segment layout
of sorted lists.

Metrics operate on a sorted.Shape snapshot, so they may be computed without
holding on to the list itself. They are intended for tuning the load
parameters of lists and for diagnostics in tests and tools.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

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
