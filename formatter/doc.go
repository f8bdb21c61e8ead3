/*
Package formatter dumps the segment layout of sorted lists for debugging.

Lists are written one segment at a time: a header line carrying the
segment index, its starting position and its length, followed by the
segment's elements, wrapped to a target line width. Widths are measured in
fixed-width positions (“en”s) according to Unicode UAX#11, so lists of
East Asian text or emoji line up on a console.

Segments violating occupancy bounds are flagged, which makes the formatter
useful for tuning the load parameters of a list.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package formatter

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
