/*
Package textfile provides API helpers to load the lines of UTF-8 text files
into sorted lists.

The implementation uses a bounded asynchronous prefetch pipeline internally:
a reader goroutine loads the file in fragments, splits them into lines and
broadcasts batches of lines to the list builder, while preserving a
synchronous `Load` API.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

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
