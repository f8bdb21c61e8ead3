/*
Package sorted offers ordered collections backed by a segmented array.

Sorted lists

A List keeps a dynamically changing sequence of elements in sorted order. It
supports insertion, deletion, positional indexing, range queries and bulk
updates, all with sub-linear amortized cost:

	Operation     |   List                 |  sorted slice
	--------------+------------------------+--------------
	Add           |   O(log s + L)         |   O(n)
	Remove        |   O(log s + L)         |   O(n)
	Contains      |   O(log s + log L)     |   O(log n)
	At            |   O(log s) amortized   |   O(1)
	Bisect        |   O(log s + log L)     |   O(log n)
	Update (m)    |   O((n+m) log(n+m))    |   O((n+m) log(n+m))

where s is the number of segments and L the load factor (target segment
length). Internally, elements live in bounded, individually ordered segments
(package segarray) together with a cache of each segment's maximum and a
lazily maintained cumulative index for positional translation.

A KeyList orders its elements by a derived key. Elements with equal keys are
kept in the order of their values if a value ordering is configured, and in
insertion order otherwise.

Lists are not safe for concurrent mutation. Iterators are live views: if a
list is modified while an iteration over it is in progress, results are
unspecified.

Errors

Operations report failures with errors wrapping one of ErrNotFound,
ErrOutOfRange, ErrOrderViolation or ErrInvalidArgument. No failed operation
leaves the list partially modified.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package sorted

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
