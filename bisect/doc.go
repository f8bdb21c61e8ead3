/*
Package bisect provides binary search primitives for ordered slices.

Left and Right mirror the classic lower-bound/upper-bound pair: Left returns
the leftmost insertion point for a value, Right the rightmost one. Both run in
O(log n) comparisons and never modify their input.

The Func variants take a probe instead of a value. A probe reports how an
element relates to an implicit target (negative: element is less, zero:
equal, positive: greater). This allows searching by a projection of the
element type, e.g. by a derived key.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bisect
