/*
Package sortedmap implements an ordered map: a map whose keys are kept in
sorted order, with positional access to keys, values and items.

A Map combines a hash map from keys to values with a sorted.List of keys.
Lookup by key is O(1) on average; insertion and removal of keys are those of
the underlying list. The views returned by Keys, Values and Items reflect
later changes of the map.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package sortedmap
