// Package numeric provides a total-ordered, hashable wrapper around float32
// and the Cost/Weight scalar types built on it.
//
// IEEE-754 floats are only a partial order (NaN compares unequal to everything,
// including itself), which makes them unusable as map keys or sort.Interface
// elements. Float32 restores a total order using bit-pattern tie-breaking
// equivalent to IEEE 754-2008's totalOrder predicate, and is hashable by that
// same bit pattern.
package numeric
