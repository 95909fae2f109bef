// Package sortengine implements the five instrumented comparison sorts:
// bubble, selection, insertion, merge, and quick. Each consumes a slice of
// signed integers and a stepsink.Sink, emits an annotated array snapshot
// after every comparison and swap, and returns the sorted slice.
//
// Grounded on original_source/src/integer_sort/{bubble,selection,insertion,
// merge,quick}.rs: the Go ports keep each algorithm's exact emission
// points (compare-before-swap, correct-at-end-of-outer-iteration, and
// quick/merge's consider/pivot/smaller/larger bracketing) rather than just
// reproducing the final sorted order.
package sortengine
