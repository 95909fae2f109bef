// Package tspimprove implements the six local-search improvement moves: a
// whole-path rotation search, pairwise swap, 2-opt, 3-opt, an inner-segment
// rotation search, and simulated annealing. Every move reads its starting
// path and prefer-step flag from a pathctx.ImproveContext and streams
// intermediate snapshots through a stepsink.Sink.
//
// Grounded on original_source/src/path/improve.rs: each function here is a
// direct port of its Rust counterpart, kept in the teacher's local-search
// idiom (plain loops over index pairs, restart-from-scratch on improvement)
// rather than rewritten around a generic neighborhood-search abstraction.
package tspimprove
