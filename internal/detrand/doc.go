// Package detrand provides the deterministic random sources shared by
// tspconstruct's Random method and tspimprove's simulated annealing:
// same seed implies identical results across platforms, with independent
// substreams derived via a SplitMix64-style mix.
//
// Grounded on github.com/katalvlaran/lvlath/tsp's rng.go (rngFromSeed,
// deriveSeed, deriveRNG, shuffleIntsInPlace, permRange), exported here since
// pathviz's algorithms live across multiple top-level packages rather than
// one tsp package.
package detrand
