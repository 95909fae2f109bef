package pathctx

import "github.com/leo848/pathviz/numeric"

// Pessimal is a build-time sign flip of every Dist result. Left false, a
// context behaves normally; flipped to true at compile time (never at
// runtime — there is deliberately no per-request field for it), every
// min-searching algorithm in tspconstruct/tspimprove becomes a max-searcher
// without any algorithm code change, since min(-x) = -max(x).
const Pessimal = false

func applyPessimal(w numeric.Weight) numeric.Weight {
	if Pessimal {
		return -w
	}
	return w
}
