package tspimprove

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunThreeOpt picks three cut points i<j<k and tries the four distinct
// non-trivial reconnections of the resulting four segments, keeping the
// first that strictly improves cost and restarting the scan. Needs at least
// 5 vertices to have three independent cut points; shorter paths are
// returned unchanged.
func RunThreeOpt(ctx pathctx.ImproveContext, sink *stepsink.Sink) weightmatrix.IndexPath {
	path := ctx.StartPath().Clone()
	n := path.Len()
	if n < 5 {
		done := 1.0
		_ = ctx.SendImprovement(sink, path, true, true, &done)
		return path
	}
	bestCost := float64(ctx.Cost(path))
	bestPath := path.Clone()

	improvement := true
	for improvement {
		improvement = false
	restart:
		for i := 0; i <= n-5; i++ {
			for j := i + 2; j <= n-3; j++ {
				for k := j + 2; k <= n-1; k++ {
					for method := 0; method < 4; method++ {
						candidate := threeOptSwap(bestPath, method, i, j, k)
						newCost := float64(ctx.Cost(candidate))
						improved := newCost < bestCost
						if improved || (k == j+2 && j == i+2) {
							progress := float64(i*n+j) / float64(n*n)
							_ = ctx.SendImprovement(sink, bestPath, false, improved, &progress)
						}
						if newCost < bestCost {
							bestCost = newCost
							bestPath = candidate
							if ctx.PreferStep() {
								break restart
							}
							improvement = true
							goto restart
						}
					}
				}
			}
		}
	}

	done := 1.0
	_ = ctx.SendImprovement(sink, bestPath, true, true, &done)
	return bestPath
}

// threeOptSwap reconnects the four segments [0..=i], [i+1..=j], [j+1..=k],
// [k+1..] according to one of the four non-trivial 3-opt reconnection
// patterns.
func threeOptSwap(path weightmatrix.IndexPath, method, i, j, k int) weightmatrix.IndexPath {
	head := path[:i+1]
	segB := path[i+1 : j+1]
	segD := path[j+1 : k+1]
	tail := path[k+1:]

	out := make(weightmatrix.IndexPath, 0, len(path))
	out = append(out, head...)
	switch method {
	case 0:
		out = append(out, reversed(segB)...)
		out = append(out, reversed(segD)...)
	case 1:
		out = append(out, segD...)
		out = append(out, segB...)
	case 2:
		out = append(out, segD...)
		out = append(out, reversed(segB)...)
	case 3:
		out = append(out, reversed(segD)...)
		out = append(out, segB...)
	}
	out = append(out, tail...)
	return out
}

func reversed(a weightmatrix.IndexPath) weightmatrix.IndexPath {
	out := make(weightmatrix.IndexPath, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}
	return out
}
