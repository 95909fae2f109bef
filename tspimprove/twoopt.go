package tspimprove

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunTwoOpt repeatedly reverses the segment strictly between positions i+1
// and j (exclusive of j), keeping the first reversal that strictly improves
// cost and restarting the scan. Runs to a local optimum unless
// ctx.PreferStep requests stopping after the first improvement.
func RunTwoOpt(ctx pathctx.ImproveContext, sink *stepsink.Sink) weightmatrix.IndexPath {
	path := ctx.StartPath().Clone()
	n := path.Len()
	if n < 2 {
		done := 1.0
		_ = ctx.SendImprovement(sink, path, true, true, &done)
		return path
	}
	bestCost := float64(ctx.Cost(path))

	improvement := true
	for improvement {
		improvement = false
	restart:
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				twoOptSwap(path, i, j)
				newCost := float64(ctx.Cost(path))
				if newCost < bestCost {
					progress := float64(i*n+j) / float64(n*n)
					_ = ctx.SendImprovement(sink, path, false, true, &progress)
					bestCost = newCost
					if ctx.PreferStep() {
						break restart
					}
					improvement = true
					goto restart
				}
				twoOptSwap(path, i, j)
			}
		}
	}

	done := 1.0
	_ = ctx.SendImprovement(sink, path, true, true, &done)
	return path
}

// twoOptSwap reverses path[v1+1:v2] in place, matching the source's
// half-open segment boundary exactly.
func twoOptSwap(path weightmatrix.IndexPath, v1, v2 int) {
	segment := path[v1+1 : v2]
	for i, j := 0, len(segment)-1; i < j; i, j = i+1, j-1 {
		segment[i], segment[j] = segment[j], segment[i]
	}
}
