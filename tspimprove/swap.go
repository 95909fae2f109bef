package tspimprove

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunSwap repeatedly tries exchanging every pair of positions (i, j),
// keeping the first swap that strictly improves cost and restarting the
// scan from the top. It runs to a local optimum unless ctx.PreferStep is
// set, in which case it returns after the first improving swap.
func RunSwap(ctx pathctx.ImproveContext, sink *stepsink.Sink) weightmatrix.IndexPath {
	path := ctx.StartPath().Clone()
	n := path.Len()
	if n == 0 {
		done := 1.0
		_ = ctx.SendImprovement(sink, path, true, true, &done)
		return path
	}
	bestCost := float64(ctx.Cost(path))

	improvement := true
	for improvement {
		improvement = false
	restart:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				path = path.Swap(i, j)
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
				path = path.Swap(i, j)
			}
		}
	}

	done := 1.0
	_ = ctx.SendImprovement(sink, path, true, true, &done)
	return path
}
