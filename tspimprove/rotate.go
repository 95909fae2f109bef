package tspimprove

import (
	"math"

	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunRotate searches every cyclic rotation of the starting path for the one
// with the lowest open-path cost (useful because an open Hamiltonian path's
// cost depends on which vertex is treated as the start). It keeps the best
// rotation offset found and applies it once at the end, rather than mutating
// the working path during the scan.
func RunRotate(ctx pathctx.ImproveContext, sink *stepsink.Sink) weightmatrix.IndexPath {
	path := ctx.StartPath()
	n := path.Len()
	if n == 0 {
		done := 1.0
		_ = ctx.SendImprovement(sink, path, true, true, &done)
		return path
	}

	minCost := math.Inf(1)
	minI := 0
	for i := 0; i < n; i++ {
		inner := path.RotateLeft(i)
		cost := float64(ctx.DistPath(inner))
		if cost < minCost {
			minCost = cost
			minI = i
			progress := float64(i) / float64(n)
			_ = ctx.SendImprovement(sink, path, false, true, &progress)
		}
	}

	final := path
	if minCost < float64(ctx.DistPath(path)) {
		final = path.RotateLeft(minI)
	}

	done := 1.0
	_ = ctx.SendImprovement(sink, final, true, true, &done)
	return final
}
