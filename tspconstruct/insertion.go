package tspconstruct

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunInsertion builds a path by cheapest insertion: starting from [0], it
// repeatedly finds the (unvisited vertex, insertion position) pair whose
// edge-cost delta is smallest — using the open-path boundary rule at
// position 0 (only the new leading edge counts) and at the path's end
// (only the new trailing edge counts) — and inserts it. Ties keep the first
// minimum found under deterministic (vertex, then position) iteration order.
func RunInsertion(ctx pathctx.Context, sink *stepsink.Sink) weightmatrix.IndexPath {
	n := ctx.Len()
	if n == 0 {
		path := weightmatrix.IndexPath{}
		_ = ctx.SendCreationDone(sink, path)
		return path
	}

	visited := make([]bool, n)
	path := weightmatrix.IndexPath{0}
	visited[0] = true

	for len(path) < n {
		bestVertex, bestPos := -1, -1
		var bestDelta float64

		for _, v := range ctx.NodeIndices() {
			if visited[v] {
				continue
			}
			for pos := 0; pos <= len(path); pos++ {
				delta := insertionDelta(ctx, path, pos, v)
				if bestVertex == -1 || delta < bestDelta {
					bestVertex, bestPos, bestDelta = v, pos, delta
				}
			}
		}

		path = path.Insert(bestPos, bestVertex)
		visited[bestVertex] = true

		progress := float64(len(path)) / float64(n)
		_ = ctx.SendEdges(sink, path.IntoEdges(), &progress)
	}

	_ = ctx.SendCreationDone(sink, path)
	return path
}

func insertionDelta(ctx pathctx.Context, path weightmatrix.IndexPath, pos, v int) float64 {
	switch {
	case pos == 0:
		return float64(ctx.Dist(v, path[0]))
	case pos == len(path):
		return float64(ctx.Dist(path[len(path)-1], v))
	default:
		before, after := path[pos-1], path[pos]
		return float64(ctx.Dist(before, v)) + float64(ctx.Dist(v, after)) - float64(ctx.Dist(before, after))
	}
}
