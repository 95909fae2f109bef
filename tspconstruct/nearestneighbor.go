package tspconstruct

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunNearestNeighbor builds a path by always stepping to the nearest
// unvisited vertex, starting from index 0, emitting the edges accepted so
// far after every step.
func RunNearestNeighbor(ctx pathctx.CreateContext, sink *stepsink.Sink) weightmatrix.IndexPath {
	path := nearestNeighborFrom(ctx, 0, sink, true)
	_ = ctx.SendCreationDone(sink, path)
	return path
}

// RunOptimalNearestNeighbor restarts nearest-neighbor from every vertex and
// keeps the globally cheapest resulting path, emitting the new best's edges
// whenever a start improves on the previous best.
func RunOptimalNearestNeighbor(ctx pathctx.CreateContext, sink *stepsink.Sink) weightmatrix.IndexPath {
	n := ctx.Len()
	var best weightmatrix.IndexPath
	var bestCost float64
	found := false

	for _, start := range ctx.NodeIndices() {
		candidate := nearestNeighborFrom(ctx, start, sink, false)
		cost := float64(ctx.Cost(candidate))
		if !found || cost < bestCost {
			found = true
			bestCost = cost
			best = candidate
			progress := float64(start+1) / float64(n)
			_ = ctx.SendEdges(sink, best.IntoEdges(), &progress)
		}
	}

	_ = ctx.SendCreationDone(sink, best)
	return best
}

func nearestNeighborFrom(ctx pathctx.Context, start int, sink *stepsink.Sink, emit bool) weightmatrix.IndexPath {
	n := ctx.Len()
	if n == 0 {
		return weightmatrix.IndexPath{}
	}
	visited := make([]bool, n)
	path := make(weightmatrix.IndexPath, 0, n)
	path = append(path, start)
	visited[start] = true

	for len(path) != n {
		last := path[len(path)-1]
		next := -1
		var nextDist float64

		for _, v := range ctx.NodeIndices() {
			if visited[v] {
				continue
			}
			d := float64(ctx.Dist(last, v))
			if next == -1 || d < nextDist {
				next = v
				nextDist = d
			}
		}

		path = append(path, next)
		visited[next] = true

		if emit {
			progress := float64(len(path)) / float64(n)
			_ = ctx.SendEdges(sink, path.IntoEdges(), &progress)
		}
	}

	return path
}
