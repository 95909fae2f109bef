package tspconstruct

import (
	"sort"

	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunGreedy builds a path by sorting all distinct ordered vertex pairs by
// distance and greedily accepting edges into a successor bijection, skipping
// any edge whose source already has a successor, whose target already has a
// predecessor, or that would close a cycle before all n-1 edges are placed.
// Accepted edges are followed back from the unique source to reconstruct the
// path once n-1 edges are in place.
func RunGreedy(ctx pathctx.Context, sink *stepsink.Sink) weightmatrix.IndexPath {
	n := ctx.Len()
	if n == 0 {
		path := weightmatrix.IndexPath{}
		_ = ctx.SendCreationDone(sink, path)
		return path
	}
	if n == 1 {
		path := weightmatrix.IndexPath{0}
		_ = ctx.SendCreationDone(sink, path)
		return path
	}

	type candidate struct {
		from, to int
		dist     float64
	}
	candidates := make([]candidate, 0, n*(n-1))
	for _, i := range ctx.NodeIndices() {
		for _, j := range ctx.NodeIndices() {
			if i == j {
				continue
			}
			candidates = append(candidates, candidate{from: i, to: j, dist: float64(ctx.Dist(i, j))})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool { return candidates[a].dist < candidates[b].dist })

	succ := make(map[int]int)
	hasPred := make(map[int]bool)

	createsCycle := func(from, to int) bool {
		// Following successors from `to` must never return to `from` before
		// running out of edges; equivalently, following from `from` forward
		// (after the tentative insert) must not loop back to `from` itself.
		node := to
		for {
			next, ok := succ[node]
			if !ok {
				return false
			}
			if next == from {
				return true
			}
			node = next
		}
	}

	accepted := make([]weightmatrix.Edge, 0, n-1)
	for _, c := range candidates {
		if len(accepted) == n-1 {
			break
		}
		if _, taken := succ[c.from]; taken {
			continue
		}
		if hasPred[c.to] {
			continue
		}
		if createsCycle(c.from, c.to) {
			continue
		}

		succ[c.from] = c.to
		hasPred[c.to] = true
		accepted = append(accepted, weightmatrix.Edge{From: c.from, To: c.to})

		progress := float64(len(accepted)) / float64(n)
		_ = ctx.SendEdges(sink, accepted, &progress)
	}

	// Follow predecessors from any vertex back to the unique source (the one
	// vertex with no predecessor), then follow successors to build the path.
	pred := make(map[int]int, len(succ))
	for from, to := range succ {
		pred[to] = from
	}
	source := 0
	for node := 0; ; {
		p, ok := pred[node]
		if !ok {
			source = node
			break
		}
		node = p
	}

	path := make(weightmatrix.IndexPath, 0, n)
	path = append(path, source)
	for node := source; ; {
		next, ok := succ[node]
		if !ok {
			break
		}
		path = append(path, next)
		node = next
	}

	_ = ctx.SendCreationDone(sink, path)
	return path
}
