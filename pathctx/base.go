package pathctx

import (
	"github.com/leo848/pathviz/numeric"
	"github.com/leo848/pathviz/weightmatrix"
)

// base holds the fields and methods common to every concrete context: the
// graph it owns (algorithms only ever borrow it through Context) and the
// decoded option pool.
type base struct {
	graph *weightmatrix.Graph
	opts  Options
}

func (b *base) Len() int { return b.graph.Size() }

func (b *base) NodeIndices() []int {
	idx := make([]int, b.graph.Size())
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func (b *base) Dist(i, j int) numeric.Weight {
	w, err := b.graph.Weight(i, j)
	if err != nil {
		// i and j are always in-bounds for indices this package hands out
		// (NodeIndices, materialized paths); an out-of-range pair here is an
		// algorithm invariant violation, not a request-time condition.
		panic(err)
	}
	return applyPessimal(numeric.Weight(w))
}

func (b *base) DistPath(path weightmatrix.IndexPath) numeric.Cost {
	var sum numeric.Cost
	for i := 0; i+1 < len(path); i++ {
		sum += numeric.Cost(b.Dist(path[i], path[i+1]))
	}
	return sum.Stabilize()
}

func (b *base) Cost(path weightmatrix.IndexPath) numeric.Cost { return b.DistPath(path) }

func (b *base) AdjacencyMatrix() *weightmatrix.Matrix { return b.graph.Matrix().Clone() }

func (b *base) Options() Options { return b.opts }
