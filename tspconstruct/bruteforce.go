package tspconstruct

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunBruteForce enumerates every permutation of the context's vertices via
// Heap's algorithm, tracking the cheapest by Cost. It emits the current best
// permutation every nextPowerOfTwo(n!)>>5 permutations (at least every
// permutation, for tiny n) or whenever an improvement occurs.
func RunBruteForce(ctx pathctx.Context, sink *stepsink.Sink) weightmatrix.IndexPath {
	n := ctx.Len()
	if n == 0 {
		path := weightmatrix.IndexPath{}
		_ = ctx.SendCreationDone(sink, path)
		return path
	}

	total := factorial(n)
	emitInterval := nextPowerOfTwo(total) >> 5
	if emitInterval == 0 {
		emitInterval = 1
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var best weightmatrix.IndexPath
	bestCost := 0.0
	found := false
	var count uint64

	emitCurrent := func(path weightmatrix.IndexPath) {
		progress := float64(count) / float64(total)
		_ = ctx.SendEdges(sink, path.IntoEdges(), &progress)
	}

	consider := func() {
		count++
		candidate := weightmatrix.IndexPath(append([]int(nil), perm...))
		cost := float64(ctx.Cost(candidate))
		improved := !found || cost < bestCost
		if improved {
			found = true
			bestCost = cost
			best = candidate
		}
		if improved || count%emitInterval == 0 {
			emitCurrent(best)
		}
	}

	heapPermute(perm, n, consider)

	_ = ctx.SendCreationDone(sink, best)
	return best
}

// heapPermute generates every permutation of a[:k] in place via Heap's
// algorithm, invoking visit once per permutation.
func heapPermute(a []int, k int, visit func()) {
	if k == 1 {
		visit()
		return
	}
	for i := 0; i < k-1; i++ {
		heapPermute(a, k-1, visit)
		if k%2 == 0 {
			a[i], a[k-1] = a[k-1], a[i]
		} else {
			a[0], a[k-1] = a[k-1], a[0]
		}
	}
	heapPermute(a, k-1, visit)
}

func factorial(n int) uint64 {
	var f uint64 = 1
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}
	return f
}

func nextPowerOfTwo(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	p := uint64(1)
	for p < v {
		p <<= 1
	}
	return p
}
