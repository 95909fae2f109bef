package tspconstruct

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// heldKarpUninitialized marks an unreached predecessor-cache slot. The
// source reserves 0xCC/0xCD for this in debug builds; -1 serves the same
// role here and additionally fails an int-to-index conversion loudly if it
// is ever read back by mistake.
const heldKarpUninitialized = -1

// RunHeldKarp solves TSP construction exactly via bitmask dynamic
// programming: C(S,k) is the minimum cost of a path from vertex 0 visiting
// exactly S and ending at k, with base case C({k},k)=dist(0,k) and
// recurrence C(S,k) = min over m in S\{0,k} of C(S\{k},m)+dist(m,k). The
// whole DP is run once per start vertex s (via ctx.RotateLeft(s), which
// relabels s to index 0), keeping the globally cheapest result across all n
// rotations, each remapped back by (i+s) mod n.
func RunHeldKarp(ctx pathctx.CreateContext, sink *stepsink.Sink) (weightmatrix.IndexPath, error) {
	n := ctx.Len()
	if n >= 32 {
		return nil, fmt.Errorf("tspconstruct: held-karp requires n < 32, got %d", n)
	}
	if n == 0 {
		return weightmatrix.IndexPath{}, nil
	}
	if n == 1 {
		path := weightmatrix.IndexPath{0}
		_ = ctx.SendCreationDone(sink, path)
		return path, nil
	}

	var globalBest weightmatrix.IndexPath
	globalBestCost := math.Inf(1)

	for s := 0; s < n; s++ {
		local := ctx.RotateLeft(s)
		dist := local.AdjacencyMatrix()

		size := 1 << n
		c := make([][]float64, size)
		p := make([][]int, size)
		for mask := range c {
			c[mask] = make([]float64, n)
			p[mask] = make([]int, n)
			for k := range c[mask] {
				c[mask][k] = math.Inf(1)
				p[mask][k] = heldKarpUninitialized
			}
		}

		for k := 1; k < n; k++ {
			w, _ := dist.At(0, k)
			c[1<<uint(k)][k] = float64(w)
			p[1<<uint(k)][k] = k
		}

		for subsetSize := 2; subsetSize < n; subsetSize++ {
			for mask := 1; mask < size; mask++ {
				if mask&1 != 0 {
					continue // subsets range over bits 1..n-1, never include 0
				}
				if bits.OnesCount(uint(mask)) != subsetSize {
					continue
				}
				for k := 1; k < n; k++ {
					if mask&(1<<uint(k)) == 0 {
						continue
					}
					minimum := math.Inf(1)
					minPrev := heldKarpUninitialized
					for m := 1; m < n; m++ {
						if m == k || mask&(1<<uint(m)) == 0 {
							continue
						}
						w, _ := dist.At(m, k)
						value := c[mask&^(1<<uint(k))][m] + float64(w)
						if value <= minimum {
							minimum = value
							minPrev = m
						}
					}
					c[mask][k] = minimum
					p[mask][k] = minPrev
				}
			}
		}

		fullSet := (size - 1) &^ 1
		minimumChainLen := math.Inf(1)
		parent := 0
		for k := 1; k < n; k++ {
			if c[fullSet][k] < minimumChainLen {
				minimumChainLen = c[fullSet][k]
				parent = k
			}
		}

		if minimumChainLen < globalBestCost {
			globalBestCost = minimumChainLen

			localPath := make([]int, 0, n)
			bitsLeft := fullSet
			for i := 0; i < n-1; i++ {
				localPath = append(localPath, parent)
				newBits := bitsLeft &^ (1 << uint(parent))
				parent = p[bitsLeft][parent]
				bitsLeft = newBits
			}
			localPath = append(localPath, 0)
			reverseInts(localPath)

			remapped := make(weightmatrix.IndexPath, n)
			for i, idx := range localPath {
				remapped[i] = (idx + s) % n
			}
			globalBest = remapped
		}

		progress := float64(s+1) / float64(n)
		_ = ctx.SendEdges(sink, globalBest.IntoEdges(), &progress)
	}

	_ = ctx.SendCreationDone(sink, globalBest)
	return globalBest, nil
}

func reverseInts(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}
