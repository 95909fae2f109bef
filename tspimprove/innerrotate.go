package tspimprove

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunInnerRotate scans every sub-segment [start, end) and every rotation
// amount within it, keeping the first rotation that strictly improves cost
// and restarting the scan. Emits one progress heartbeat per start position
// in addition to the improvement snapshots.
func RunInnerRotate(ctx pathctx.ImproveContext, sink *stepsink.Sink) weightmatrix.IndexPath {
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
		for start := 0; start < n; start++ {
			progress := float64(start) / float64(n)
			_ = ctx.SendImprovement(sink, path, false, false, &progress)

			for end := start + 1; end <= n; end++ {
				for amount := 1; amount < end-start; amount++ {
					segment := path[start:end]
					rotateLeftInPlace(segment, amount)
					newCost := float64(ctx.Cost(path))
					if newCost < bestCost {
						p := float64(start*n+end) / float64(n*n)
						_ = ctx.SendImprovement(sink, path, false, true, &p)
						bestCost = newCost
						if ctx.PreferStep() {
							break restart
						}
						improvement = true
						goto restart
					}
					rotateRightInPlace(segment, amount)
				}
			}
		}
	}

	done := 1.0
	_ = ctx.SendImprovement(sink, path, true, true, &done)
	return path
}

func rotateLeftInPlace(a weightmatrix.IndexPath, amount int) {
	n := len(a)
	if n == 0 {
		return
	}
	amount = ((amount % n) + n) % n
	out := make(weightmatrix.IndexPath, n)
	copy(out, a[amount:])
	copy(out[n-amount:], a[:amount])
	copy(a, out)
}

func rotateRightInPlace(a weightmatrix.IndexPath, amount int) {
	n := len(a)
	if n == 0 {
		return
	}
	rotateLeftInPlace(a, n-((amount%n)+n)%n)
}
