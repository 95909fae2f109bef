package tspimprove

import (
	"math"
	"time"

	"github.com/leo848/pathviz/internal/detrand"
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// coolingRate is the per-iteration temperature decrement k.
const coolingRate = 2.5e-10

// stopTemperature is the temperature at which the cooling schedule halts.
const stopTemperature = 5e-9

// checkpointInterval controls how often the running best-path snapshot is
// emitted, matching the source's `i % (1 << 24) == 0` cadence.
const checkpointInterval = 1 << 24

// RunSimulatedAnnealing explores the path space by repeatedly swapping two
// random positions, always accepting improving swaps and accepting
// worsening ones with probability exp(-delta/temperature), cooling linearly
// from ctx.Options().InitialTemperature() down to stopTemperature. The best
// path seen at any point is tracked separately and returned, since annealing
// itself may end on a worse state than it passed through.
func RunSimulatedAnnealing(ctx pathctx.ImproveContext, sink *stepsink.Sink) weightmatrix.IndexPath {
	path := ctx.StartPath().Clone()
	n := path.Len()
	if n < 2 {
		done := 1.0
		_ = ctx.SendImprovement(sink, path, true, true, &done)
		return path
	}

	// Seeded from the wall clock at call time, matching the source's
	// fastrand (OS-entropy-seeded per process): two requests for the same
	// input must not walk the identical annealing trajectory.
	rng := detrand.FromSeed(time.Now().UnixNano())
	initialTemp := ctx.Options().InitialTemperature()
	temperature := initialTemp
	cost := float64(ctx.Cost(path))

	bestPath := path.Clone()
	bestCost := cost

	for i := 0; temperature > stopTemperature; i++ {
		if i%checkpointInterval == 0 {
			progress := 1.0 - temperature/initialTemp
			_ = ctx.SendImprovement(sink, bestPath, false, false, &progress)
		}

		idx1, idx2 := rng.Intn(n), rng.Intn(n)
		path[idx1], path[idx2] = path[idx2], path[idx1]
		newCost := float64(ctx.Cost(path))
		delta := newCost - cost
		threshold := math.Exp(-delta / temperature)

		if delta < 0 || rng.Float64() < threshold {
			cost = newCost
		} else {
			path[idx1], path[idx2] = path[idx2], path[idx1]
		}

		if newCost < bestCost {
			bestCost = newCost
			bestPath = path.Clone()
		}

		temperature -= coolingRate
	}

	done := 1.0
	_ = ctx.SendImprovement(sink, bestPath, true, true, &done)
	return bestPath
}
