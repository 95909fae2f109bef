package tspconstruct

import (
	"time"

	"github.com/leo848/pathviz/internal/detrand"
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunRandom returns a shuffled permutation of the context's vertices, seeded
// from the wall clock at call time (matching the source's fastrand, which
// seeds from OS entropy per process) so repeated requests don't all draw the
// same permutation. No intermediate snapshots are emitted: a single random
// draw has no meaningful intermediate states to animate.
func RunRandom(ctx pathctx.Context, sink *stepsink.Sink) weightmatrix.IndexPath {
	path := weightmatrix.IndexPath(detrand.PermRange(ctx.Len(), detrand.FromSeed(time.Now().UnixNano())))
	_ = ctx.SendCreationDone(sink, path)
	return path
}
