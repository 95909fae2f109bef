package pathctx

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
	"github.com/leo848/pathviz/weightmatrix"
)

// MatrixContext is the matrix-based problem shape: the client supplied the
// weight matrix directly, so every emitted path is a plain index sequence.
type MatrixContext struct {
	base
	start      weightmatrix.IndexPath
	preferStep bool
}

// NewMatrixContext builds a MatrixContext over a client-supplied matrix.
func NewMatrixContext(matrix *weightmatrix.Matrix, opts Options) *MatrixContext {
	return &MatrixContext{base: base{graph: weightmatrix.NewGraph(matrix), opts: opts}}
}

// NewMatrixImproveContext builds a MatrixContext for an improvement request,
// additionally carrying the client's starting path and prefer-step flag.
func NewMatrixImproveContext(matrix *weightmatrix.Matrix, start weightmatrix.IndexPath, preferStep bool, opts Options) *MatrixContext {
	c := NewMatrixContext(matrix, opts)
	c.start = start
	c.preferStep = preferStep
	return c
}

func (c *MatrixContext) StartPath() weightmatrix.IndexPath { return c.start }
func (c *MatrixContext) PreferStep() bool                  { return c.preferStep }

// RotateLeft returns a new context over the graph with vertex labels rotated
// left by k, implementing CreateContext for Held-Karp's per-start search.
func (c *MatrixContext) RotateLeft(k int) CreateContext {
	return &MatrixContext{base: base{graph: weightmatrix.NewGraph(c.graph.Matrix().Clone().RotateLeft(k)), opts: c.opts}}
}

func wireEdges(edges []weightmatrix.Edge) []wire.Edge {
	out := make([]wire.Edge, len(edges))
	for i, e := range edges {
		out[i] = wire.Edge{From: e.From, To: e.To}
	}
	return out
}

func (c *MatrixContext) SendEdges(sink *stepsink.Sink, edges []weightmatrix.Edge, progress *float64) error {
	return sink.Send(stepsink.Step{
		Output:   wire.PathCreationOutput(wire.PathCreation{CurrentEdges: wireEdges(edges), Progress: progress}),
		Relevant: true,
	})
}

func (c *MatrixContext) SendCreationDone(sink *stepsink.Sink, path weightmatrix.IndexPath) error {
	done := 1.0
	return sink.Send(stepsink.Step{
		Output:   wire.PathCreationOutput(wire.PathCreation{Done: true, DonePath: []int(path.Clone()), Progress: &done}),
		Relevant: true,
	})
}

func (c *MatrixContext) SendImprovement(sink *stepsink.Sink, path weightmatrix.IndexPath, done, better bool, progress *float64) error {
	return sink.Send(stepsink.Step{
		Output: wire.PathImprovementOutput(wire.PathImprovement{
			Done:        done,
			Better:      better,
			CurrentPath: []int(path.Clone()),
			Progress:    progress,
		}),
		Relevant: better || done,
	})
}
