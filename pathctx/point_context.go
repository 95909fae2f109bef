package pathctx

import (
	"github.com/leo848/pathviz/geometry"
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
	"github.com/leo848/pathviz/weightmatrix"
)

// PointContext is the point-based problem shape: the client supplied a
// dimension, points, and a metric; the graph is derived once at
// construction. Emitted paths are materialized back into point sequences.
type PointContext struct {
	base
	points     []geometry.Point
	metric     geometry.Metric
	start      weightmatrix.IndexPath
	preferStep bool
}

// NewPointContext derives the distance graph from points under metric.
func NewPointContext(points []geometry.Point, metric geometry.Metric, opts Options) (*PointContext, error) {
	graph, err := weightmatrix.FromPoints(points, metric)
	if err != nil {
		return nil, err
	}
	return &PointContext{base: base{graph: graph, opts: opts}, points: points, metric: metric}, nil
}

// NewPointImproveContext builds a PointContext for an improvement request,
// additionally carrying the client's starting path (given as points, matched
// back to indices by position) and the prefer-step flag.
func NewPointImproveContext(points []geometry.Point, startPoints []geometry.Point, metric geometry.Metric, preferStep bool, opts Options) (*PointContext, error) {
	c, err := NewPointContext(points, metric, opts)
	if err != nil {
		return nil, err
	}
	start := make(weightmatrix.IndexPath, len(startPoints))
	for i := range startPoints {
		start[i] = i
	}
	c.start = start
	c.preferStep = preferStep
	return c, nil
}

func (c *PointContext) StartPath() weightmatrix.IndexPath { return c.start }
func (c *PointContext) PreferStep() bool                  { return c.preferStep }

// RotateLeft returns a context over the same points relabeled so that
// vertex k becomes index 0 (its graph is the rotated matrix, reusing the
// already-computed distances rather than re-deriving them from points).
func (c *PointContext) RotateLeft(k int) CreateContext {
	n := len(c.points)
	rotatedPoints := make([]geometry.Point, n)
	for i := range rotatedPoints {
		rotatedPoints[i] = c.points[(i+k)%n]
	}
	return &PointContext{
		base:   base{graph: weightmatrix.NewGraph(c.graph.Matrix().Clone().RotateLeft(k)), opts: c.opts},
		points: rotatedPoints,
		metric: c.metric,
	}
}

// materialize turns an index path into the corresponding point sequence.
func (c *PointContext) materialize(path weightmatrix.IndexPath) [][]float32 {
	out := make([][]float32, len(path))
	for i, idx := range path {
		out[i] = c.points[idx].Coords()
	}
	return out
}

func (c *PointContext) SendEdges(sink *stepsink.Sink, edges []weightmatrix.Edge, progress *float64) error {
	return sink.Send(stepsink.Step{
		Output:   wire.DistPathCreationOutput(wire.DistPathCreation{CurrentEdges: wireEdges(edges), Progress: progress}),
		Relevant: true,
	})
}

func (c *PointContext) SendCreationDone(sink *stepsink.Sink, path weightmatrix.IndexPath) error {
	done := 1.0
	return sink.Send(stepsink.Step{
		Output:   wire.DistPathCreationOutput(wire.DistPathCreation{Done: true, DonePath: c.materialize(path), Progress: &done}),
		Relevant: true,
	})
}

func (c *PointContext) SendImprovement(sink *stepsink.Sink, path weightmatrix.IndexPath, done, better bool, progress *float64) error {
	return sink.Send(stepsink.Step{
		Output: wire.DistPathImprovementOutput(wire.DistPathImprovement{
			Done:        done,
			Better:      better,
			CurrentPath: c.materialize(path),
			Progress:    progress,
		}),
		Relevant: better || done,
	})
}
