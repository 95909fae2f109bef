package pathctx

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/numeric"
	"github.com/leo848/pathviz/weightmatrix"
)

// Context is the capability set every TSP algorithm programs against,
// regardless of whether the underlying problem came in as points-plus-metric
// or as a client-supplied weight matrix.
type Context interface {
	// Len returns the vertex count n.
	Len() int

	// NodeIndices returns 0..n-1.
	NodeIndices() []int

	// Dist returns the (Pessimal-adjusted) edge weight between i and j.
	Dist(i, j int) numeric.Weight

	// DistPath sums Dist along consecutive pairs of path (open, no wraparound).
	DistPath(path weightmatrix.IndexPath) numeric.Cost

	// Cost is an alias for DistPath, matching the source's vocabulary at
	// algorithm call sites.
	Cost(path weightmatrix.IndexPath) numeric.Cost

	// AdjacencyMatrix materializes the full O(n^2) distance matrix.
	AdjacencyMatrix() *weightmatrix.Matrix

	// Options returns the per-request configuration record.
	Options() Options

	// SendEdges emits an intermediate construction snapshot: the edges
	// accepted so far, in whichever representation (index pairs or
	// materialized points) this context's wire shape calls for.
	SendEdges(sink *stepsink.Sink, edges []weightmatrix.Edge, progress *float64) error

	// SendCreationDone emits the terminal construction step for path.
	SendCreationDone(sink *stepsink.Sink, path weightmatrix.IndexPath) error

	// SendImprovement emits one improvement snapshot. done and better follow
	// the step record invariants: done implies progress=1, better=false
	// marks a step the sink may forward without pacing.
	SendImprovement(sink *stepsink.Sink, path weightmatrix.IndexPath, done, better bool, progress *float64) error
}

// CreateContext is the capability TSP construction algorithms additionally
// need: a way to view the same problem with vertex s relabeled to index 0,
// used by Held-Karp's per-start rotation.
type CreateContext interface {
	Context
	// RotateLeft returns a context over the graph relabeled so former index
	// k becomes index 0 (indices decrease by k mod n).
	RotateLeft(k int) CreateContext
}

// ImproveContext is the capability TSP improvement algorithms additionally
// need: the client-supplied starting path and the prefer-step flag that
// makes every improvement loop return after the first improving move
// instead of iterating to a local optimum.
type ImproveContext interface {
	Context
	// StartPath returns the path the client submitted to improve.
	StartPath() weightmatrix.IndexPath
	// PreferStep reports whether the improvement loop should stop after the
	// first strict improvement rather than running to a local optimum.
	PreferStep() bool
}
