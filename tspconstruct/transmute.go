package tspconstruct

import (
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// RunTransmute reinterprets the context's natural vertex ordering as the
// path, performing no search: it is the identity construction, useful when
// the client only wants the existing labeling materialized (e.g. to preview
// a point cloud's submission order before running a real heuristic).
func RunTransmute(ctx pathctx.Context, sink *stepsink.Sink) weightmatrix.IndexPath {
	path := weightmatrix.IndexPath(ctx.NodeIndices())
	_ = ctx.SendCreationDone(sink, path)
	return path
}
