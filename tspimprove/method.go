package tspimprove

import (
	"fmt"

	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// Method names a registered improvement algorithm, matching the wire
// protocol's method tag.
type Method string

const (
	Rotate             Method = wire.MethodRotate
	Swap               Method = wire.MethodSwap
	TwoOpt             Method = wire.MethodTwoOpt
	ThreeOpt           Method = wire.MethodThreeOpt
	InnerRotate        Method = wire.MethodInnerRotate
	SimulatedAnnealing Method = wire.MethodSimulatedAnnealing
)

// Run dispatches to the named improvement method and returns the improved
// path, streaming intermediate snapshots through sink.
func Run(method Method, ctx pathctx.ImproveContext, sink *stepsink.Sink) (weightmatrix.IndexPath, error) {
	switch method {
	case Rotate:
		return RunRotate(ctx, sink), nil
	case Swap:
		return RunSwap(ctx, sink), nil
	case TwoOpt:
		return RunTwoOpt(ctx, sink), nil
	case ThreeOpt:
		return RunThreeOpt(ctx, sink), nil
	case InnerRotate:
		return RunInnerRotate(ctx, sink), nil
	case SimulatedAnnealing:
		return RunSimulatedAnnealing(ctx, sink), nil
	default:
		return nil, fmt.Errorf("tspimprove: unknown method %q", method)
	}
}
