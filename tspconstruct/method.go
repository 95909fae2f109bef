package tspconstruct

import (
	"fmt"

	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
)

// Method names a registered construction algorithm, matching the wire
// protocol's method tag.
type Method string

const (
	Transmute              Method = wire.MethodTransmute
	Random                  Method = wire.MethodRandom
	NearestNeighbor         Method = wire.MethodNearestNeighbor
	OptimalNearestNeighbor  Method = wire.MethodOptimalNearestNeighbor
	BruteForce              Method = wire.MethodBruteForce
	Greedy                  Method = wire.MethodGreedy
	HeldKarp                Method = wire.MethodHeldKarp
	ILP                     Method = wire.MethodILP
	Insertion               Method = wire.MethodInsertion
)

// Run dispatches to the named construction method and returns the
// constructed path, streaming intermediate snapshots through sink.
func Run(method Method, ctx pathctx.CreateContext, sink *stepsink.Sink) (weightmatrix.IndexPath, error) {
	switch method {
	case Transmute:
		return RunTransmute(ctx, sink), nil
	case Random:
		return RunRandom(ctx, sink), nil
	case NearestNeighbor:
		return RunNearestNeighbor(ctx, sink), nil
	case OptimalNearestNeighbor:
		return RunOptimalNearestNeighbor(ctx, sink), nil
	case BruteForce:
		return RunBruteForce(ctx, sink), nil
	case Greedy:
		return RunGreedy(ctx, sink), nil
	case Insertion:
		return RunInsertion(ctx, sink), nil
	case HeldKarp:
		return RunHeldKarp(ctx, sink)
	case ILP:
		return RunILP(ctx, sink), nil
	default:
		return nil, fmt.Errorf("tspconstruct: unknown method %q", method)
	}
}
