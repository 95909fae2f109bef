package pathctx

import (
	"time"

	"github.com/leo848/pathviz/internal/wire"
	"github.com/leo848/pathviz/milp"
)

// Options wraps the wire-level OptionPool with typed accessors and the
// documented defaults for every recognized field. Unknown fields were
// already dropped at decode time; this layer only supplies fallbacks.
type Options struct {
	pool wire.OptionPool
}

// NewOptions adopts a decoded OptionPool.
func NewOptions(pool wire.OptionPool) Options { return Options{pool: pool} }

// IterationCount is reserved for future use by the source; no algorithm in
// this server currently consults it.
func (o Options) IterationCount() int {
	if o.pool.IterationCount != nil {
		return *o.pool.IterationCount
	}
	return 0
}

// InitialTemperature returns the simulated annealing start temperature,
// defaulting to T0 = 0.15.
func (o Options) InitialTemperature() float64 {
	if o.pool.InitialTemperature != nil {
		return *o.pool.InitialTemperature
	}
	return 0.15
}

// MILPSolver selects the ILP construction backend, defaulting to the only
// shipped backend.
func (o Options) MILPSolver() milp.SolverKind {
	if o.pool.MILPSolver != "" {
		return milp.SolverKind(o.pool.MILPSolver)
	}
	return milp.BranchAndBoundSolver
}

// ILPMaxDuration is the ILP construction wall-clock cap, defaulting to 10s.
func (o Options) ILPMaxDuration() time.Duration {
	if o.pool.ILPMaxDuration != nil {
		return time.Duration(*o.pool.ILPMaxDuration) * time.Second
	}
	return 10 * time.Second
}

// ILPStart and ILPEnd are reserved range selectors, currently unused by any
// algorithm but threaded through for forward compatibility.
func (o Options) ILPStart() (int, bool) {
	if o.pool.ILPStart == nil {
		return 0, false
	}
	return *o.pool.ILPStart, true
}

func (o Options) ILPEnd() (int, bool) {
	if o.pool.ILPEnd == nil {
		return 0, false
	}
	return *o.pool.ILPEnd, true
}
