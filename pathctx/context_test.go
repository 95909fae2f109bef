package pathctx

import (
	"sync"
	"testing"

	"github.com/leo848/pathviz/geometry"
	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
	"github.com/leo848/pathviz/weightmatrix"
	"github.com/stretchr/testify/require"
)

type capturingResponder struct {
	mu     sync.Mutex
	frames [][]byte
}

func (r *capturingResponder) Send(data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, data)
	return nil
}

func (r *capturingResponder) Closed() bool { return false }

func squarePoints(t *testing.T) []geometry.Point {
	t.Helper()
	coords := [][]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	points := make([]geometry.Point, len(coords))
	for i, c := range coords {
		p, err := geometry.NewPoint(c)
		require.NoError(t, err)
		points[i] = p
	}
	return points
}

func TestPointContext_DistPathAndAdjacency(t *testing.T) {
	points := squarePoints(t)
	metric := geometry.Metric{Norm: geometry.Euclidean}
	ctx, err := NewPointContext(points, metric, NewOptions(wire.OptionPool{}))
	require.NoError(t, err)

	require.Equal(t, 4, ctx.Len())
	cost := ctx.Cost(weightmatrix.IndexPath{0, 1, 2, 3})
	require.InDelta(t, 3.0, float64(cost), 1e-6)

	mat := ctx.AdjacencyMatrix()
	require.Equal(t, 4, mat.Dim())
}

func TestPointContext_SendCreationDoneMaterializesPoints(t *testing.T) {
	points := squarePoints(t)
	metric := geometry.Metric{Norm: geometry.Euclidean}
	ctx, err := NewPointContext(points, metric, NewOptions(wire.OptionPool{}))
	require.NoError(t, err)

	resp := &capturingResponder{}
	sink := stepsink.New(resp, 0)
	require.NoError(t, ctx.SendCreationDone(sink, weightmatrix.IndexPath{0, 1, 2, 3}))
	require.Len(t, resp.frames, 1)
	require.Contains(t, string(resp.frames[0]), "distPathCreation")
}

func TestMatrixContext_SendCreationDoneUsesIndices(t *testing.T) {
	mat, err := weightmatrix.FromRows([][]float32{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	require.NoError(t, err)
	ctx := NewMatrixContext(mat, NewOptions(wire.OptionPool{}))

	resp := &capturingResponder{}
	sink := stepsink.New(resp, 0)
	require.NoError(t, ctx.SendCreationDone(sink, weightmatrix.IndexPath{0, 1, 2}))
	require.Len(t, resp.frames, 1)
	require.Contains(t, string(resp.frames[0]), `"pathCreation"`)
	require.NotContains(t, string(resp.frames[0]), "distPathCreation")
}

func TestMatrixContext_RotateLeftPreservesCost(t *testing.T) {
	mat, err := weightmatrix.FromRows([][]float32{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	require.NoError(t, err)
	ctx := NewMatrixContext(mat, NewOptions(wire.OptionPool{}))

	rotated := ctx.RotateLeft(2)
	require.Equal(t, 4, rotated.Len())
	// Rotated label i is original vertex (i+2) mod 4, so rotated 0,1,2,3 is
	// original 2,3,0,1: 6 + 3 + 1 = 10 in both labelings.
	require.InDelta(t, float64(ctx.Cost(weightmatrix.IndexPath{2, 3, 0, 1})), float64(rotated.Cost(weightmatrix.IndexPath{0, 1, 2, 3})), 1e-9)
	require.InDelta(t, 10.0, float64(rotated.Cost(weightmatrix.IndexPath{0, 1, 2, 3})), 1e-9)
}

func TestOptions_Defaults(t *testing.T) {
	opts := NewOptions(wire.OptionPool{})
	require.Equal(t, 0.15, opts.InitialTemperature())
	require.Equal(t, "branchAndBound", string(opts.MILPSolver()))
}
