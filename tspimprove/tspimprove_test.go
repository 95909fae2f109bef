package tspimprove

import (
	"sort"
	"testing"

	"github.com/leo848/pathviz/internal/stepsink"
	"github.com/leo848/pathviz/internal/wire"
	"github.com/leo848/pathviz/pathctx"
	"github.com/leo848/pathviz/weightmatrix"
	"github.com/stretchr/testify/require"
)

type discardResponder struct{}

func (discardResponder) Send([]byte) error { return nil }
func (discardResponder) Closed() bool       { return false }

func squareImproveCtx(t *testing.T, start weightmatrix.IndexPath) pathctx.ImproveContext {
	t.Helper()
	mat, err := weightmatrix.FromRows([][]float32{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	require.NoError(t, err)
	return pathctx.NewMatrixImproveContext(mat, start, false, pathctx.NewOptions(wire.OptionPool{}))
}

func assertPermutation(t *testing.T, path weightmatrix.IndexPath, n int) {
	t.Helper()
	require.Len(t, path, n)
	seen := append([]int(nil), path...)
	sort.Ints(seen)
	for i := range seen {
		require.Equal(t, i, seen[i])
	}
}

func TestRun_AllImprovementMethodsPreserveOrImprove(t *testing.T) {
	start := weightmatrix.IndexPath{3, 1, 0, 2}
	sink := stepsink.New(discardResponder{}, 0)
	for _, method := range []Method{Rotate, Swap, TwoOpt, ThreeOpt, InnerRotate} {
		ctx := squareImproveCtx(t, start)
		startCost := float64(ctx.Cost(start))
		path, err := Run(method, ctx, sink)
		require.NoErrorf(t, err, "method %s", method)
		assertPermutation(t, path, 4)
		require.LessOrEqualf(t, float64(ctx.Cost(path)), startCost, "method %s worsened cost", method)
	}
}

func TestRun_UnknownMethod(t *testing.T) {
	ctx := squareImproveCtx(t, weightmatrix.IndexPath{0, 1, 2, 3})
	sink := stepsink.New(discardResponder{}, 0)
	_, err := Run(Method("nonsense"), ctx, sink)
	require.Error(t, err)
}

func TestRunTwoOpt_PreferStepStopsAfterFirstImprovement(t *testing.T) {
	mat, err := weightmatrix.FromRows([][]float32{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	require.NoError(t, err)
	start := weightmatrix.IndexPath{0, 2, 1, 3}
	ctx := pathctx.NewMatrixImproveContext(mat, start, true, pathctx.NewOptions(wire.OptionPool{}))
	sink := stepsink.New(discardResponder{}, 0)
	path := RunTwoOpt(ctx, sink)
	assertPermutation(t, path, 4)

	// Six points on a line (weight |i-j|). From 0,2,1,4,3,5 (cost 9) the
	// first improving reversal gives 0,1,2,4,3,5 (cost 7); a full run goes
	// on to 0,1,2,3,4,5 (cost 5).
	line := make([][]float32, 6)
	for i := range line {
		line[i] = make([]float32, 6)
		for j := range line[i] {
			line[i][j] = float32(max(i-j, j-i))
		}
	}
	lineMat, err := weightmatrix.FromRows(line)
	require.NoError(t, err)
	lineStart := weightmatrix.IndexPath{0, 2, 1, 4, 3, 5}
	stepped := RunTwoOpt(pathctx.NewMatrixImproveContext(lineMat, lineStart, true, pathctx.NewOptions(wire.OptionPool{})), sink)
	require.Equal(t, weightmatrix.IndexPath{0, 1, 2, 4, 3, 5}, stepped)
	full := RunTwoOpt(pathctx.NewMatrixImproveContext(lineMat, lineStart, false, pathctx.NewOptions(wire.OptionPool{})), sink)
	require.Equal(t, weightmatrix.IndexPath{0, 1, 2, 3, 4, 5}, full)
}

func TestRunSimulatedAnnealing_TrivialPathReturnsImmediately(t *testing.T) {
	mat, err := weightmatrix.FromRows([][]float32{{0}})
	require.NoError(t, err)
	ctx := pathctx.NewMatrixImproveContext(mat, weightmatrix.IndexPath{0}, false, pathctx.NewOptions(wire.OptionPool{}))
	sink := stepsink.New(discardResponder{}, 0)
	path := RunSimulatedAnnealing(ctx, sink)
	require.Equal(t, weightmatrix.IndexPath{0}, path)
}
