package tspconstruct

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

func squareMatrixCtx(t *testing.T) pathctx.CreateContext {
	t.Helper()
	mat, err := weightmatrix.FromRows([][]float32{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	require.NoError(t, err)
	return pathctx.NewMatrixContext(mat, pathctx.NewOptions(wire.OptionPool{}))
}

func assertPermutation(t *testing.T, path weightmatrix.IndexPath, n int) {
	t.Helper()
	require.Len(t, path, n)
	seen := make([]int, len(path))
	copy(seen, path)
	sort.Ints(seen)
	for i := range seen {
		require.Equal(t, i, seen[i])
	}
}

func TestRun_AllConstructionMethods(t *testing.T) {
	sink := stepsink.New(discardResponder{}, 0)
	for _, method := range []Method{
		Transmute, Random, NearestNeighbor, OptimalNearestNeighbor,
		BruteForce, Greedy, Insertion, HeldKarp, ILP,
	} {
		ctx := squareMatrixCtx(t)
		path, err := Run(method, ctx, sink)
		require.NoErrorf(t, err, "method %s", method)
		assertPermutation(t, path, 4)
	}
}

func TestRun_UnknownMethod(t *testing.T) {
	ctx := squareMatrixCtx(t)
	sink := stepsink.New(discardResponder{}, 0)
	_, err := Run(Method("nonsense"), ctx, sink)
	require.Error(t, err)
}

func TestRunBruteForce_FindsOptimalCost(t *testing.T) {
	ctx := squareMatrixCtx(t)
	sink := stepsink.New(discardResponder{}, 0)
	path := RunBruteForce(ctx, sink)
	best := ctx.Cost(path)
	for perm := range permutations([]int{0, 1, 2, 3}) {
		cost := ctx.Cost(weightmatrix.IndexPath(perm))
		require.LessOrEqual(t, float64(best), float64(cost)+1e-9)
	}
}

func TestRunHeldKarp_MatchesBruteForce(t *testing.T) {
	ctx := squareMatrixCtx(t)
	sink := stepsink.New(discardResponder{}, 0)
	bfPath := RunBruteForce(ctx, sink)
	hkPath, err := RunHeldKarp(ctx, sink)
	require.NoError(t, err)
	require.InDelta(t, float64(ctx.Cost(bfPath)), float64(ctx.Cost(hkPath)), 1e-6)
}

func TestRunHeldKarp_RejectsLargeN(t *testing.T) {
	n := 32
	rows := make([][]float32, n)
	for i := range rows {
		rows[i] = make([]float32, n)
	}
	mat, err := weightmatrix.FromRows(rows)
	require.NoError(t, err)
	ctx := pathctx.NewMatrixContext(mat, pathctx.NewOptions(wire.OptionPool{}))
	sink := stepsink.New(discardResponder{}, 0)
	_, err = RunHeldKarp(ctx, sink)
	require.Error(t, err)
}

func TestRunGreedy_SingleVertex(t *testing.T) {
	mat, err := weightmatrix.FromRows([][]float32{{0}})
	require.NoError(t, err)
	ctx := pathctx.NewMatrixContext(mat, pathctx.NewOptions(wire.OptionPool{}))
	sink := stepsink.New(discardResponder{}, 0)
	path := RunGreedy(ctx, sink)
	require.Equal(t, weightmatrix.IndexPath{0}, path)
}

func TestRunInsertion_IsValidPermutation(t *testing.T) {
	ctx := squareMatrixCtx(t)
	sink := stepsink.New(discardResponder{}, 0)
	path := RunInsertion(ctx, sink)
	assertPermutation(t, path, 4)
}

// permutations yields every permutation of a via Heap's algorithm, used only
// to brute-force-check optimality in tests.
func permutations(a []int) <-chan []int {
	ch := make(chan []int)
	go func() {
		defer close(ch)
		cp := append([]int(nil), a...)
		heapPermute(cp, len(cp), func() {
			out := append([]int(nil), cp...)
			ch <- out
		})
	}()
	return ch
}
