package weightmatrix_test

import (
	"testing"

	"github.com/leo848/pathviz/geometry"
	"github.com/leo848/pathviz/weightmatrix"
	"github.com/stretchr/testify/require"
)

func TestMatrix_RotateLeft_PreservesPathCost(t *testing.T) {
	m, err := weightmatrix.FromRows([][]float32{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	require.NoError(t, err)

	path := weightmatrix.IndexPath{0, 1, 2, 3}
	g := weightmatrix.NewGraph(m)
	baseCost, err := g.PathWeight(path)
	require.NoError(t, err)

	for k := 0; k < m.Dim(); k++ {
		rotated := m.RotateLeft(k)
		rg := weightmatrix.NewGraph(rotated)
		relabeled := make(weightmatrix.IndexPath, len(path))
		n := m.Dim()
		for i, v := range path {
			relabeled[i] = ((v-k)%n + n) % n
		}
		cost, err := rg.PathWeight(relabeled)
		require.NoError(t, err)
		require.InDelta(t, float64(baseCost), float64(cost), 1e-6, "rotation k=%d", k)
	}
}

func TestMatrix_ScaleNormalize(t *testing.T) {
	m, _ := weightmatrix.FromRows([][]float32{{0, 4}, {4, 0}})
	require.Equal(t, float32(4), m.Max())

	scaled := m.Scale(2)
	v, _ := scaled.At(0, 1)
	require.Equal(t, float32(8), v)

	normalized := m.Normalize()
	v, _ = normalized.At(0, 1)
	require.Equal(t, float32(1), v)
}

func TestMatrix_StringDetectsLogical(t *testing.T) {
	m, _ := weightmatrix.FromRows([][]float32{{0, 1}, {1, 0}})
	require.Equal(t, "01\n10\n", m.String())
}

func TestIndexPath_IntoEdges(t *testing.T) {
	p := weightmatrix.IndexPath{0, 1, 2}
	edges := p.IntoEdges()
	require.Equal(t, []weightmatrix.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, edges)
}

func TestGraph_FromPoints_SymmetricZeroDiagonal(t *testing.T) {
	var points []geometry.Point
	for _, c := range [][]float32{{0, 0}, {3, 4}, {6, 0}} {
		p, err := geometry.NewPoint(c)
		require.NoError(t, err)
		points = append(points, p)
	}
	g, err := weightmatrix.FromPoints(points, geometry.DefaultMetric)
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			wij, err := g.Weight(i, j)
			require.NoError(t, err)
			wji, err := g.Weight(j, i)
			require.NoError(t, err)
			require.Equal(t, wij, wji)
			if i == j {
				require.Zero(t, wij)
			}
		}
	}
	w01, _ := g.Weight(0, 1)
	require.Equal(t, float32(5), w01)
}
