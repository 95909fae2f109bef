package geometry_test

import (
	"testing"

	"github.com/leo848/pathviz/geometry"
	"github.com/stretchr/testify/require"
)

func TestNewPoint_ValidatesDimension(t *testing.T) {
	_, err := geometry.NewPoint(nil)
	require.ErrorIs(t, err, geometry.ErrEmptyDimension)

	big := make([]float32, 256)
	_, err = geometry.NewPoint(big)
	require.ErrorIs(t, err, geometry.ErrDimensionTooLarge)

	p, err := geometry.NewPoint([]float32{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, p.Dim())
	require.Equal(t, float32(2), p.At(1))
}

func TestDist_Norms(t *testing.T) {
	a, _ := geometry.NewPoint([]float32{0, 0})
	b, _ := geometry.NewPoint([]float32{3, 4})

	l1, err := geometry.Dist(a, b, geometry.Metric{Norm: geometry.Manhattan})
	require.NoError(t, err)
	require.Equal(t, float32(7), l1)

	l2, err := geometry.Dist(a, b, geometry.Metric{Norm: geometry.Euclidean})
	require.NoError(t, err)
	require.Equal(t, float32(5), l2)

	linf, err := geometry.Dist(a, b, geometry.Metric{Norm: geometry.Max})
	require.NoError(t, err)
	require.Equal(t, float32(4), linf)
}

func TestDist_Invert(t *testing.T) {
	a, _ := geometry.NewPoint([]float32{0})
	b, _ := geometry.NewPoint([]float32{5})

	d, err := geometry.Dist(a, b, geometry.Metric{Norm: geometry.Euclidean, Invert: true})
	require.NoError(t, err)
	require.Equal(t, float32(-5), d)
}

func TestDist_SelfIsZero(t *testing.T) {
	a, _ := geometry.NewPoint([]float32{1, 2, 3})
	d, err := geometry.Dist(a, a, geometry.DefaultMetric)
	require.NoError(t, err)
	require.Equal(t, float32(0), d)
}

func TestDist_DimensionMismatch(t *testing.T) {
	a, _ := geometry.NewPoint([]float32{1})
	b, _ := geometry.NewPoint([]float32{1, 2})
	_, err := geometry.Dist(a, b, geometry.DefaultMetric)
	require.ErrorIs(t, err, geometry.ErrDimensionMismatch)
}
