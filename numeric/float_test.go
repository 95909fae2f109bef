package numeric_test

import (
	"math"
	"sort"
	"testing"

	"github.com/leo848/pathviz/numeric"
	"github.com/stretchr/testify/require"
)

func TestFloat32_TotalOrder(t *testing.T) {
	nan := numeric.Float32(float32(math.NaN()))

	require.True(t, nan.Equal(nan), "NaN must equal itself under totalOrder")
	require.False(t, nan.Less(nan))

	negZero := numeric.Float32(float32(math.Copysign(0, -1)))
	posZero := numeric.Float32(0)
	require.True(t, negZero.Less(posZero), "-0 must sort before +0")
	require.False(t, negZero.Equal(posZero))

	values := []numeric.Float32{3, -1, 2, 0, -5, nan}
	sort.Slice(values, func(i, j int) bool { return values[i].Less(values[j]) })
	require.Equal(t, numeric.Float32(-5), values[0])
}

func TestFloat32_HashConsistentWithEqual(t *testing.T) {
	a := numeric.Float32(1.5)
	b := numeric.Float32(1.5)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestFloat32_Compare(t *testing.T) {
	require.Equal(t, -1, numeric.Float32(1).Compare(numeric.Float32(2)))
	require.Equal(t, 1, numeric.Float32(2).Compare(numeric.Float32(1)))
	require.Equal(t, 0, numeric.Float32(2).Compare(numeric.Float32(2)))
}
