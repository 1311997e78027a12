package transforms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deep1010/matrix"
	"github.com/katalvlaran/deep1010/transforms"
)

func TestInterpolationKernels(t *testing.T) {
	x, err := matrix.NewDenseRows([][]float64{{1, 2, 3, 4}})
	require.NoError(t, err)
	tests := []struct {
		mode   transforms.Interpolation
		length int
		want   []float64
	}{
		{transforms.Nearest, 8, []float64{1, 1, 2, 2, 3, 3, 4, 4}},
		{transforms.Nearest, 2, []float64{1, 3}},
		{transforms.Area, 2, []float64{1.5, 3.5}},
		{transforms.Linear, 2, []float64{1.5, 3.5}},
		{transforms.Linear, 4, []float64{1, 2, 3, 4}},
		{transforms.Area, 8, []float64{1, 1, 2, 2, 3, 3, 4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			ti, err := transforms.NewTemporalInterpolation(tt.length, transforms.WithInterpolation(tt.mode))
			require.NoError(t, err)
			y, err := ti.Apply(x, nil)
			require.NoError(t, err)
			require.InDeltaSlice(t, tt.want, row(t, y, 0), 1e-12)
		})
	}
}

// TestInterpolationRoundTrip is approximate: 50 → 100 → 50 with the linear
// kernel smooths a slow sine by a small second-difference term.
func TestInterpolationRoundTrip(t *testing.T) {
	const n = 50
	data := make([]float64, 2*n)
	for k := 0; k < n; k++ {
		data[k] = math.Sin(2 * math.Pi * float64(k) / n)
		data[n+k] = math.Cos(2 * math.Pi * float64(k) / n)
	}
	x, err := matrix.NewDenseFrom(2, n, data)
	require.NoError(t, err)

	up, err := transforms.NewTemporalInterpolation(100, transforms.WithInterpolation(transforms.Linear))
	require.NoError(t, err)
	down, err := transforms.NewTemporalInterpolation(n, transforms.WithInterpolation(transforms.Linear))
	require.NoError(t, err)

	y, err := up.Apply(x, nil)
	require.NoError(t, err)
	require.Equal(t, 100, y.Cols())
	z, err := down.Apply(y, nil)
	require.NoError(t, err)
	require.Equal(t, n, z.Cols())

	ok, err := matrix.AllClose(x, z, 0, 0.05)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTemporalInterpolationPropagation(t *testing.T) {
	ti, err := transforms.NewTemporalInterpolation(64, transforms.WithSFreq(128))
	require.NoError(t, err)
	require.Equal(t, 64, ti.NewSequenceLength(500))
	require.Equal(t, 128.0, ti.NewSFreq(250))

	ti, err = transforms.NewTemporalInterpolation(64)
	require.NoError(t, err)
	require.Equal(t, 250.0, ti.NewSFreq(250))

	_, err = transforms.NewTemporalInterpolation(0)
	require.ErrorIs(t, err, transforms.ErrConfiguration)
	_, err = transforms.NewTemporalInterpolation(10, transforms.WithSFreq(-1))
	require.ErrorIs(t, err, transforms.ErrConfiguration)
	_, err = transforms.NewTemporalInterpolation(10, transforms.WithInterpolation(transforms.Interpolation(7)))
	require.ErrorIs(t, err, transforms.ErrConfiguration)

	m, err := transforms.ParseInterpolation("AREA")
	require.NoError(t, err)
	require.Equal(t, transforms.Area, m)
}
