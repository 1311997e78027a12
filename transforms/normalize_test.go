package transforms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deep1010/matrix"
	"github.com/katalvlaran/deep1010/rng"
	"github.com/katalvlaran/deep1010/transforms"
)

func TestZScoreMoments(t *testing.T) {
	x := randomTrial(t, rng.New(3), 4, 50, -20, 80)
	y, err := transforms.NewZScore().Apply(x, nil)
	require.NoError(t, err)

	mean, err := matrix.Mean(y)
	require.NoError(t, err)
	std, err := matrix.Std(y)
	require.NoError(t, err)
	require.InDelta(t, 0, mean, 1e-9)
	require.InDelta(t, 1, std, 1e-9)

	// input untouched
	v, err := x.At(0, 0)
	require.NoError(t, err)
	w, err := y.At(0, 0)
	require.NoError(t, err)
	require.NotEqual(t, v, w)
}

func TestZScoreConstant(t *testing.T) {
	x, err := matrix.NewDenseRows([][]float64{{5, 5, 5}, {5, 5, 5}})
	require.NoError(t, err)
	y, err := transforms.NewZScore().Apply(x, nil)
	require.NoError(t, err)
	y.Do(func(_, _ int, v float64) bool {
		require.False(t, math.IsNaN(v))
		require.Zero(t, v)
		return true
	})

	_, err = transforms.NewZScore().Apply(nil, nil)
	require.ErrorIs(t, err, transforms.ErrShapeMismatch)
}

func TestFixedScale(t *testing.T) {
	fs, err := transforms.NewFixedScale(-1, 1)
	require.NoError(t, err)
	x := randomTrial(t, rng.New(4), 3, 40, 100, 300)
	y, err := fs.Apply(x, nil)
	require.NoError(t, err)
	lo, hi, err := matrix.MinMax(y)
	require.NoError(t, err)
	require.InDelta(t, -1, lo, 1e-12)
	require.InDelta(t, 1, hi, 1e-12)

	c, err := matrix.NewDenseRows([][]float64{{2, 2}})
	require.NoError(t, err)
	y, err = fs.Apply(c, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, row(t, y, 0))
	require.Equal(t, "FixedScale[-1, 1]", fs.String())
}

func TestFixedScaleInvalid(t *testing.T) {
	for _, b := range [][2]float64{{1, 1}, {2, -2}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		_, err := transforms.NewFixedScale(b[0], b[1])
		require.ErrorIs(t, err, transforms.ErrConfiguration, "%v", b)
	}
}
