package transforms_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deep1010/matrix"
	"github.com/katalvlaran/deep1010/rng"
	"github.com/katalvlaran/deep1010/transforms"
)

// randomTrial returns a [rows × cols] trial with values uniform in [lo, hi).
func randomTrial(t *testing.T, r *rand.Rand, rows, cols int, lo, hi float64) *matrix.Dense {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = lo + (hi-lo)*r.Float64()
	}
	x, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)

	return x
}

func row(t *testing.T, x *matrix.Dense, i int) []float64 {
	t.Helper()
	v, err := x.Row(i)
	require.NoError(t, err)

	return v
}

// requireConsistent runs t once on x and checks the output shape against the
// propagated metadata.
func requireConsistent(t *testing.T, tr transforms.Transform, md transforms.Metadata, x *matrix.Dense) *matrix.Dense {
	t.Helper()
	y, err := tr.Apply(x, rng.New(1))
	require.NoError(t, err)
	next, err := transforms.Propagate(tr, md)
	require.NoError(t, err)
	require.Equal(t, len(next.Channels), y.Rows(), "%s channels", tr.Name())
	require.Equal(t, next.SequenceLength, y.Cols(), "%s samples", tr.Name())

	return y
}
