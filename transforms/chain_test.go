package transforms_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deep1010/channels"
	"github.com/katalvlaran/deep1010/matrix"
	"github.com/katalvlaran/deep1010/rng"
	"github.com/katalvlaran/deep1010/transforms"
)

func must[T any](t *testing.T) func(v T, err error) T {
	return func(v T, err error) T {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

// fullPipeline uses every trial transform once.
func fullPipeline(t *testing.T, info transforms.DatasetInfo) []transforms.Transform {
	return []transforms.Transform{
		must[*transforms.MappingDeep1010](t)(transforms.NewMappingDeep1010(info, quiet())),
		transforms.NewZScore(),
		must[*transforms.TemporalPadding](t)(transforms.NewTemporalPadding(3, 2, transforms.WithPadMode(transforms.PadReflect))),
		must[*transforms.TemporalInterpolation](t)(transforms.NewTemporalInterpolation(64, transforms.WithSFreq(128))),
		must[*transforms.CropAndResample](t)(transforms.NewCropAndResample(40, 2, transforms.WithTruncate(5))),
		must[*transforms.FixedScale](t)(transforms.NewFixedScale(-1, 1)),
		must[*transforms.MaskAuxiliariesDeep1010](t)(transforms.NewMaskAuxiliariesDeep1010(transforms.WithRandomize(true))),
		must[*transforms.AdditiveEogDeep1010](t)(transforms.NewAdditiveEogDeep1010()),
		must[*transforms.CropAndUpSample](t)(transforms.NewCropAndUpSample(40, 20, transforms.WithInterpolation(transforms.Linear))),
	}
}

// TestChainMetadataMatchesData checks every prefix of the pipeline.
func TestChainMetadataMatchesData(t *testing.T) {
	info := subsetInfo()
	info.SequenceLength = 100
	ts := fullPipeline(t, info)

	for k := 1; k <= len(ts); k++ {
		c, err := transforms.NewChain(0, ts[:k]...)
		require.NoError(t, err)
		md, err := c.ResultingMetadata(info.Metadata(0))
		require.NoError(t, err)

		r := rng.New(uint64(k))
		x := randomTrial(t, r, 4, 100, -5, 5)
		y, err := c.Apply(x, r)
		require.NoError(t, err, c.String())
		require.Equal(t, len(md.Channels), y.Rows(), c.String())
		require.Equal(t, md.SequenceLength, y.Cols(), c.String())
	}

	c, err := transforms.NewChain(0, ts...)
	require.NoError(t, err)
	md, err := c.ResultingMetadata(info.Metadata(0))
	require.NoError(t, err)
	assert.Len(t, md.Channels, 90)
	assert.Equal(t, 40, md.SequenceLength)
	assert.Equal(t, 128.0, md.SFreq)
	assert.Equal(t, len(ts), c.Len())
}

func TestChainOrderMatters(t *testing.T) {
	pad := must[*transforms.TemporalPadding](t)(transforms.NewTemporalPadding(3, 2))
	interp := must[*transforms.TemporalInterpolation](t)(transforms.NewTemporalInterpolation(64))
	md := transforms.Metadata{SequenceLength: 100, SFreq: 256}

	a, err := transforms.NewChain(0, pad, interp)
	require.NoError(t, err)
	b, err := transforms.NewChain(0, interp, pad)
	require.NoError(t, err)

	ma, err := a.ResultingMetadata(md)
	require.NoError(t, err)
	mb, err := b.ResultingMetadata(md)
	require.NoError(t, err)
	assert.Equal(t, 64, ma.SequenceLength)
	assert.Equal(t, 69, mb.SequenceLength)
	assert.True(t, strings.HasPrefix(a.String(), "Chain[TemporalPadding"))
}

func TestChainFieldSchema(t *testing.T) {
	info := subsetInfo()
	noisy := must[*transforms.NoisyBlankDeep1010](t)(transforms.NewNoisyBlankDeep1010(transforms.WithPurgeMask(true)))
	_, err := transforms.NewChain(0, noisy)
	require.ErrorIs(t, err, transforms.ErrConfiguration)

	_, err = transforms.NewChain(0, transforms.NewZScore(), nil)
	require.ErrorIs(t, err, transforms.ErrConfiguration)

	mapping := must[*transforms.MappingDeep1010](t)(transforms.NewMappingDeep1010(info, transforms.WithReturnMask(true), quiet()))
	c, err := transforms.NewChain(transforms.FieldLabel|transforms.FieldID, mapping, noisy)
	require.NoError(t, err)
	assert.Equal(t, transforms.FieldLabel|transforms.FieldID, c.Fields())

	in := transforms.NewInstance(randomTrial(t, rng.New(1), 4, 32, -1, 1), 3)
	out, err := c.ApplyInstance(in, rng.ForInstance(1, in.ID))
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, 3, out.Label)
	assert.Nil(t, out.Mask)
	assert.Equal(t, 90, out.Trial.Rows())

	// unused slots now hold noise rather than zeros
	pz, _ := channels.Deep1010().Index("PZ")
	nonZero := false
	for _, v := range row(t, out.Trial, pz) {
		nonZero = nonZero || v != 0
	}
	assert.True(t, nonZero)

	_, err = c.Apply(in.Trial, rng.New(1))
	require.ErrorIs(t, err, transforms.ErrConfiguration)

	md, err := c.ResultingMetadata(info.Metadata(0))
	require.NoError(t, err)
	assert.Equal(t, transforms.FieldLabel|transforms.FieldID, md.Fields)
}

func TestChainWrapsStepErrors(t *testing.T) {
	c, err := transforms.NewChain(0, must[*transforms.CropAndUpSample](t)(transforms.NewCropAndUpSample(10, 5)))
	require.NoError(t, err)
	_, err = c.Apply(randomTrial(t, rng.New(1), 2, 10, 0, 1), nil)
	require.ErrorIs(t, err, transforms.ErrConfiguration)
	assert.Contains(t, err.Error(), "step 0")

	_, err = c.Apply(nil, rng.New(1))
	require.ErrorIs(t, err, transforms.ErrShapeMismatch)
}

func TestApplyBatch(t *testing.T) {
	pad := must[*transforms.TemporalPadding](t)(transforms.NewTemporalPadding(1, 1))
	r := rng.New(2)
	batch := []*matrix.Dense{randomTrial(t, r, 2, 5, 0, 1), randomTrial(t, r, 2, 5, 0, 1)}
	out, err := transforms.ApplyBatch(pad, batch, r)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, y := range out {
		assert.Equal(t, 7, y.Cols())
	}

	_, err = transforms.ApplyBatch(pad, []*matrix.Dense{batch[0], nil}, r)
	require.ErrorIs(t, err, transforms.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "item 1")
}
