package transforms_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deep1010/rng"
	"github.com/katalvlaran/deep1010/transforms"
)

func TestFields(t *testing.T) {
	f := transforms.FieldMask | transforms.FieldID
	assert.True(t, f.Has(transforms.FieldMask))
	assert.False(t, f.Has(transforms.FieldMask|transforms.FieldLabel))
	assert.Equal(t, "trial+mask+id", f.String())
	assert.Equal(t, "trial", transforms.Fields(0).String())
}

func TestNewInstance(t *testing.T) {
	x := randomTrial(t, rng.New(1), 2, 4, 0, 1)
	a, b := transforms.NewInstance(x, 1), transforms.NewInstance(x, 1)
	assert.NotEqual(t, a.ID, b.ID)
	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	require.NoError(t, a.Validate())

	a.Fields |= transforms.FieldMask
	a.Mask = []bool{true}
	require.ErrorIs(t, a.Validate(), transforms.ErrShapeMismatch)

	b.ID = ""
	require.ErrorIs(t, b.Validate(), transforms.ErrConfiguration)
	require.ErrorIs(t, transforms.Instance{}.Validate(), transforms.ErrShapeMismatch)
}

func TestDatasetInfo(t *testing.T) {
	info := subsetInfo()
	require.NoError(t, info.Validate())
	md := info.Metadata(transforms.FieldLabel)
	assert.Equal(t, 200, md.SequenceLength)
	assert.Equal(t, 256.0, md.SFreq)
	assert.Equal(t, transforms.FieldLabel, md.Fields)
	md.Channels[0].Name = "X"
	assert.Equal(t, "Fp1", info.Channels[0].Name)

	bad := []func(*transforms.DatasetInfo){
		func(d *transforms.DatasetInfo) { d.Channels = nil },
		func(d *transforms.DatasetInfo) { d.SFreq = 0 },
		func(d *transforms.DatasetInfo) { d.SequenceLength = -1 },
		func(d *transforms.DatasetInfo) { d.DataRange = &transforms.Range{Min: 2, Max: 1} },
	}
	for i, mutate := range bad {
		d := subsetInfo()
		mutate(&d)
		require.ErrorIs(t, d.Validate(), transforms.ErrConfiguration, "case %d", i)
	}
}
