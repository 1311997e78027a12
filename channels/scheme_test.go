package channels_test

import (
	"testing"

	"github.com/katalvlaran/deep1010/channels"
	"github.com/stretchr/testify/require"
)

// TestDeep1010Layout pins the pool sizes and a few well-known positions.
func TestDeep1010Layout(t *testing.T) {
	s := channels.Deep1010()
	require.Equal(t, 90, s.Len())
	require.Equal(t, channels.Deep1010Len, s.Len())
	require.Len(t, s.Indices(channels.CategoryEEG), 77)
	require.Len(t, s.Indices(channels.CategoryEOG), 4)
	require.Len(t, s.Indices(channels.CategoryReference), 3)
	require.Len(t, s.Indices(channels.CategoryExtra), 5)

	idx, ok := s.ScaleIndex()
	require.True(t, ok)
	require.Equal(t, 84, idx)

	i, ok := s.Index("fp1")
	require.True(t, ok)
	require.Equal(t, 1, i)
	i, ok = s.Index("VEOGL")
	require.True(t, ok)
	require.Equal(t, 77, i)
	i, ok = s.Index("ex5")
	require.True(t, ok)
	require.Equal(t, 89, i)

	require.True(t, s.Strict(channels.CategoryEEG))
	require.False(t, s.Strict(channels.CategoryEOG))

	names := s.Names()
	require.Equal(t, "NZ", names[0])
	require.Equal(t, "IZ", names[76])
	require.Equal(t, "SCALE", names[84])

	l := s.Layout()
	require.Equal(t, channels.Scale, l[84].Type)
	require.Equal(t, channels.Reference, l[83].Type)
}

// TestIndicesReturnsCopy guards the scheme against caller mutation.
func TestIndicesReturnsCopy(t *testing.T) {
	s := channels.Deep1010()
	eog := s.Indices(channels.CategoryEOG)
	eog[0] = -7
	require.Equal(t, 77, s.Indices(channels.CategoryEOG)[0])
}

// TestNewSchemeValidation covers every rejected slot list.
func TestNewSchemeValidation(t *testing.T) {
	cases := []struct {
		name  string
		slots []channels.Slot
	}{
		{"empty", nil},
		{"blank name", []channels.Slot{{Name: " ", Category: channels.CategoryEEG}}},
		{"duplicate", []channels.Slot{
			{Name: "Cz", Category: channels.CategoryEEG},
			{Name: "CZ", Category: channels.CategoryEEG},
		}},
		{"bad category", []channels.Slot{{Name: "X", Category: channels.Category(42)}}},
		{"two scales", []channels.Slot{
			{Name: "S1", Category: channels.CategoryScale},
			{Name: "S2", Category: channels.CategoryScale},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := channels.NewScheme(tc.slots)
			require.ErrorIs(t, err, channels.ErrConfiguration)
		})
	}
}

// TestCustomSchemeNoScale reports the missing scale slot.
func TestCustomSchemeNoScale(t *testing.T) {
	s, err := channels.NewScheme([]channels.Slot{{Name: "a", Category: channels.CategoryEEG}})
	require.NoError(t, err)
	_, ok := s.ScaleIndex()
	require.False(t, ok)
	require.Equal(t, []string{"A"}, s.Names())
	_, ok = s.Slot(1)
	require.False(t, ok)
}
