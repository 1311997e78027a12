package channels_test

import (
	"testing"

	"github.com/katalvlaran/deep1010/channels"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	require.Equal(t, channels.EEG, channels.ParseType("EEG"))
	require.Equal(t, channels.Reference, channels.ParseType(" ear "))
	require.Equal(t, channels.Extra, channels.ParseType("misc"))
	require.Equal(t, channels.Stim, channels.ParseType("trigger"))
	require.Equal(t, channels.Unknown, channels.ParseType("ecg"))
	require.Equal(t, "ref", channels.Reference.String())
}

func TestParseLayout(t *testing.T) {
	l, err := channels.ParseLayout("Fp1, Fp2:eeg , VEOG:eog,A1:ref,STI 014:stim")
	require.NoError(t, err)
	require.Equal(t, channels.Layout{
		{Name: "Fp1", Type: channels.EEG},
		{Name: "Fp2", Type: channels.EEG},
		{Name: "VEOG", Type: channels.EOG},
		{Name: "A1", Type: channels.Reference},
		{Name: "STI 014", Type: channels.Stim},
	}, l)

	_, err = channels.ParseLayout("  ")
	require.ErrorIs(t, err, channels.ErrConfiguration)
	_, err = channels.ParseLayout("Fp1,,Fp2")
	require.ErrorIs(t, err, channels.ErrConfiguration)
}

func TestLayoutClone(t *testing.T) {
	l := channels.Layout{{Name: "Cz", Type: channels.EEG}}
	c := l.Clone()
	c[0].Name = "Pz"
	require.Equal(t, "Cz", l[0].Name)
	require.Equal(t, []string{"Cz"}, l.Names())
	require.Nil(t, channels.Layout(nil).Clone())
}
