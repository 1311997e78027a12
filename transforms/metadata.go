package transforms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/deep1010/channels"
)

// Metadata is the logical shape of an instance: its channel layout, sample
// count, sampling frequency and auxiliary fields.
type Metadata struct {
	Channels       channels.Layout
	SequenceLength int
	SFreq          float64
	Fields         Fields
}

// Propagate returns the metadata t produces from md.
func Propagate(t Transform, md Metadata) (Metadata, error) {
	out := Metadata{
		Channels:       t.NewChannels(md.Channels),
		SequenceLength: t.NewSequenceLength(md.SequenceLength),
		SFreq:          t.NewSFreq(md.SFreq),
		Fields:         md.Fields,
	}
	if ft, ok := t.(FieldTransform); ok {
		f, err := ft.NewFields(md.Fields)
		if err != nil {
			return Metadata{}, err
		}
		out.Fields = f
	}

	return out, nil
}

// Range is a closed value interval.
type Range struct {
	Min, Max float64
}

// Validate requires finite bounds with Min < Max.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || r.Min >= r.Max {
		return fmt.Errorf("range [%v, %v]: %w", r.Min, r.Max, ErrConfiguration)
	}

	return nil
}

// DatasetInfo describes a dataset at pipeline-construction time.
// DataRange, when set, is the dataset-wide value range used by the
// MappingDeep1010 scale indicator.
type DatasetInfo struct {
	Channels       channels.Layout
	SFreq          float64
	SequenceLength int
	DataRange      *Range
}

// Validate checks the dataset description.
func (d DatasetInfo) Validate() error {
	if len(d.Channels) == 0 {
		return fmt.Errorf("DatasetInfo: no channels: %w", ErrConfiguration)
	}
	if d.SFreq <= 0 || math.IsNaN(d.SFreq) || math.IsInf(d.SFreq, 0) {
		return fmt.Errorf("DatasetInfo: sfreq %v: %w", d.SFreq, ErrConfiguration)
	}
	if d.SequenceLength <= 0 {
		return fmt.Errorf("DatasetInfo: sequence length %d: %w", d.SequenceLength, ErrConfiguration)
	}
	if d.DataRange != nil {
		if err := d.DataRange.Validate(); err != nil {
			return fmt.Errorf("DatasetInfo: %w", err)
		}
	}

	return nil
}

// Metadata returns the initial metadata of the dataset's instances.
func (d DatasetInfo) Metadata(f Fields) Metadata {
	return Metadata{
		Channels:       d.Channels.Clone(),
		SequenceLength: d.SequenceLength,
		SFreq:          d.SFreq,
		Fields:         f,
	}
}
