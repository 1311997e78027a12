package transforms

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/deep1010/channels"
	"github.com/katalvlaran/deep1010/matrix"
)

// normalizedCategories are min-max normalized independently by MappingDeep1010.
var normalizedCategories = []channels.Category{
	channels.CategoryEEG,
	channels.CategoryEOG,
	channels.CategoryReference,
	channels.CategoryExtra,
}

type mappingConfig struct {
	scheme     *channels.Scheme
	scale      *bool
	returnMask bool
	mapOpts    []channels.MapOption
}

// MappingOption configures NewMappingDeep1010.
type MappingOption func(*mappingConfig)

// WithScheme maps onto s instead of channels.Deep1010().
func WithScheme(s *channels.Scheme) MappingOption {
	return func(c *mappingConfig) { c.scheme = s }
}

// WithScaleIndicator toggles the scale slot. It defaults to on when the scheme
// has a scale slot; requesting it on a scheme without one is an error.
func WithScaleIndicator(on bool) MappingOption {
	return func(c *mappingConfig) { c.scale = &on }
}

// WithReturnMask makes ApplyInstance attach the used-slot mask (FieldMask).
func WithReturnMask(on bool) MappingOption {
	return func(c *mappingConfig) { c.returnMask = on }
}

// WithMapOptions passes options through to channels.Map.
func WithMapOptions(opts ...channels.MapOption) MappingOption {
	return func(c *mappingConfig) { c.mapOpts = append(c.mapOpts, opts...) }
}

// MappingDeep1010 projects a dataset's channels onto the canonical scheme,
// normalizes each category to [-1, 1] and writes the scale indicator.
//
// The scale indicator is 2·(min((max−min)/(DataMax−DataMin), 1) − 0.5) over
// the raw trial, so it lies in [-1, 1]. Without a dataset DataRange it is 0.
type MappingDeep1010 struct {
	mapping    *channels.Mapping
	scheme     *channels.Scheme
	dataRange  *Range
	scale      bool
	scaleIdx   int
	returnMask bool
	groups     [][]int // used rows per normalized category
	mask       []bool
	layout     channels.Layout
}

// NewMappingDeep1010 builds the channel mapping for info.Channels once.
//
// Errors:
//   - ErrConfiguration: invalid data range, a scale indicator on a scheme
//     without a scale slot, or any channels.Map error.
//   - A channels.Map failure keeps its own sentinel too: under
//     channels.UnmappedFail, errors.Is matches both ErrConfiguration and
//     channels.ErrUnmappable.
func NewMappingDeep1010(info DatasetInfo, opts ...MappingOption) (*MappingDeep1010, error) {
	cfg := mappingConfig{scheme: channels.Deep1010()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.scheme == nil {
		return nil, fmt.Errorf("NewMappingDeep1010: nil scheme: %w", ErrConfiguration)
	}
	if info.DataRange != nil {
		if err := info.DataRange.Validate(); err != nil {
			return nil, fmt.Errorf("NewMappingDeep1010: %w", err)
		}
	}
	scaleIdx, hasScale := cfg.scheme.ScaleIndex()
	scale := hasScale
	if cfg.scale != nil {
		scale = *cfg.scale
	}
	if scale && !hasScale {
		return nil, fmt.Errorf("NewMappingDeep1010: scheme has no scale slot: %w", ErrConfiguration)
	}

	mp, err := channels.Map(info.Channels, cfg.scheme, cfg.mapOpts...)
	if err != nil {
		return nil, fmt.Errorf("NewMappingDeep1010: %w: %w", ErrConfiguration, err)
	}

	m := &MappingDeep1010{
		mapping:    mp,
		scheme:     cfg.scheme,
		dataRange:  info.DataRange,
		scale:      scale,
		scaleIdx:   scaleIdx,
		returnMask: cfg.returnMask,
		mask:       mp.Used(),
		layout:     mp.Layout(),
	}
	for _, c := range normalizedCategories {
		if rows := mp.UsedIndices(c); len(rows) > 0 {
			m.groups = append(m.groups, rows)
		}
	}
	if scale {
		m.mask[scaleIdx] = true
	}

	return m, nil
}

// Name implements Transform.
func (*MappingDeep1010) Name() string { return "MappingDeep1010" }

// String implements fmt.Stringer.
func (m *MappingDeep1010) String() string {
	return fmt.Sprintf("MappingDeep1010(%d → %d channels, scale %t, mask %t)",
		len(m.mapping.Sources()), m.scheme.Len(), m.scale, m.returnMask)
}

// Mapping returns the underlying channel mapping.
func (m *MappingDeep1010) Mapping() *channels.Mapping { return m.mapping }

// Mask returns a copy of the used-slot mask (scale slot included when enabled).
func (m *MappingDeep1010) Mask() []bool {
	out := make([]bool, len(m.mask))
	copy(out, m.mask)

	return out
}

// NewChannels implements Transform. Slots are named after their contributors.
func (m *MappingDeep1010) NewChannels(channels.Layout) channels.Layout { return m.layout.Clone() }

// NewSequenceLength implements Transform.
func (*MappingDeep1010) NewSequenceLength(old int) int { return old }

// NewSFreq implements Transform.
func (*MappingDeep1010) NewSFreq(old float64) float64 { return old }

// NewFields implements FieldTransform.
func (m *MappingDeep1010) NewFields(old Fields) (Fields, error) {
	if m.returnMask {
		return old | FieldMask, nil
	}

	return old, nil
}

// scaleIndicator relates the trial's dynamic range to the dataset's.
func (m *MappingDeep1010) scaleIndicator(x *matrix.Dense) (float64, error) {
	if m.dataRange == nil {
		return 0, nil
	}
	lo, hi, err := matrix.MinMax(x)
	if err != nil {
		return 0, err
	}
	rel := math.Min((hi-lo)/(m.dataRange.Max-m.dataRange.Min), 1)

	return 2 * (rel - 0.5), nil
}

// Apply implements Transform.
// Errors: ErrShapeMismatch when x does not have one row per dataset channel.
func (m *MappingDeep1010) Apply(x *matrix.Dense, _ *rand.Rand) (*matrix.Dense, error) {
	if err := checkTrial(m.Name(), x); err != nil {
		return nil, err
	}
	y, err := m.mapping.Apply(x)
	if err != nil {
		return nil, transformErrorf(m.Name(), fmt.Errorf("%w: %w", ErrShapeMismatch, err))
	}
	for _, rows := range m.groups {
		if y, err = matrix.NormalizeRowsMinMax(y, rows, -1, 1); err != nil {
			return nil, transformErrorf(m.Name(), err)
		}
	}
	// Unused slots have all-zero weight columns, so their rows are already 0.
	if m.scale {
		s, err := m.scaleIndicator(x)
		if err != nil {
			return nil, transformErrorf(m.Name(), err)
		}
		if err = y.FillRow(m.scaleIdx, s); err != nil {
			return nil, transformErrorf(m.Name(), err)
		}
	}

	return y, nil
}

// ApplyInstance implements InstanceTransform.
func (m *MappingDeep1010) ApplyInstance(in Instance, r *rand.Rand) (Instance, error) {
	y, err := m.Apply(in.Trial, r)
	if err != nil {
		return Instance{}, err
	}
	in.Trial = y
	if m.returnMask {
		in.Mask = m.Mask()
		in.Fields |= FieldMask
	}

	return in, nil
}

type auxConfig struct {
	scheme       *channels.Scheme
	randomize    bool
	purgeMask    bool
	p            float64
	maxIntensity float64
	blankP       float64
	subsetP      float64
}

func defaultAuxConfig() auxConfig {
	return auxConfig{
		scheme:       channels.Deep1010(),
		p:            0.1,
		maxIntensity: 0.3,
		blankP:       1.0,
		subsetP:      0.25,
	}
}

// AuxOption configures the transforms that operate on an already mapped trial.
type AuxOption func(*auxConfig)

// WithTargetScheme sets the scheme the incoming trial was mapped onto
// (default channels.Deep1010()).
func WithTargetScheme(s *channels.Scheme) AuxOption {
	return func(c *auxConfig) { c.scheme = s }
}

// WithRandomize makes MaskAuxiliariesDeep1010 fill with uniform noise in
// [-1, 1] instead of zeros.
func WithRandomize(on bool) AuxOption { return func(c *auxConfig) { c.randomize = on } }

// WithPurgeMask makes NoisyBlankDeep1010 drop the mask field after use.
func WithPurgeMask(on bool) AuxOption { return func(c *auxConfig) { c.purgeMask = on } }

// WithProbability sets the AdditiveEogDeep1010 per-EEG-row selection probability.
func WithProbability(p float64) AuxOption { return func(c *auxConfig) { c.p = p } }

// WithMaxIntensity sets the AdditiveEogDeep1010 upper bound of the mixing weight.
func WithMaxIntensity(v float64) AuxOption { return func(c *auxConfig) { c.maxIntensity = v } }

// WithBlankProbability sets the chance AdditiveEogDeep1010 zeroes an EOG row after mixing.
func WithBlankProbability(p float64) AuxOption { return func(c *auxConfig) { c.blankP = p } }

// WithSubsetProbability sets the chance a selected EEG row receives a given EOG slot.
func WithSubsetProbability(p float64) AuxOption { return func(c *auxConfig) { c.subsetP = p } }

func gatherAux(op string, opts []AuxOption) (auxConfig, error) {
	cfg := defaultAuxConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.scheme == nil {
		return cfg, fmt.Errorf("%s: nil scheme: %w", op, ErrConfiguration)
	}
	for _, p := range []float64{cfg.p, cfg.blankP, cfg.subsetP} {
		if !(p >= 0 && p <= 1) {
			return cfg, fmt.Errorf("%s: probability %v: %w", op, p, ErrConfiguration)
		}
	}
	if !(cfg.maxIntensity >= 0) || math.IsInf(cfg.maxIntensity, 0) {
		return cfg, fmt.Errorf("%s: intensity %v: %w", op, cfg.maxIntensity, ErrConfiguration)
	}

	return cfg, nil
}

// checkMapped requires a trial shaped like the target scheme.
func checkMapped(name string, x *matrix.Dense, s *channels.Scheme) error {
	if err := checkTrial(name, x); err != nil {
		return err
	}
	if x.Rows() != s.Len() {
		return transformErrorf(name, fmt.Errorf("%d rows, scheme has %d slots: %w", x.Rows(), s.Len(), ErrShapeMismatch))
	}

	return nil
}

// fillNoise writes uniform noise in [-1, 1) into row.
func fillNoise(row []float64, r *rand.Rand) {
	for k := range row {
		row[k] = 2*r.Float64() - 1
	}
}

// MaskAuxiliariesDeep1010 blanks the reference, EOG and extra rows of a mapped trial.
type MaskAuxiliariesDeep1010 struct {
	Base
	scheme    *channels.Scheme
	rows      []int
	randomize bool
}

// NewMaskAuxiliariesDeep1010 accepts WithTargetScheme and WithRandomize.
func NewMaskAuxiliariesDeep1010(opts ...AuxOption) (*MaskAuxiliariesDeep1010, error) {
	cfg, err := gatherAux("NewMaskAuxiliariesDeep1010", opts)
	if err != nil {
		return nil, err
	}
	var rows []int
	rows = append(rows, cfg.scheme.Indices(channels.CategoryReference)...)
	rows = append(rows, cfg.scheme.Indices(channels.CategoryEOG)...)
	rows = append(rows, cfg.scheme.Indices(channels.CategoryExtra)...)

	return &MaskAuxiliariesDeep1010{scheme: cfg.scheme, rows: rows, randomize: cfg.randomize}, nil
}

// Name implements Transform.
func (*MaskAuxiliariesDeep1010) Name() string { return "MaskAuxiliariesDeep1010" }

// String implements fmt.Stringer.
func (m *MaskAuxiliariesDeep1010) String() string {
	return fmt.Sprintf("MaskAuxiliariesDeep1010(%d rows, randomize %t)", len(m.rows), m.randomize)
}

// Apply implements Transform. Randomized masking requires r.
func (m *MaskAuxiliariesDeep1010) Apply(x *matrix.Dense, r *rand.Rand) (*matrix.Dense, error) {
	if err := checkMapped(m.Name(), x, m.scheme); err != nil {
		return nil, err
	}
	if m.randomize {
		if err := checkRand(m.Name(), r); err != nil {
			return nil, err
		}
	}
	out := x.CloneDense()
	for _, i := range m.rows {
		row, _ := out.RowSlice(i)
		if m.randomize {
			fillNoise(row, r)
		} else {
			clear(row)
		}
	}

	return out, nil
}

// NoisyBlankDeep1010 replaces the rows the instance mask marks unused with
// uniform noise in [-1, 1]. It needs the mask field, so it only runs on
// Instances.
type NoisyBlankDeep1010 struct {
	Base
	purge bool
}

// NewNoisyBlankDeep1010 accepts WithPurgeMask.
func NewNoisyBlankDeep1010(opts ...AuxOption) (*NoisyBlankDeep1010, error) {
	cfg, err := gatherAux("NewNoisyBlankDeep1010", opts)
	if err != nil {
		return nil, err
	}

	return &NoisyBlankDeep1010{purge: cfg.purgeMask}, nil
}

// Name implements Transform.
func (*NoisyBlankDeep1010) Name() string { return "NoisyBlankDeep1010" }

// String implements fmt.Stringer.
func (n *NoisyBlankDeep1010) String() string {
	return fmt.Sprintf("NoisyBlankDeep1010(purge %t)", n.purge)
}

// NewFields implements FieldTransform.
func (n *NoisyBlankDeep1010) NewFields(old Fields) (Fields, error) {
	if !old.Has(FieldMask) {
		return old, transformErrorf(n.Name(), fmt.Errorf("instances carry %s, need mask: %w", old, ErrConfiguration))
	}
	if n.purge {
		return old &^ FieldMask, nil
	}

	return old, nil
}

// Apply implements Transform. A bare trial has no mask, so this always fails;
// use ApplyInstance.
func (n *NoisyBlankDeep1010) Apply(*matrix.Dense, *rand.Rand) (*matrix.Dense, error) {
	return nil, transformErrorf(n.Name(), fmt.Errorf("needs the instance mask: %w", ErrConfiguration))
}

// ApplyInstance implements InstanceTransform.
func (n *NoisyBlankDeep1010) ApplyInstance(in Instance, r *rand.Rand) (Instance, error) {
	if _, err := n.NewFields(in.Fields); err != nil {
		return Instance{}, err
	}
	if err := in.Validate(); err != nil {
		return Instance{}, transformErrorf(n.Name(), err)
	}
	if err := checkRand(n.Name(), r); err != nil {
		return Instance{}, err
	}
	out := in.Trial.CloneDense()
	for i, used := range in.Mask {
		if used {
			continue
		}
		row, _ := out.RowSlice(i)
		fillNoise(row, r)
	}
	in.Trial = out
	if n.purge {
		in.Mask = nil
		in.Fields &^= FieldMask
	}

	return in, nil
}

// AdditiveEogDeep1010 simulates ocular artifacts: a random subset of EEG rows
// receives a randomly weighted copy of each EOG row, after which the EOG row is
// zeroed with the blank probability.
type AdditiveEogDeep1010 struct {
	Base
	eeg, eog []int
	cfg      auxConfig
}

// NewAdditiveEogDeep1010 accepts WithTargetScheme, WithProbability (0.1),
// WithMaxIntensity (0.3), WithBlankProbability (1.0) and WithSubsetProbability (0.25).
func NewAdditiveEogDeep1010(opts ...AuxOption) (*AdditiveEogDeep1010, error) {
	cfg, err := gatherAux("NewAdditiveEogDeep1010", opts)
	if err != nil {
		return nil, err
	}

	return &AdditiveEogDeep1010{
		eeg: cfg.scheme.Indices(channels.CategoryEEG),
		eog: cfg.scheme.Indices(channels.CategoryEOG),
		cfg: cfg,
	}, nil
}

// Name implements Transform.
func (*AdditiveEogDeep1010) Name() string { return "AdditiveEogDeep1010" }

// String implements fmt.Stringer.
func (a *AdditiveEogDeep1010) String() string {
	return fmt.Sprintf("AdditiveEogDeep1010(p %g, intensity %g, blank %g)", a.cfg.p, a.cfg.maxIntensity, a.cfg.blankP)
}

// Apply implements Transform.
func (a *AdditiveEogDeep1010) Apply(x *matrix.Dense, r *rand.Rand) (*matrix.Dense, error) {
	if err := checkMapped(a.Name(), x, a.cfg.scheme); err != nil {
		return nil, err
	}
	if err := checkRand(a.Name(), r); err != nil {
		return nil, err
	}
	out := x.CloneDense()
	var affected []int
	for _, i := range a.eeg {
		if r.Float64() < a.cfg.p {
			affected = append(affected, i)
		}
	}
	for _, e := range a.eog {
		eogRow, err := out.Row(e)
		if err != nil {
			return nil, transformErrorf(a.Name(), err)
		}
		for _, i := range affected {
			if r.Float64() >= a.cfg.subsetP {
				continue
			}
			if err = matrix.AddScaledRow(out, i, a.cfg.maxIntensity*r.Float64(), eogRow); err != nil {
				return nil, transformErrorf(a.Name(), err)
			}
		}
		if a.cfg.blankP > 0 && (a.cfg.blankP >= 1 || r.Float64() < a.cfg.blankP) {
			if err = out.FillRow(e, 0); err != nil {
				return nil, transformErrorf(a.Name(), err)
			}
		}
	}

	return out, nil
}
