package transforms

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/deep1010/matrix"
)

// ZScore standardizes a trial over all of its values: (x - mean) / std, with
// the sample standard deviation. A constant trial becomes all zeros.
type ZScore struct{ Base }

// NewZScore returns the z-score transform.
func NewZScore() *ZScore { return &ZScore{} }

// Name implements Transform.
func (*ZScore) Name() string { return "ZScore" }

// String implements fmt.Stringer.
func (z *ZScore) String() string { return z.Name() }

// Apply implements Transform.
func (z *ZScore) Apply(x *matrix.Dense, _ *rand.Rand) (*matrix.Dense, error) {
	if err := checkTrial(z.Name(), x); err != nil {
		return nil, err
	}
	y, _, _, err := matrix.ZScore(x)
	if err != nil {
		return nil, transformErrorf(z.Name(), err)
	}

	return y, nil
}

// FixedScale maps the trial's global [min, max] affinely onto [low, high].
// A constant trial becomes all zeros.
type FixedScale struct {
	Base
	low, high float64
}

// NewFixedScale validates low < high (both finite).
func NewFixedScale(low, high float64) (*FixedScale, error) {
	if err := matrix.ValidateRange(low, high); err != nil {
		return nil, fmt.Errorf("NewFixedScale: [%v, %v]: %w", low, high, ErrConfiguration)
	}

	return &FixedScale{low: low, high: high}, nil
}

// Name implements Transform.
func (*FixedScale) Name() string { return "FixedScale" }

// String implements fmt.Stringer.
func (f *FixedScale) String() string { return fmt.Sprintf("FixedScale[%g, %g]", f.low, f.high) }

// Apply implements Transform.
func (f *FixedScale) Apply(x *matrix.Dense, _ *rand.Rand) (*matrix.Dense, error) {
	if err := checkTrial(f.Name(), x); err != nil {
		return nil, err
	}
	y, err := matrix.NormalizeMinMax(x, f.low, f.high)
	if err != nil {
		return nil, transformErrorf(f.Name(), err)
	}

	return y, nil
}
