package transforms

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/deep1010/matrix"
)

// DefaultMaxAttempts bounds the truncated-normal draw of CropAndResample.
const DefaultMaxAttempts = 100

// WithTruncate limits the CropAndResample crop length to target ± t samples
// (default unbounded). Ignored by the other interpolating transforms.
func WithTruncate(t float64) ResampleOption {
	return func(c *resampleConfig) { c.truncate = t }
}

// WithMaxAttempts bounds the CropAndResample rejection sampler (default
// DefaultMaxAttempts). Ignored by the other interpolating transforms.
func WithMaxAttempts(n int) ResampleOption {
	return func(c *resampleConfig) { c.maxAttempts = n }
}

// cropTo returns the first n samples of every row, interpolated to length.
func cropTo(x *matrix.Dense, n, length int, mode Interpolation) (*matrix.Dense, error) {
	cropped, err := x.Columns(0, n)
	if err != nil {
		return nil, err
	}

	return resample(cropped, length, mode)
}

// CropAndUpSample keeps a random-length prefix of the trial and stretches it
// back to the original length. The crop length is uniform in
// [cropMin, originalLength].
type CropAndUpSample struct {
	Base
	length, cropMin int
	cfg             resampleConfig
}

// NewCropAndUpSample validates 1 <= cropMin <= originalLength.
func NewCropAndUpSample(originalLength, cropMin int, opts ...ResampleOption) (*CropAndUpSample, error) {
	cfg := defaultResampleConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cropMin < 1 || cropMin > originalLength {
		return nil, fmt.Errorf("NewCropAndUpSample: crop %d of %d: %w", cropMin, originalLength, ErrConfiguration)
	}
	if err := cfg.validate("NewCropAndUpSample"); err != nil {
		return nil, err
	}

	return &CropAndUpSample{length: originalLength, cropMin: cropMin, cfg: cfg}, nil
}

// Name implements Transform.
func (*CropAndUpSample) Name() string { return "CropAndUpSample" }

// String implements fmt.Stringer.
func (c *CropAndUpSample) String() string {
	return fmt.Sprintf("CropAndUpSample(%d, min %d, %s)", c.length, c.cropMin, c.cfg.mode)
}

// Apply implements Transform.
//
// Errors:
//   - ErrShapeMismatch: x does not have originalLength samples.
//   - ErrConfiguration: nil r.
func (c *CropAndUpSample) Apply(x *matrix.Dense, r *rand.Rand) (*matrix.Dense, error) {
	if err := checkTrial(c.Name(), x); err != nil {
		return nil, err
	}
	if err := checkRand(c.Name(), r); err != nil {
		return nil, err
	}
	if x.Cols() != c.length {
		return nil, transformErrorf(c.Name(), fmt.Errorf("%d samples, want %d: %w", x.Cols(), c.length, ErrShapeMismatch))
	}
	n := c.cropMin + r.IntN(c.length-c.cropMin+1)
	y, err := cropTo(x, n, c.length, c.cfg.mode)
	if err != nil {
		return nil, transformErrorf(c.Name(), err)
	}

	return y, nil
}

// CropAndResample keeps a prefix whose length is drawn from a normal
// distribution centred on the target, truncated to target ± truncate, and
// resamples it to exactly target samples.
type CropAndResample struct {
	Base
	target int
	stdev  float64
	cfg    resampleConfig
}

// NewCropAndResample validates a positive target and stdev, a positive
// truncate and a positive attempt budget.
func NewCropAndResample(target int, stdev float64, opts ...ResampleOption) (*CropAndResample, error) {
	cfg := defaultResampleConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	switch {
	case target <= 0:
		return nil, fmt.Errorf("NewCropAndResample: target %d: %w", target, ErrConfiguration)
	case !(stdev > 0) || math.IsInf(stdev, 0):
		return nil, fmt.Errorf("NewCropAndResample: stdev %v: %w", stdev, ErrConfiguration)
	case !(cfg.truncate > 0):
		return nil, fmt.Errorf("NewCropAndResample: truncate %v: %w", cfg.truncate, ErrConfiguration)
	case cfg.maxAttempts <= 0:
		return nil, fmt.Errorf("NewCropAndResample: %d attempts: %w", cfg.maxAttempts, ErrConfiguration)
	}
	if err := cfg.validate("NewCropAndResample"); err != nil {
		return nil, err
	}

	return &CropAndResample{target: target, stdev: stdev, cfg: cfg}, nil
}

// Name implements Transform.
func (*CropAndResample) Name() string { return "CropAndResample" }

// String implements fmt.Stringer.
func (c *CropAndResample) String() string {
	return fmt.Sprintf("CropAndResample(%d ± %g, truncate %g, %s)", c.target, c.stdev, c.cfg.truncate, c.cfg.mode)
}

// NewSequenceLength implements Transform.
func (c *CropAndResample) NewSequenceLength(int) int { return c.target }

// NewSFreq implements Transform.
func (c *CropAndResample) NewSFreq(old float64) float64 {
	if c.cfg.sfreq > 0 {
		return c.cfg.sfreq
	}

	return old
}

// drawLength rejection-samples a crop length in [1, n] within maxDiff of the
// target. It gives up after the attempt budget.
func (c *CropAndResample) drawLength(n int, r *rand.Rand) (int, error) {
	maxDiff := math.Min(float64(n-c.target), c.cfg.truncate)
	for range c.cfg.maxAttempts {
		v := int(math.Round(float64(c.target) + c.stdev*r.NormFloat64()))
		if math.Abs(float64(v-c.target)) <= maxDiff && v >= 1 && v <= n {
			return v, nil
		}
	}

	return 0, fmt.Errorf("no crop length within %g of %d after %d draws: %w",
		maxDiff, c.target, c.cfg.maxAttempts, ErrConfiguration)
}

// Apply implements Transform.
//
// Errors:
//   - ErrShapeMismatch: x is not longer than the target.
//   - ErrConfiguration: nil r, or the draw exhausted its attempts.
func (c *CropAndResample) Apply(x *matrix.Dense, r *rand.Rand) (*matrix.Dense, error) {
	if err := checkTrial(c.Name(), x); err != nil {
		return nil, err
	}
	if err := checkRand(c.Name(), r); err != nil {
		return nil, err
	}
	n := x.Cols()
	if n <= c.target {
		return nil, transformErrorf(c.Name(), fmt.Errorf("%d samples for target %d: %w", n, c.target, ErrShapeMismatch))
	}
	v, err := c.drawLength(n, r)
	if err != nil {
		return nil, transformErrorf(c.Name(), err)
	}
	y, err := cropTo(x, v, c.target, c.cfg.mode)
	if err != nil {
		return nil, transformErrorf(c.Name(), err)
	}

	return y, nil
}
