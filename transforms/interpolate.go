package transforms

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/deep1010/matrix"
)

// Interpolation selects the resampling kernel along the sample axis.
type Interpolation int

const (
	// Nearest picks the source sample at floor(j·in/out).
	Nearest Interpolation = iota
	// Linear blends the two neighbouring samples, treating samples as cell
	// centres (corners not aligned).
	Linear
	// Area averages the source samples overlapped by each output cell.
	Area
)

var interpolationNames = [...]string{"nearest", "linear", "area"}

// String returns the lower-case kernel name.
func (m Interpolation) String() string {
	if m < 0 || int(m) >= len(interpolationNames) {
		return fmt.Sprintf("interpolation(%d)", int(m))
	}

	return interpolationNames[m]
}

// ParseInterpolation resolves a kernel name case-insensitively.
func ParseInterpolation(s string) (Interpolation, error) {
	for i, n := range interpolationNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return Interpolation(i), nil
		}
	}

	return Nearest, fmt.Errorf("ParseInterpolation: %q: %w", s, ErrConfiguration)
}

// resampleConfig is shared by every transform that ends in an interpolation.
type resampleConfig struct {
	mode        Interpolation
	sfreq       float64 // 0: keep
	truncate    float64
	maxAttempts int
}

func defaultResampleConfig() resampleConfig {
	return resampleConfig{mode: Nearest, truncate: math.Inf(1), maxAttempts: DefaultMaxAttempts}
}

func (c *resampleConfig) validate(op string) error {
	if c.mode < Nearest || c.mode > Area {
		return fmt.Errorf("%s: %s: %w", op, c.mode, ErrConfiguration)
	}
	if c.sfreq < 0 || math.IsNaN(c.sfreq) || math.IsInf(c.sfreq, 0) {
		return fmt.Errorf("%s: sfreq %v: %w", op, c.sfreq, ErrConfiguration)
	}

	return nil
}

// ResampleOption configures the interpolating transforms.
type ResampleOption func(*resampleConfig)

// WithInterpolation sets the kernel (default Nearest).
func WithInterpolation(m Interpolation) ResampleOption {
	return func(c *resampleConfig) { c.mode = m }
}

// WithSFreq overrides the sampling frequency reported after resampling.
func WithSFreq(f float64) ResampleOption {
	return func(c *resampleConfig) { c.sfreq = f }
}

// resample interpolates every row of x to length samples.
func resample(x *matrix.Dense, length int, mode Interpolation) (*matrix.Dense, error) {
	rows := x.Rows()
	out, err := matrix.NewDense(rows, length)
	if err != nil {
		return nil, err
	}
	var src, dst []float64
	for i := 0; i < rows; i++ {
		src, _ = x.RowSlice(i)
		dst, _ = out.RowSlice(i)
		resampleRow(dst, src, mode)
	}

	return out, nil
}

func resampleRow(dst, src []float64, mode Interpolation) {
	in, out := len(src), len(dst)
	switch mode {
	case Linear:
		scale := float64(in) / float64(out)
		for j := range dst {
			pos := (float64(j)+0.5)*scale - 0.5
			if pos < 0 {
				pos = 0
			}
			i0 := int(pos)
			if i0 >= in-1 {
				dst[j] = src[in-1]
				continue
			}
			frac := pos - float64(i0)
			dst[j] = (1-frac)*src[i0] + frac*src[i0+1]
		}
	case Area:
		for j := range dst {
			lo := j * in / out
			hi := ((j+1)*in + out - 1) / out
			s := 0.0
			for k := lo; k < hi; k++ {
				s += src[k]
			}
			dst[j] = s / float64(hi-lo)
		}
	default:
		for j := range dst {
			dst[j] = src[min(j*in/out, in-1)]
		}
	}
}

// TemporalInterpolation resamples every channel to a fixed number of samples.
type TemporalInterpolation struct {
	Base
	length int
	cfg    resampleConfig
}

// NewTemporalInterpolation validates a positive target length and the options.
func NewTemporalInterpolation(length int, opts ...ResampleOption) (*TemporalInterpolation, error) {
	cfg := defaultResampleConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if length <= 0 {
		return nil, fmt.Errorf("NewTemporalInterpolation: length %d: %w", length, ErrConfiguration)
	}
	if err := cfg.validate("NewTemporalInterpolation"); err != nil {
		return nil, err
	}

	return &TemporalInterpolation{length: length, cfg: cfg}, nil
}

// Name implements Transform.
func (*TemporalInterpolation) Name() string { return "TemporalInterpolation" }

// String implements fmt.Stringer.
func (t *TemporalInterpolation) String() string {
	return fmt.Sprintf("TemporalInterpolation(%d, %s)", t.length, t.cfg.mode)
}

// NewSequenceLength implements Transform.
func (t *TemporalInterpolation) NewSequenceLength(int) int { return t.length }

// NewSFreq implements Transform.
func (t *TemporalInterpolation) NewSFreq(old float64) float64 {
	if t.cfg.sfreq > 0 {
		return t.cfg.sfreq
	}

	return old
}

// Apply implements Transform.
func (t *TemporalInterpolation) Apply(x *matrix.Dense, _ *rand.Rand) (*matrix.Dense, error) {
	if err := checkTrial(t.Name(), x); err != nil {
		return nil, err
	}
	y, err := resample(x, t.length, t.cfg.mode)
	if err != nil {
		return nil, transformErrorf(t.Name(), err)
	}

	return y, nil
}
