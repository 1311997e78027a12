package transforms

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/deep1010/matrix"
)

// PadMode selects how TemporalPadding fills new samples.
type PadMode int

const (
	// PadConstant fills with a fixed value (0 unless WithPadValue).
	PadConstant PadMode = iota
	// PadReflect mirrors the trial around its edge samples, excluding them.
	PadReflect
	// PadReplicate repeats the edge samples.
	PadReplicate
	// PadCircular wraps around to the other end.
	PadCircular
)

var padModeNames = [...]string{"constant", "reflect", "replicate", "circular"}

// String returns the lower-case mode name.
func (m PadMode) String() string {
	if m < 0 || int(m) >= len(padModeNames) {
		return fmt.Sprintf("padmode(%d)", int(m))
	}

	return padModeNames[m]
}

// ParsePadMode resolves a mode name case-insensitively.
func ParsePadMode(s string) (PadMode, error) {
	for i, n := range padModeNames {
		if strings.EqualFold(strings.TrimSpace(s), n) {
			return PadMode(i), nil
		}
	}

	return PadConstant, fmt.Errorf("ParsePadMode: %q: %w", s, ErrConfiguration)
}

type padConfig struct {
	mode  PadMode
	value float64
}

// PadOption configures NewTemporalPadding.
type PadOption func(*padConfig)

// WithPadMode sets the fill mode.
func WithPadMode(m PadMode) PadOption { return func(c *padConfig) { c.mode = m } }

// WithPadValue sets the PadConstant fill value.
func WithPadValue(v float64) PadOption { return func(c *padConfig) { c.value = v } }

// TemporalPadding adds start samples before and end samples after each channel.
type TemporalPadding struct {
	Base
	start, end int
	cfg        padConfig
}

// NewTemporalPadding validates non-negative pad widths, the mode and a finite fill value.
func NewTemporalPadding(start, end int, opts ...PadOption) (*TemporalPadding, error) {
	cfg := padConfig{mode: PadConstant}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if start < 0 || end < 0 {
		return nil, fmt.Errorf("NewTemporalPadding: (%d, %d): %w", start, end, ErrConfiguration)
	}
	if cfg.mode < PadConstant || cfg.mode > PadCircular {
		return nil, fmt.Errorf("NewTemporalPadding: %s: %w", cfg.mode, ErrConfiguration)
	}
	if math.IsNaN(cfg.value) || math.IsInf(cfg.value, 0) {
		return nil, fmt.Errorf("NewTemporalPadding: fill %v: %w", cfg.value, ErrConfiguration)
	}

	return &TemporalPadding{start: start, end: end, cfg: cfg}, nil
}

// Name implements Transform.
func (*TemporalPadding) Name() string { return "TemporalPadding" }

// String implements fmt.Stringer.
func (p *TemporalPadding) String() string {
	return fmt.Sprintf("TemporalPadding(%d, %d, %s)", p.start, p.end, p.cfg.mode)
}

// NewSequenceLength implements Transform.
func (p *TemporalPadding) NewSequenceLength(old int) int { return old + p.start + p.end }

// Apply implements Transform.
//
// Errors:
//   - ErrShapeMismatch: reflect padding wider than n-1 or circular padding
//     wider than n samples.
func (p *TemporalPadding) Apply(x *matrix.Dense, _ *rand.Rand) (*matrix.Dense, error) {
	if err := checkTrial(p.Name(), x); err != nil {
		return nil, err
	}
	rows, n := x.Shape()
	widest := max(p.start, p.end)
	switch {
	case p.cfg.mode == PadReflect && widest > n-1,
		p.cfg.mode == PadCircular && widest > n:
		return nil, transformErrorf(p.Name(),
			fmt.Errorf("%s padding %d on %d samples: %w", p.cfg.mode, widest, n, ErrShapeMismatch))
	}

	width := n + p.start + p.end
	out, err := matrix.NewDense(rows, width)
	if err != nil {
		return nil, transformErrorf(p.Name(), err)
	}
	var src, dst []float64
	for i := 0; i < rows; i++ {
		src, _ = x.RowSlice(i)
		dst, _ = out.RowSlice(i)
		for k := 0; k < width; k++ {
			q := k - p.start
			if q >= 0 && q < n {
				dst[k] = src[q]
				continue
			}
			switch p.cfg.mode {
			case PadConstant:
				dst[k] = p.cfg.value
			case PadReflect:
				if q < 0 {
					dst[k] = src[-q]
				} else {
					dst[k] = src[2*(n-1)-q]
				}
			case PadReplicate:
				dst[k] = src[min(max(q, 0), n-1)]
			case PadCircular:
				dst[k] = src[((q%n)+n)%n]
			}
		}
	}

	return out, nil
}
