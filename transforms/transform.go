package transforms

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/deep1010/channels"
	"github.com/katalvlaran/deep1010/matrix"
)

// Transform is one per-instance tensor operation plus its shape propagation.
// Apply never mutates x.
type Transform interface {
	Name() string
	Apply(x *matrix.Dense, r *rand.Rand) (*matrix.Dense, error)
	NewChannels(old channels.Layout) channels.Layout
	NewSequenceLength(old int) int
	NewSFreq(old float64) float64
}

// InstanceTransform operates on the whole Instance record rather than on the
// trial tensor alone.
type InstanceTransform interface {
	Transform
	ApplyInstance(in Instance, r *rand.Rand) (Instance, error)
}

// FieldTransform changes (or requires) auxiliary Instance fields.
type FieldTransform interface {
	NewFields(old Fields) (Fields, error)
}

// Base supplies identity shape propagation. Embed it and override what changes.
type Base struct{}

// NewChannels returns old unchanged.
func (Base) NewChannels(old channels.Layout) channels.Layout { return old }

// NewSequenceLength returns old unchanged.
func (Base) NewSequenceLength(old int) int { return old }

// NewSFreq returns old unchanged.
func (Base) NewSFreq(old float64) float64 { return old }

// ApplyInstance runs t on in: InstanceTransforms see the full record, plain
// transforms replace the trial only.
func ApplyInstance(t Transform, in Instance, r *rand.Rand) (Instance, error) {
	if it, ok := t.(InstanceTransform); ok {
		return it.ApplyInstance(in, r)
	}
	out, err := t.Apply(in.Trial, r)
	if err != nil {
		return Instance{}, err
	}
	in.Trial = out

	return in, nil
}

// ApplyBatch applies t to every trial of a batch ([batch × channels × samples])
// and returns the transformed batch. The first failure aborts with the item index.
func ApplyBatch(t Transform, batch []*matrix.Dense, r *rand.Rand) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, len(batch))
	for i, x := range batch {
		y, err := t.Apply(x, r)
		if err != nil {
			return nil, fmt.Errorf("ApplyBatch: item %d: %w", i, err)
		}
		out[i] = y
	}

	return out, nil
}

// transformErrorf tags err with the transform name.
func transformErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}

// checkTrial rejects a missing tensor.
func checkTrial(name string, x *matrix.Dense) error {
	if x == nil {
		return transformErrorf(name, fmt.Errorf("nil trial: %w", ErrShapeMismatch))
	}

	return nil
}

// checkRand rejects a missing generator for randomized transforms.
func checkRand(name string, r *rand.Rand) error {
	if r == nil {
		return transformErrorf(name, fmt.Errorf("nil random source: %w", ErrConfiguration))
	}

	return nil
}
