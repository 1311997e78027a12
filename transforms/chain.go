package transforms

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/deep1010/matrix"
)

// Chain is an ordered, immutable composition of transforms.
// It checks the auxiliary field schema at construction; whether the order
// makes sense otherwise is up to the caller.
type Chain struct {
	transforms []Transform
	initial    Fields
	final      Fields
}

// NewChain folds every FieldTransform's NewFields over initial.
//
// Errors:
//   - ErrConfiguration: a nil transform, or a transform whose required fields
//     are not produced by the ones before it.
func NewChain(initial Fields, ts ...Transform) (*Chain, error) {
	fields := initial
	for i, t := range ts {
		if t == nil {
			return nil, fmt.Errorf("NewChain: transform %d is nil: %w", i, ErrConfiguration)
		}
		ft, ok := t.(FieldTransform)
		if !ok {
			continue
		}
		next, err := ft.NewFields(fields)
		if err != nil {
			return nil, fmt.Errorf("NewChain: transform %d: %w", i, err)
		}
		fields = next
	}
	c := &Chain{transforms: make([]Transform, len(ts)), initial: initial, final: fields}
	copy(c.transforms, ts)

	return c, nil
}

// Len returns the number of transforms.
func (c *Chain) Len() int { return len(c.transforms) }

// Transforms returns a copy of the transform list.
func (c *Chain) Transforms() []Transform {
	out := make([]Transform, len(c.transforms))
	copy(out, c.transforms)

	return out
}

// Fields returns the field schema of the chain's output.
func (c *Chain) Fields() Fields { return c.final }

// String lists the transforms in order.
func (c *Chain) String() string {
	names := make([]string, len(c.transforms))
	for i, t := range c.transforms {
		if s, ok := t.(fmt.Stringer); ok {
			names[i] = s.String()
		} else {
			names[i] = t.Name()
		}
	}

	return "Chain[" + strings.Join(names, " → ") + "]"
}

// ApplyInstance threads in through every transform in order.
func (c *Chain) ApplyInstance(in Instance, r *rand.Rand) (Instance, error) {
	if in.Fields != c.initial {
		return Instance{}, fmt.Errorf("Chain: instance carries %s, chain built for %s: %w",
			in.Fields, c.initial, ErrConfiguration)
	}
	if err := in.Validate(); err != nil {
		return Instance{}, fmt.Errorf("Chain: %w", err)
	}
	var err error
	for i, t := range c.transforms {
		if in, err = ApplyInstance(t, in, r); err != nil {
			return Instance{}, fmt.Errorf("Chain: step %d: %w", i, err)
		}
	}

	return in, nil
}

// Apply runs the chain on a bare trial. The chain must have been built for
// instances without auxiliary fields.
func (c *Chain) Apply(x *matrix.Dense, r *rand.Rand) (*matrix.Dense, error) {
	out, err := c.ApplyInstance(Instance{Trial: x}, r)
	if err != nil {
		return nil, err
	}

	return out.Trial, nil
}

// ResultingMetadata folds every transform's shape propagation over initial
// without touching any tensor. initial.Fields is replaced by the chain's
// initial schema.
func (c *Chain) ResultingMetadata(initial Metadata) (Metadata, error) {
	md := initial
	md.Fields = c.initial
	var err error
	for i, t := range c.transforms {
		if md, err = Propagate(t, md); err != nil {
			return Metadata{}, fmt.Errorf("Chain: step %d: %w", i, err)
		}
	}

	return md, nil
}
