package transforms

import "errors"

var (
	// ErrConfiguration indicates invalid or contradictory transform parameters,
	// or a chain whose field schema cannot be satisfied.
	ErrConfiguration = errors.New("transforms: configuration error")

	// ErrShapeMismatch indicates an input whose channel or sample count is
	// incompatible with the transform that received it.
	ErrShapeMismatch = errors.New("transforms: shape mismatch")
)
