package channels

import "errors"

var (
	// ErrConfiguration indicates an invalid or contradictory mapping input,
	// e.g. an empty layout or a malformed scheme.
	ErrConfiguration = errors.New("channels: configuration error")

	// ErrUnmappable is returned by Map under UnmappedFail when a source
	// channel fits in no canonical slot.
	ErrUnmappable = errors.New("channels: unmappable channel")

	// ErrShapeMismatch indicates a tensor whose row count differs from the
	// mapping's source layout.
	ErrShapeMismatch = errors.New("channels: shape mismatch")
)
