package segarray

import "errors"

var (
	// ErrInvalidConfig signals an invalid array configuration.
	ErrInvalidConfig = errors.New("segarray: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("segarray: index out of bounds")
	// ErrCorrupted signals a violated structural invariant, as reported by Check.
	ErrCorrupted = errors.New("segarray: structure corrupted")
)
