package ndarray

import "errors"

// Common errors.
var (
	ErrShapeMismatch  = errors.New("data length does not match layout size")
	ErrAxisNotUnit    = errors.New("axis length is not 1")
	ErrAxisOutOfRange = errors.New("axis out of range")
	ErrOutOfRange     = errors.New("window exceeds array")
)
