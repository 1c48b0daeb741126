package grayfx

import "errors"

// Errors returned by grid, kernel and effect operations.
var (
	// ErrInvalidKernel is returned when a kernel size is even or non-positive,
	// or when the number of weights does not match size*size.
	ErrInvalidKernel = errors.New("grayfx: invalid kernel")

	// ErrOutOfBounds is returned when coordinates fall outside a grid or kernel.
	ErrOutOfBounds = errors.New("grayfx: coordinates out of bounds")

	// ErrInvalidDimensions is returned when width or height is non-positive,
	// or when a sample slice does not hold exactly width*height values.
	ErrInvalidDimensions = errors.New("grayfx: invalid dimensions")

	// ErrUnsupportedEffect is returned by Apply for a nil or unknown effect.
	ErrUnsupportedEffect = errors.New("grayfx: unsupported effect")
)
