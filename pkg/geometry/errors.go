package geometry

import "errors"

var (
	// ErrZeroLengthVector is returned when an operation needs a direction but got a zero vector
	ErrZeroLengthVector = errors.New("zero length vector")

	// ErrDivideByZero is returned when a vector is divided by a zero scalar
	ErrDivideByZero = errors.New("divide by zero")

	// ErrDegenerateRotation is returned when the inputs do not define a unique rotation
	ErrDegenerateRotation = errors.New("degenerate rotation")

	// ErrInvalidRotationMatrix is returned when a matrix is not a proper rotation
	ErrInvalidRotationMatrix = errors.New("invalid rotation matrix")
)
