package gg3d

import "errors"

// Errors returned by the checked variants of the unchecked hot-path
// operations.
var (
	// ErrZeroLength is returned when normalizing a vector of zero length.
	ErrZeroLength = errors.New("gg3d: vector has zero length")

	// ErrDivideByZero is returned when dividing a vector by zero.
	ErrDivideByZero = errors.New("gg3d: division by zero")

	// ErrInvalidFOV is returned when the field of view is not positive.
	ErrInvalidFOV = errors.New("gg3d: field of view must be positive")

	// ErrInvalidAspect is returned when the aspect ratio is not positive.
	ErrInvalidAspect = errors.New("gg3d: aspect ratio must be positive")

	// ErrInvalidClipPlanes is returned when the near and far planes coincide.
	ErrInvalidClipPlanes = errors.New("gg3d: near and far planes must differ")

	// ErrDegenerateView is returned when eye, target and up do not span a
	// camera basis.
	ErrDegenerateView = errors.New("gg3d: degenerate view (eye equals target or up is parallel to forward)")
)
