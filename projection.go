package gg3d

import (
	"fmt"
	"math"
)

// Perspective returns a right-handed perspective projection matrix.
//
// fovDegrees is the vertical field of view in degrees and aspect is
// width/height. The camera looks down -Z and clip-space depth spans [-1, 1]
// (near maps to -1, far to +1). Multiply by DepthZeroToOne for APIs whose
// depth range is [0, 1].
//
// fovDegrees and aspect must be positive; Perspective panics otherwise.
// Use PerspectiveChecked to get an error instead.
func Perspective[F Float](fovDegrees, aspect, near, far F) Mat4[F] {
	if !(fovDegrees > 0) {
		panic(fmt.Errorf("%w: got %v", ErrInvalidFOV, fovDegrees))
	}
	if !(aspect > 0) {
		panic(fmt.Errorf("%w: got %v", ErrInvalidAspect, aspect))
	}
	return perspective(fovDegrees, aspect, near, far)
}

// PerspectiveChecked is like Perspective but reports invalid parameters as
// an error. It also rejects near == far, which Perspective lets through as
// infinite depth terms.
func PerspectiveChecked[F Float](fovDegrees, aspect, near, far F) (Mat4[F], error) {
	if err := checkProjection(fovDegrees, aspect, near, far); err != nil {
		return Mat4[F]{}, err
	}
	return perspective(fovDegrees, aspect, near, far), nil
}

func checkProjection[F Float](fovDegrees, aspect, near, far F) error {
	if !(fovDegrees > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidFOV, fovDegrees)
	}
	if !(aspect > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidAspect, aspect)
	}
	if near == far {
		return fmt.Errorf("%w: near = far = %v", ErrInvalidClipPlanes, near)
	}
	return nil
}

func perspective[F Float](fovDegrees, aspect, near, far F) Mat4[F] {
	rad := float64(Radians(fovDegrees))
	a := F(1 / math.Tan(rad/2))
	return Mat4[F]{
		a / aspect, 0, 0, 0,
		0, a, 0, 0,
		0, 0, (near + far) / (near - far), 2 * near * far / (near - far),
		0, 0, -1, 0,
	}
}

// DepthZeroToOne returns the matrix that remaps clip-space depth from
// [-1, 1] to [0, 1] (z' = z/2 + w/2). Pre-multiply a Perspective matrix by
// it before handing the result to WebGPU, Vulkan, Metal or D3D.
func DepthZeroToOne[F Float]() Mat4[F] {
	return Mat4[F]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0.5, 0.5,
		0, 0, 0, 1,
	}
}
