package gg3d

import (
	"fmt"
	"math"
)

// Camera bundles a look-at view with perspective projection parameters.
//
// Camera is a plain value: methods never modify the receiver, and copies
// are independent.
type Camera[F Float] struct {
	Eye, Target, Up Vec3[F]

	// FOV is the vertical field of view in degrees.
	FOV F

	// Aspect is width / height.
	Aspect F

	Near, Far F
}

// NewCamera returns a camera with default parameters modified by opts.
func NewCamera[F Float](opts ...CameraOption[F]) Camera[F] {
	c := defaultCamera[F]()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// View returns the look-at view matrix.
func (c Camera[F]) View() Mat4[F] {
	return LookAt(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective projection matrix.
// It panics under the same conditions as Perspective.
func (c Camera[F]) Projection() Mat4[F] {
	return Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c Camera[F]) ViewProjection() Mat4[F] {
	return c.Projection().Multiply(c.View())
}

// Validate reports whether the camera produces finite matrices.
func (c Camera[F]) Validate() error {
	if err := checkProjection(c.FOV, c.Aspect, c.Near, c.Far); err != nil {
		return err
	}
	forward, err := c.Target.Sub(c.Eye).NormalizeChecked()
	if err != nil {
		return fmt.Errorf("%w: eye = target = %v", ErrDegenerateView, c.Eye)
	}
	if _, err := forward.Cross(c.Up).NormalizeChecked(); err != nil {
		return fmt.Errorf("%w: up %v is parallel to forward %v", ErrDegenerateView, c.Up, forward)
	}
	return nil
}

// Orbit returns a copy of the camera with the eye rotated by yaw radians
// around the vertical axis through the target. Positive yaw turns
// counter-clockwise when seen from above.
func (c Camera[F]) Orbit(yaw F) Camera[F] {
	sin, cos := math.Sincos(float64(yaw))
	s, co := F(sin), F(cos)
	d := c.Eye.Sub(c.Target)
	c.Eye = c.Target.Add(Vec3[F]{
		X: d.X*co + d.Z*s,
		Y: d.Y,
		Z: -d.X*s + d.Z*co,
	})
	return c
}
