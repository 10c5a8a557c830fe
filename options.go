package gg3d

// CameraOption configures a Camera during creation.
// Use functional options to customize the defaults.
//
// Example:
//
//	// Default camera: eye (0,0,5) looking at the origin, 60° FOV
//	cam := gg3d.NewCamera[float32]()
//
//	// Wide-screen camera with a custom position
//	cam := gg3d.NewCamera(
//	    gg3d.WithEye(gg3d.V3[float32](3, 2, 6)),
//	    gg3d.WithAspect[float32](16.0/9.0),
//	)
type CameraOption[F Float] func(*Camera[F])

// defaultCamera returns the camera NewCamera starts from.
func defaultCamera[F Float]() Camera[F] {
	return Camera[F]{
		Eye:    V3[F](0, 0, 5),
		Target: Vec3[F]{},
		Up:     V3[F](0, 1, 0),
		FOV:    60,
		Aspect: 1,
		Near:   0.1,
		Far:    100,
	}
}

// WithEye sets the camera position.
func WithEye[F Float](eye Vec3[F]) CameraOption[F] {
	return func(c *Camera[F]) {
		c.Eye = eye
	}
}

// WithTarget sets the point the camera looks at.
func WithTarget[F Float](target Vec3[F]) CameraOption[F] {
	return func(c *Camera[F]) {
		c.Target = target
	}
}

// WithUp sets the approximate up direction. It does not need to be
// orthogonal to the view direction, only not parallel to it.
func WithUp[F Float](up Vec3[F]) CameraOption[F] {
	return func(c *Camera[F]) {
		c.Up = up
	}
}

// WithFOV sets the vertical field of view in degrees.
func WithFOV[F Float](degrees F) CameraOption[F] {
	return func(c *Camera[F]) {
		c.FOV = degrees
	}
}

// WithAspect sets the viewport aspect ratio (width / height).
//
// Example:
//
//	cam := gg3d.NewCamera(gg3d.WithAspect[float32](float32(w) / float32(h)))
func WithAspect[F Float](aspect F) CameraOption[F] {
	return func(c *Camera[F]) {
		c.Aspect = aspect
	}
}

// WithClipPlanes sets the near and far clip distances.
func WithClipPlanes[F Float](near, far F) CameraOption[F] {
	return func(c *Camera[F]) {
		c.Near = near
		c.Far = far
	}
}
