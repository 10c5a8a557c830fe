package gg3d

// LookAt returns a view matrix for a camera at eye looking at target.
//
// The camera basis is right = normalize(forward × up) and
// trueUp = right × forward, with forward = normalize(target - eye). The
// rows of the result are right, trueUp and -forward, each followed by the
// matching translation term, so eye maps to the origin and forward maps to
// -Z.
//
// LookAt is unchecked: eye == target or up parallel to the view direction
// produce NaN entries. Camera.Validate detects both.
func LookAt[F Float](eye, target, up Vec3[F]) Mat4[F] {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	return Mat4[F]{
		right.X, right.Y, right.Z, -right.Dot(eye),
		trueUp.X, trueUp.Y, trueUp.Z, -trueUp.Dot(eye),
		-forward.X, -forward.Y, -forward.Z, forward.Dot(eye),
		0, 0, 0, 1,
	}
}
