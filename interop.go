package gg3d

import "golang.org/x/image/math/f32"

// F32 converts the vector to an x/image f32.Vec3.
func (v Vec3[F]) F32() f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// F32 converts the matrix to an x/image f32.Mat4. Both types are row-major,
// so the elements keep their order.
func (m Mat4[F]) F32() f32.Mat4 {
	var out f32.Mat4
	for i, e := range m {
		out[i] = float32(e)
	}
	return out
}

// Vec3FromF32 converts an x/image f32.Vec3.
func Vec3FromF32[F Float](v f32.Vec3) Vec3[F] {
	return Vec3[F]{X: F(v[0]), Y: F(v[1]), Z: F(v[2])}
}

// Mat4FromF32 converts an x/image f32.Mat4.
func Mat4FromF32[F Float](m f32.Mat4) Mat4[F] {
	var out Mat4[F]
	for i, e := range m {
		out[i] = F(e)
	}
	return out
}
