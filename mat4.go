package gg3d

import (
	"fmt"
	"math"
	"strings"
)

// Mat4 represents a 4x4 transformation matrix stored in row-major order:
//
//	| m[0]  m[1]  m[2]  m[3]  |
//	| m[4]  m[5]  m[6]  m[7]  |
//	| m[8]  m[9]  m[10] m[11] |
//	| m[12] m[13] m[14] m[15] |
//
// Element (r, c) is m[4*r+c]. The array is exactly the 16 scalars a GPU
// constant buffer receives, with no padding and no reordering.
//
// Vectors are columns: a point p transforms as M * p, so in a product A * B
// the transform B applies first.
//
// The zero value is the zero matrix. Use NewMat4 or Identity for the
// identity.
type Mat4[F Float] [16]F

// Mat4f is a float32 matrix, the layout GPU buffers expect.
type Mat4f = Mat4[float32]

// Mat4d is a float64 matrix.
type Mat4d = Mat4[float64]

// Identity returns the identity transformation matrix.
func Identity[F Float]() Mat4[F] {
	return Mat4[F]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMat4 returns a default-constructed matrix, which is the identity.
func NewMat4[F Float]() Mat4[F] {
	return Identity[F]()
}

// FromRows builds a matrix from four rows.
func FromRows[F Float](rows [4][4]F) Mat4[F] {
	var m Mat4[F]
	for r := range 4 {
		copy(m[4*r:4*r+4], rows[r][:])
	}
	return m
}

// Translation creates a translation matrix.
func Translation[F Float](x, y, z F) Mat4[F] {
	return Mat4[F]{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scaling creates a scaling matrix.
func Scaling[F Float](x, y, z F) Mat4[F] {
	return Mat4[F]{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4[F]) At(r, c int) F {
	return m[4*r+c]
}

// Row returns row r.
func (m Mat4[F]) Row(r int) [4]F {
	return [4]F{m[4*r], m[4*r+1], m[4*r+2], m[4*r+3]}
}

// Col returns column c.
func (m Mat4[F]) Col(c int) [4]F {
	return [4]F{m[c], m[4+c], m[8+c], m[12+c]}
}

// Rows returns the matrix as four rows.
func (m Mat4[F]) Rows() [4][4]F {
	return [4][4]F{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// Array returns the 16 elements in row-major order.
func (m Mat4[F]) Array() [16]F {
	return m
}

// Slice returns a fresh slice of the 16 elements in row-major order.
func (m Mat4[F]) Slice() []F {
	s := make([]F, 16)
	copy(s, m[:])
	return s
}

// Multiply returns m * b.
func (m Mat4[F]) Multiply(b Mat4[F]) Mat4[F] {
	var out Mat4[F]
	for i := range 4 {
		a0, a1, a2, a3 := m[4*i], m[4*i+1], m[4*i+2], m[4*i+3]
		for j := range 4 {
			out[4*i+j] = a0*b[j] + a1*b[4+j] + a2*b[8+j] + a3*b[12+j]
		}
	}
	return out
}

// Mul returns the product a * b.
func Mul[F Float](a, b Mat4[F]) Mat4[F] {
	return a.Multiply(b)
}

// Transpose returns the transpose of m.
func (m Mat4[F]) Transpose() Mat4[F] {
	return Mat4[F]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// MulVec4 returns m * v for a homogeneous column vector v.
func (m Mat4[F]) MulVec4(v [4]F) [4]F {
	var out [4]F
	for r := range 4 {
		out[r] = m[4*r]*v[0] + m[4*r+1]*v[1] + m[4*r+2]*v[2] + m[4*r+3]*v[3]
	}
	return out
}

// TransformPoint applies the transformation to a point (w = 1) and divides
// by the resulting w. Points on the camera plane of a projection give
// infinite components.
func (m Mat4[F]) TransformPoint(p Vec3[F]) Vec3[F] {
	h := m.MulVec4([4]F{p.X, p.Y, p.Z, 1})
	if h[3] == 1 {
		return Vec3[F]{X: h[0], Y: h[1], Z: h[2]}
	}
	return Vec3[F]{X: h[0] / h[3], Y: h[1] / h[3], Z: h[2] / h[3]}
}

// TransformVector applies the transformation to a direction (w = 0, no
// translation).
func (m Mat4[F]) TransformVector(v Vec3[F]) Vec3[F] {
	h := m.MulVec4([4]F{v.X, v.Y, v.Z, 0})
	return Vec3[F]{X: h[0], Y: h[1], Z: h[2]}
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Mat4[F]) IsIdentity() bool {
	return m == Identity[F]()
}

// IsFinite reports whether no element is infinite or NaN.
func (m Mat4[F]) IsFinite() bool {
	for _, e := range m {
		f := float64(e)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Equal reports whether the matrices are exactly equal.
func (m Mat4[F]) Equal(b Mat4[F]) bool {
	return m == b
}

// Approx returns true if every element differs by less than epsilon.
func (m Mat4[F]) Approx(b Mat4[F], epsilon F) bool {
	for i := range m {
		if !(abs(m[i]-b[i]) < epsilon) {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m Mat4[F]) String() string {
	var sb strings.Builder
	for r := range 4 {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", m[4*r], m[4*r+1], m[4*r+2], m[4*r+3])
	}
	return sb.String()
}
