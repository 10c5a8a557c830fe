package gg3d

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector.
//
// The same triple serves as a position or direction (X, Y, Z), a texture
// coordinate (S, T, U) or a color (R, G, B). The role accessors are views of
// the same three fields; there is only one underlying triple.
//
// Div and Normalize are unchecked: dividing by zero or normalizing a zero
// vector yields IEEE-754 infinities or NaN instead of an error. Use
// DivChecked and NormalizeChecked when the input may be degenerate.
type Vec3[F Float] struct {
	X, Y, Z F
}

// Vec3f is a float32 vector, the layout GPU buffers expect.
type Vec3f = Vec3[float32]

// Vec3d is a float64 vector.
type Vec3d = Vec3[float64]

// V3 is a convenience function to create a Vec3.
func V3[F Float](x, y, z F) Vec3[F] {
	return Vec3[F]{X: x, Y: y, Z: z}
}

// Splat returns a vector with all three components set to v.
func Splat[F Float](v F) Vec3[F] {
	return Vec3[F]{X: v, Y: v, Z: v}
}

// S returns the first component viewed as a texture coordinate.
func (v Vec3[F]) S() F { return v.X }

// T returns the second component viewed as a texture coordinate.
func (v Vec3[F]) T() F { return v.Y }

// U returns the third component viewed as a texture coordinate.
func (v Vec3[F]) U() F { return v.Z }

// R returns the first component viewed as a color channel.
func (v Vec3[F]) R() F { return v.X }

// G returns the second component viewed as a color channel.
func (v Vec3[F]) G() F { return v.Y }

// B returns the third component viewed as a color channel.
func (v Vec3[F]) B() F { return v.Z }

// At returns the i'th component. It panics if i is not 0, 1 or 2.
func (v Vec3[F]) At(i int) F {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("gg3d: Vec3 index %d out of range [0, 3)", i))
}

// Array returns the components as an array in X, Y, Z order.
func (v Vec3[F]) Array() [3]F {
	return [3]F{v.X, v.Y, v.Z}
}

// Add returns the sum of two vectors.
func (v Vec3[F]) Add(w Vec3[F]) Vec3[F] {
	return Vec3[F]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3[F]) Sub(w Vec3[F]) Vec3[F] {
	return Vec3[F]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec3[F]) Scale(s F) Vec3[F] {
	return Vec3[F]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar.
// Dividing by zero yields infinite or NaN components.
func (v Vec3[F]) Div(s F) Vec3[F] {
	return Vec3[F]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// DivChecked is like Div but returns ErrDivideByZero when s is zero.
func (v Vec3[F]) DivChecked(s F) (Vec3[F], error) {
	if s == 0 {
		return Vec3[F]{}, ErrDivideByZero
	}
	return v.Div(s), nil
}

// Neg returns the negation of the vector.
func (v Vec3[F]) Neg() Vec3[F] {
	return Vec3[F]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Equal reports whether the vectors are exactly equal, component by
// component. There is no tolerance; use Approx for computed values.
func (v Vec3[F]) Equal(w Vec3[F]) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}

// Dot returns the dot product of two vectors.
func (v Vec3[F]) Dot(w Vec3[F]) F {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
func (v Vec3[F]) Cross(w Vec3[F]) Vec3[F] {
	return Vec3[F]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3[F]) Length() F {
	return sqrt(v.Dot(v))
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec3[F]) LengthSq() F {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// A zero vector yields NaN components.
func (v Vec3[F]) Normalize() Vec3[F] {
	return v.Div(v.Length())
}

// NormalizeChecked is like Normalize but returns ErrZeroLength when the
// vector has zero length.
func (v Vec3[F]) NormalizeChecked() (Vec3[F], error) {
	l := v.Length()
	if l == 0 {
		return Vec3[F]{}, ErrZeroLength
	}
	return v.Div(l), nil
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vec3[F]) Lerp(w Vec3[F], t F) Vec3[F] {
	return Vec3[F]{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec3[F]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is infinite or NaN.
func (v Vec3[F]) IsFinite() bool {
	for _, c := range v.Array() {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3[F]) Approx(w Vec3[F], epsilon F) bool {
	return abs(v.X-w.X) < epsilon && abs(v.Y-w.Y) < epsilon && abs(v.Z-w.Z) < epsilon
}

// String implements fmt.Stringer.
func (v Vec3[F]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v1 and v2.
func Dot[F Float](v1, v2 Vec3[F]) F {
	return v1.Dot(v2)
}

// Cross returns the right-handed cross product v1 × v2.
func Cross[F Float](v1, v2 Vec3[F]) Vec3[F] {
	return v1.Cross(v2)
}

// Length returns the length of v.
func Length[F Float](v Vec3[F]) F {
	return v.Length()
}

// Normalize returns v scaled to unit length. It is unchecked; see
// Vec3.Normalize.
func Normalize[F Float](v Vec3[F]) Vec3[F] {
	return v.Normalize()
}
