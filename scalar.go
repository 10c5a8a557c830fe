package gg3d

import "math"

// Float is the scalar constraint shared by every type in gg3d.
// A computation uses a single scalar type throughout; float32 and float64
// values are never mixed.
type Float interface {
	~float32 | ~float64
}

// Radians converts an angle in degrees to radians.
func Radians[F Float](deg F) F {
	return F(float64(deg) * math.Pi / 180)
}

// Degrees converts an angle in radians to degrees.
func Degrees[F Float](rad F) F {
	return F(float64(rad) * 180 / math.Pi)
}

func sqrt[F Float](v F) F {
	return F(math.Sqrt(float64(v)))
}

func abs[F Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}
