package gg3d

import (
	"encoding/binary"
	"math"
)

// Mat4Float32Size is the byte size of a matrix packed by Float32Bytes.
const Mat4Float32Size = 16 * 4

// AppendFloat32Bytes appends the 16 elements as little-endian float32 values
// in row-major order and returns the extended slice. There is no padding.
// float64 matrices are narrowed to float32.
func (m Mat4[F]) AppendFloat32Bytes(dst []byte) []byte {
	for _, e := range m {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(e)))
	}
	return dst
}

// Float32Bytes returns the matrix as Mat4Float32Size bytes ready for a
// uniform or constant buffer upload.
func (m Mat4[F]) Float32Bytes() []byte {
	return m.AppendFloat32Bytes(make([]byte, 0, Mat4Float32Size))
}

// AppendFloat32Bytes appends X, Y and Z as little-endian float32 values.
func (v Vec3[F]) AppendFloat32Bytes(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v.X)))
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v.Y)))
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v.Z)))
}
