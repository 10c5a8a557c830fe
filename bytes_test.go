package gg3d

import (
	"encoding/binary"
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func decodeFloat32s(t *testing.T, data []byte) []float32 {
	t.Helper()
	if len(data)%4 != 0 {
		t.Fatalf("byte length %d is not a multiple of 4", len(data))
	}
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}

func TestMat4_Float32Bytes(t *testing.T) {
	m := FromRows([4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})

	data := m.Float32Bytes()
	if len(data) != Mat4Float32Size {
		t.Fatalf("len = %d, want %d", len(data), Mat4Float32Size)
	}
	for i, v := range decodeFloat32s(t, data) {
		if v != m[i] {
			t.Errorf("element %d = %v, want %v (row-major, unpadded)", i, v, m[i])
		}
	}

	// The translation column of a translation matrix lands at bytes 12, 28, 44.
	tr := Translation(7.0, 8.0, 9.0).Float32Bytes()
	got := decodeFloat32s(t, tr)
	if got[3] != 7 || got[7] != 8 || got[11] != 9 {
		t.Errorf("translation elements = %v, %v, %v, want 7, 8, 9", got[3], got[7], got[11])
	}
}

func TestMat4_AppendFloat32Bytes(t *testing.T) {
	prefix := []byte{0xAA, 0xBB}
	out := Identity[float64]().AppendFloat32Bytes(prefix)
	if len(out) != 2+Mat4Float32Size {
		t.Fatalf("len = %d, want %d", len(out), 2+Mat4Float32Size)
	}
	if out[0] != 0xAA || out[1] != 0xBB {
		t.Error("prefix was overwritten")
	}
	vals := decodeFloat32s(t, out[2:])
	if vals[0] != 1 || vals[5] != 1 || vals[10] != 1 || vals[15] != 1 || vals[1] != 0 {
		t.Errorf("identity narrowed to float32 = %v", vals)
	}
}

func TestVec3_AppendFloat32Bytes(t *testing.T) {
	vals := decodeFloat32s(t, V3(1.5, -2.0, 0.25).AppendFloat32Bytes(nil))
	if len(vals) != 3 || vals[0] != 1.5 || vals[1] != -2 || vals[2] != 0.25 {
		t.Errorf("decoded = %v, want [1.5 -2 0.25]", vals)
	}
}

func TestF32Interop(t *testing.T) {
	m := Translation[float64](1, 2, 3)
	fm := m.F32()
	// x/image documents f32.Mat4 as row-major: m[4*r+c].
	if fm[3] != 1 || fm[7] != 2 || fm[11] != 3 {
		t.Errorf("F32() translation = %v, %v, %v", fm[3], fm[7], fm[11])
	}
	if back := Mat4FromF32[float64](fm); !back.Equal(m) {
		t.Errorf("Mat4FromF32(F32()) = %v, want %v", back, m)
	}

	v := V3[float32](0.5, 1, 2)
	if fv := v.F32(); fv != (f32.Vec3{0.5, 1, 2}) {
		t.Errorf("F32() = %v", fv)
	}
	if back := Vec3FromF32[float32](f32.Vec3{4, 5, 6}); !back.Equal(V3[float32](4, 5, 6)) {
		t.Errorf("Vec3FromF32 = %v", back)
	}
}
