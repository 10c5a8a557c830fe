// Package gg3d provides the small linear-algebra kernel behind 3D rendering
// with gogpu.
//
// # Overview
//
// gg3d has two value types, Vec3 and Mat4, generic over a single scalar
// type (float32 or float64), and the builders a renderer needs every frame:
// Perspective for the projection matrix and LookAt for the view matrix.
// Every operation is a pure function of its arguments, so any of them may
// be called concurrently without synchronization.
//
// # Quick Start
//
//	import "github.com/gogpu/gg3d"
//
//	proj := gg3d.Perspective[float32](60, 16.0/9.0, 0.1, 100)
//	view := gg3d.LookAt(
//	    gg3d.V3[float32](0, 0, 5), // eye
//	    gg3d.V3[float32](0, 0, 0), // target
//	    gg3d.V3[float32](0, 1, 0), // up
//	)
//	mvp := proj.Multiply(view)
//
//	// 64 bytes, row-major, ready for a uniform buffer
//	data := mvp.Float32Bytes()
//
// # Conventions
//
//   - Matrices are row-major: element (r, c) is m[4*r+c].
//   - Vectors are columns: M * p transforms p, A * B applies B first.
//   - View space is right-handed with the camera looking down -Z.
//   - Perspective maps depth to [-1, 1]. DepthZeroToOne converts to the
//     [0, 1] range used by WebGPU; the render package applies it.
//
// # Unchecked Operations
//
// Vec3.Div, Vec3.Normalize and LookAt never return errors: degenerate input
// (division by zero, a zero-length vector, eye == target) yields IEEE-754
// infinities or NaN that propagate through later products. This keeps the
// per-frame path free of error handling. DivChecked, NormalizeChecked,
// PerspectiveChecked and Camera.Validate report the same conditions as
// errors for code that cannot trust its input.
//
// Perspective panics when the field of view or aspect ratio is not
// positive: these are programming errors, not runtime conditions.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Vec3, Mat4, Perspective, LookAt, Camera
//   - render: uniform buffer upload and the transform shader on gogpu/wgpu
//   - cmd/gg3ddemo: CLI that prints matrices and renders a wireframe PNG
//   - examples/wireframe: interactive orbiting wireframe (ebiten)
package gg3d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
