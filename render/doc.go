// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render moves gg3d matrices onto the GPU through gogpu/wgpu.
//
// # Key Principle
//
// render RECEIVES a GPU device from the host application, it does NOT
// create its own. The host (e.g. gogpu.App) passes a DeviceHandle, or the
// hal.Device and hal.Queue directly, and render allocates only the
// resources it uploads into.
//
// # Components
//
//   - TransformBuffer: a 64-byte uniform buffer holding one row-major
//     float32 matrix, uploaded byte-for-byte from gg3d.Mat4f.
//   - Transform shader: a WGSL vertex/fragment pair that reads the uniform,
//     compiled to SPIR-V with naga.
//   - DeviceHandle: the gpucontext.DeviceProvider the host implements.
//
// # Depth Convention
//
// gg3d.Perspective maps depth to [-1, 1]. WebGPU clips depth to [0, 1], so
// ClipTransform and TransformBuffer.UploadCamera pre-multiply the
// view-projection matrix by gg3d.DepthZeroToOne. Matrices passed to
// TransformBuffer.Upload are sent unchanged.
//
// # Usage
//
//	device, queue, err := render.HalFromProvider(gc.DeviceHandle())
//	if err != nil {
//	    return err
//	}
//	tb, err := render.NewTransformBuffer(device, queue)
//	if err != nil {
//	    return err
//	}
//	defer tb.Destroy()
//
//	cam := gg3d.NewCamera(gg3d.WithAspect[float32](16.0 / 9.0))
//	if err := tb.UploadCamera(cam); err != nil {
//	    return err
//	}
package render
