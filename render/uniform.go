// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ErrBufferDestroyed is returned when uploading to a destroyed buffer.
var ErrBufferDestroyed = errors.New("render: transform buffer has been destroyed")

// TransformUniformSize is the byte size of the transform uniform:
// one mat4x4<f32>, 16 row-major float32 values, no padding.
const TransformUniformSize = gg3d.Mat4Float32Size

// TransformBuffer is a GPU uniform buffer holding one 4x4 transform.
//
// The matrix is uploaded exactly as gg3d lays it out in memory (row-major
// float32). The transform shader accounts for WGSL reading the buffer
// column-major.
//
// Thread Safety:
// TransformBuffer is safe for concurrent use. Upload and Destroy are
// serialized by a mutex.
//
// Lifecycle:
//  1. Create via NewTransformBuffer()
//  2. Upload() or UploadCamera() once per frame
//  3. Bind Buffer() at group 0, binding 0 of the transform shader
//  4. Call Destroy() when the buffer is no longer needed
type TransformBuffer struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	// buffer is nil after Destroy.
	buffer hal.Buffer

	last    gg3d.Mat4f
	uploads uint64
}

// NewTransformBuffer creates the uniform buffer on device. Uploads go
// through queue.
func NewTransformBuffer(device hal.Device, queue hal.Queue) (*TransformBuffer, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gg3d_transform",
		Size:  TransformUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create transform buffer: %w", err)
	}
	gg3d.Logger().Info("render: transform buffer created", "size", TransformUniformSize)

	return &TransformBuffer{
		device: device,
		queue:  queue,
		buffer: buf,
		last:   gg3d.Identity[float32](),
	}, nil
}

// NewTransformBufferFromProvider is like NewTransformBuffer but takes the
// device and queue from a host provider. See HalFromProvider.
func NewTransformBufferFromProvider(provider DeviceHandle) (*TransformBuffer, error) {
	device, queue, err := HalFromProvider(provider)
	if err != nil {
		return nil, err
	}
	return NewTransformBuffer(device, queue)
}

// Upload writes m to the buffer unchanged. Last and Uploads only change
// when the queue accepts the write.
//
// Non-finite matrices (from degenerate LookAt input, for example) are
// uploaded as-is and logged at warn level.
func (b *TransformBuffer) Upload(m gg3d.Mat4f) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.buffer == nil {
		return ErrBufferDestroyed
	}
	if !m.IsFinite() {
		gg3d.Logger().Warn("render: uploading non-finite transform", "matrix", m.String())
	}

	if err := b.queue.WriteBuffer(b.buffer, 0, m.Float32Bytes()); err != nil {
		return fmt.Errorf("render: upload transform: %w", err)
	}
	b.last = m
	b.uploads++
	gg3d.Logger().Debug("render: transform uploaded", "uploads", b.uploads)
	return nil
}

// UploadCamera validates c and uploads ClipTransform(c).
func (b *TransformBuffer) UploadCamera(c gg3d.Camera[float32]) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("render: upload camera: %w", err)
	}
	return b.Upload(ClipTransform(c))
}

// ClipTransform returns the camera's view-projection matrix with depth
// remapped to the [0, 1] clip range WebGPU uses.
func ClipTransform(c gg3d.Camera[float32]) gg3d.Mat4f {
	return gg3d.DepthZeroToOne[float32]().Multiply(c.ViewProjection())
}

// Buffer returns the underlying HAL buffer, or nil after Destroy.
func (b *TransformBuffer) Buffer() hal.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer
}

// Size returns the buffer size in bytes.
func (b *TransformBuffer) Size() uint64 {
	return TransformUniformSize
}

// Last returns the most recently uploaded matrix. Before the first upload
// it is the identity.
func (b *TransformBuffer) Last() gg3d.Mat4f {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// Uploads returns the number of successful uploads.
func (b *TransformBuffer) Uploads() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.uploads
}

// Destroy releases the GPU buffer. It is safe to call more than once.
func (b *TransformBuffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.buffer == nil {
		return
	}
	b.device.DestroyBuffer(b.buffer)
	b.buffer = nil
}
