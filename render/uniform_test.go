// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/wgpu/hal"
)

func TestNewTransformBuffer(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tb, err := NewTransformBuffer(device, queue)
	if err != nil {
		t.Fatalf("NewTransformBuffer failed: %v", err)
	}
	defer tb.Destroy()

	if tb.Buffer() == nil {
		t.Error("expected non-nil buffer")
	}
	if tb.Size() != 64 {
		t.Errorf("Size() = %d, want 64", tb.Size())
	}
	if !tb.Last().IsIdentity() {
		t.Errorf("Last() before upload = %v, want identity", tb.Last())
	}
	if tb.Uploads() != 0 {
		t.Errorf("Uploads() = %d, want 0", tb.Uploads())
	}
}

func TestNewTransformBuffer_NilDevice(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	if _, err := NewTransformBuffer(nil, queue); !errors.Is(err, ErrNilDevice) {
		t.Errorf("nil device: error = %v, want ErrNilDevice", err)
	}
	if _, err := NewTransformBuffer(device, nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("nil queue: error = %v, want ErrNilDevice", err)
	}
}

func TestNewTransformBufferFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tb, err := NewTransformBufferFromProvider(halHandle{device: device, queue: queue})
	if err != nil {
		t.Fatalf("NewTransformBufferFromProvider failed: %v", err)
	}
	tb.Destroy()

	if _, err := NewTransformBufferFromProvider(NullDeviceHandle{}); !errors.Is(err, ErrNoHalAccess) {
		t.Errorf("null handle: error = %v, want ErrNoHalAccess", err)
	}
}

func TestTransformBuffer_Upload(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tb, err := NewTransformBuffer(device, queue)
	if err != nil {
		t.Fatalf("NewTransformBuffer failed: %v", err)
	}
	defer tb.Destroy()

	m := gg3d.Translation[float32](1, 2, 3)
	if err := tb.Upload(m); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if !tb.Last().Equal(m) {
		t.Errorf("Last() = %v, want %v", tb.Last(), m)
	}
	if tb.Uploads() != 1 {
		t.Errorf("Uploads() = %d, want 1", tb.Uploads())
	}
}

func TestTransformBuffer_UploadCamera(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tb, err := NewTransformBuffer(device, queue)
	if err != nil {
		t.Fatalf("NewTransformBuffer failed: %v", err)
	}
	defer tb.Destroy()

	cam := gg3d.NewCamera(gg3d.WithEye(gg3d.V3[float32](2, 3, 6)))
	if err := tb.UploadCamera(cam); err != nil {
		t.Fatalf("UploadCamera failed: %v", err)
	}
	if !tb.Last().Equal(ClipTransform(cam)) {
		t.Error("UploadCamera should upload ClipTransform(cam)")
	}

	bad := gg3d.NewCamera(gg3d.WithEye(gg3d.Vec3f{}))
	if err := tb.UploadCamera(bad); !errors.Is(err, gg3d.ErrDegenerateView) {
		t.Errorf("degenerate camera: error = %v, want ErrDegenerateView", err)
	}
	if tb.Uploads() != 1 {
		t.Errorf("rejected camera must not be uploaded, Uploads() = %d", tb.Uploads())
	}
}

func TestClipTransform_DepthRange(t *testing.T) {
	cam := gg3d.NewCamera(gg3d.WithClipPlanes[float32](1, 10), gg3d.WithEye(gg3d.V3[float32](0, 0, 0)),
		gg3d.WithTarget(gg3d.V3[float32](0, 0, -1)))
	m := ClipTransform(cam)

	near := m.TransformPoint(gg3d.V3[float32](0, 0, -1))
	far := m.TransformPoint(gg3d.V3[float32](0, 0, -10))
	if math.Abs(float64(near.Z)) > 1e-6 {
		t.Errorf("near plane depth = %v, want 0", near.Z)
	}
	if math.Abs(float64(far.Z)-1) > 1e-6 {
		t.Errorf("far plane depth = %v, want 1", far.Z)
	}
}

func TestTransformBuffer_Destroy(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tb, err := NewTransformBuffer(device, queue)
	if err != nil {
		t.Fatalf("NewTransformBuffer failed: %v", err)
	}

	tb.Destroy()
	tb.Destroy() // idempotent

	if tb.Buffer() != nil {
		t.Error("Buffer() should be nil after Destroy")
	}
	if err := tb.Upload(gg3d.Identity[float32]()); !errors.Is(err, ErrBufferDestroyed) {
		t.Errorf("Upload after Destroy: error = %v, want ErrBufferDestroyed", err)
	}
}

func TestTransformBuffer_WarnsOnNonFinite(t *testing.T) {
	orig := gg3d.Logger()
	t.Cleanup(func() { gg3d.SetLogger(orig) })

	var buf bytes.Buffer
	gg3d.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tb, err := NewTransformBuffer(device, queue)
	if err != nil {
		t.Fatalf("NewTransformBuffer failed: %v", err)
	}
	defer tb.Destroy()

	p := gg3d.V3[float32](1, 1, 1)
	degenerate := gg3d.LookAt(p, p, gg3d.V3[float32](0, 1, 0))
	if err := tb.Upload(degenerate); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if !strings.Contains(buf.String(), "non-finite") {
		t.Errorf("expected a non-finite warning, got: %q", buf.String())
	}
}

func TestTransformBuffer_ConcurrentUpload(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	tb, err := NewTransformBuffer(device, queue)
	if err != nil {
		t.Fatalf("NewTransformBuffer failed: %v", err)
	}
	defer tb.Destroy()

	const goroutines = 16
	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cam := gg3d.NewCamera[float32]().Orbit(float32(i) * 0.1)
			if err := tb.UploadCamera(cam); err != nil {
				t.Errorf("UploadCamera failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if tb.Uploads() != goroutines {
		t.Errorf("Uploads() = %d, want %d", tb.Uploads(), goroutines)
	}
}

// recordingQueue wraps a hal.Queue and captures buffer writes. When err is
// set, every write fails with it.
type recordingQueue struct {
	hal.Queue

	err     error
	offsets []uint64
	writes  [][]byte
}

func (q *recordingQueue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) error {
	if q.err != nil {
		return q.err
	}
	q.offsets = append(q.offsets, offset)
	q.writes = append(q.writes, bytes.Clone(data))
	return nil
}

func TestTransformBuffer_UploadBytes(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	rq := &recordingQueue{Queue: queue}
	tb, err := NewTransformBuffer(device, rq)
	if err != nil {
		t.Fatalf("NewTransformBuffer failed: %v", err)
	}
	defer tb.Destroy()

	m := gg3d.FromRows([4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	if err := tb.Upload(m); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if len(rq.writes) != 1 {
		t.Fatalf("queue received %d writes, want 1", len(rq.writes))
	}
	if rq.offsets[0] != 0 {
		t.Errorf("write offset = %d, want 0", rq.offsets[0])
	}
	got := rq.writes[0]
	if len(got) != TransformUniformSize {
		t.Fatalf("write size = %d, want %d", len(got), TransformUniformSize)
	}
	if !bytes.Equal(got, m.Float32Bytes()) {
		t.Errorf("uploaded bytes differ from Float32Bytes:\n got %v\nwant %v", got, m.Float32Bytes())
	}
	// Element (0, 1) = 2.0 sits in the second word, unchanged row-major.
	if word := binary.LittleEndian.Uint32(got[4:8]); math.Float32frombits(word) != 2 {
		t.Errorf("second word = %v, want 2", math.Float32frombits(word))
	}
}

func TestTransformBuffer_UploadWriteFailure(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	errDeviceLost := errors.New("device lost")
	tb, err := NewTransformBuffer(device, &recordingQueue{Queue: queue, err: errDeviceLost})
	if err != nil {
		t.Fatalf("NewTransformBuffer failed: %v", err)
	}
	defer tb.Destroy()

	m := gg3d.Translation[float32](1, 2, 3)
	if err := tb.Upload(m); !errors.Is(err, errDeviceLost) {
		t.Fatalf("Upload error = %v, want %v", err, errDeviceLost)
	}
	if tb.Uploads() != 0 {
		t.Errorf("Uploads() = %d after a failed write, want 0", tb.Uploads())
	}
	if !tb.Last().IsIdentity() {
		t.Errorf("Last() = %v after a failed write, want identity", tb.Last())
	}

	if err := tb.UploadCamera(gg3d.NewCamera[float32]()); !errors.Is(err, errDeviceLost) {
		t.Errorf("UploadCamera error = %v, want %v", err, errDeviceLost)
	}
	if tb.Uploads() != 0 {
		t.Errorf("Uploads() = %d after a failed camera upload, want 0", tb.Uploads())
	}
}
