// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Device errors.
var (
	// ErrNilDevice is returned when a constructor receives a nil device or queue.
	ErrNilDevice = errors.New("render: device or queue is nil")

	// ErrNoHalAccess is returned when a provider does not expose HAL types.
	ErrNoHalAccess = errors.New("render: provider does not expose hal.Device and hal.Queue")
)

// DeviceHandle provides GPU device access from the host application.
//
// The host application (e.g., gogpu.App) implements DeviceHandle and passes
// it to render, which shares the host's device instead of creating one.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// render-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// It stands in for a host without a GPU; HalFromProvider rejects it.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// HalFromProvider extracts the HAL device and queue from a provider.
// The provider must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue, as gpucontext.HalProvider implementations do.
func HalFromProvider(provider any) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHalAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is %T", ErrNoHalAccess, hp.HalDevice())
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is %T", ErrNoHalAccess, hp.HalQueue())
	}
	return device, queue, nil
}
