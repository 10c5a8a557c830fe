// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// TransformShaderWGSL is the vertex/fragment shader that consumes a
// TransformBuffer at group 0, binding 0. Vertices carry a position and a
// color at locations 0 and 1.
//
// The uniform holds a row-major matrix M. WGSL reads matrices column by
// column, so the shader sees M transposed; multiplying the vector on the
// left (p * M^T == (M * p)^T) applies M without reordering the buffer.
const TransformShaderWGSL = `
struct Transform {
    mvp: mat4x4<f32>,
};

@group(0) @binding(0) var<uniform> transform: Transform;

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) color: vec3<f32>,
};

struct VertexOutput {
    @builtin(position) clip: vec4<f32>,
    @location(0) color: vec3<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip = vec4<f32>(in.position, 1.0) * transform.mvp;
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(in.color, 1.0);
}
`

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V word slice.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("render: compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("render: SPIR-V length %d is not word aligned", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if len(spirvCode) == 0 || spirvCode[0] != spirvMagic {
		return nil, errors.New("render: compiled shader is not SPIR-V")
	}

	gg3d.Logger().Debug("render: shader compiled", "words", len(spirvCode))
	return spirvCode, nil
}

// CompileTransformShader compiles TransformShaderWGSL.
func CompileTransformShader() ([]uint32, error) {
	return CompileShaderToSPIRV(TransformShaderWGSL)
}

// NewTransformShaderModule compiles the transform shader and creates a HAL
// shader module from it. The caller owns the module and releases it with
// device.DestroyShaderModule.
func NewTransformShaderModule(device hal.Device) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	code, err := CompileTransformShader()
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "gg3d_transform_shader",
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render: create transform shader module: %w", err)
	}
	return module, nil
}
