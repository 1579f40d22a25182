package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline is the single immutable rendering configuration: the compiled
// cell shader, the quad vertex layout and the surface color format, linked
// against the bind group layout both binding sets are built from. Assembled
// once; every frame reuses it regardless of which state buffer is active.
type Pipeline struct {
	Pipeline *wgpu.RenderPipeline
	Layout   *wgpu.BindGroupLayout
}

// Assemble compiles the cell shader and builds the render pipeline
// targeting the given surface format. A mismatch between the shader's
// declared bindings and the layout built here fails now, not at frame time.
func Assemble(device *wgpu.Device, format wgpu.TextureFormat) (*Pipeline, error) {
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "cell shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: cellShader,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render: compile cell shader: %w", err)
	}
	defer module.Release()

	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "cell bindings",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    GridBinding,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
			{
				Binding:    StateBinding,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("render: create bind group layout: %w", err)
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "cell pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		layout.Release()
		return nil, fmt.Errorf("render: create pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "cell pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: VertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{QuadLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: FragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		layout.Release()
		return nil, fmt.Errorf("render: create render pipeline: %w", err)
	}

	return &Pipeline{Pipeline: pipeline, Layout: layout}, nil
}

// Release frees the pipeline and its bind group layout.
func (p *Pipeline) Release() {
	if p.Pipeline != nil {
		p.Pipeline.Release()
		p.Pipeline = nil
	}
	if p.Layout != nil {
		p.Layout.Release()
		p.Layout = nil
	}
}
