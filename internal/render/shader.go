package render

import _ "embed"

// cellShader is the WGSL program for the instanced cell pipeline.
// It is a versioned asset with a fixed host contract; the constants
// below name that contract and the pipeline assembly code and tests
// both work from them rather than from literals.
//
//go:embed cell.wgsl
var cellShader string

// Shader contract: entry points and parameter slots.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"

	// All bindings live in one group.
	BindGroupIndex = 0

	// GridBinding is the uniform holding the grid dimensions as two f32.
	GridBinding = 0

	// StateBinding is the read-only storage array of per-cell u32 state.
	StateBinding = 1

	// PositionLocation is the vertex attribute slot for cell-local positions.
	PositionLocation = 0
)

// CellShaderSource returns the embedded WGSL program text.
func CellShaderSource() string { return cellShader }
