package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// CellSpan is the half-extent of one cell's quad in its local coordinate
// space, leaving a 20% gutter between neighboring cells.
const CellSpan = 0.8

// QuadVertexCount is the number of vertices in the two-triangle cell quad.
const QuadVertexCount = 6

// QuadVertices returns the cell quad as interleaved XY pairs: two triangles
// covering [-CellSpan, CellSpan] on both axes.
func QuadVertices() []float32 {
	const s = float32(CellSpan)
	return []float32{
		-s, -s,
		s, -s,
		s, s,

		-s, -s,
		s, s,
		-s, s,
	}
}

// QuadLayout describes the vertex buffer to the pipeline: tightly packed
// 2D float positions at the shader's position attribute slot.
func QuadLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 2 * 4,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         0,
				ShaderLocation: PositionLocation,
			},
		},
	}
}

// Quad is the device-resident vertex buffer for one cell's geometry,
// created once and immutable thereafter.
type Quad struct {
	Buffer *wgpu.Buffer
}

// NewQuad allocates the vertex buffer and uploads the quad vertices.
func NewQuad(device *wgpu.Device, queue *wgpu.Queue) (*Quad, error) {
	verts := QuadVertices()
	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "cell vertices",
		Size:  uint64(len(verts) * 4),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create vertex buffer: %w", err)
	}
	queue.WriteBuffer(buf, 0, wgpu.ToBytes(verts))
	return &Quad{Buffer: buf}, nil
}

// Release frees the vertex buffer.
func (q *Quad) Release() {
	if q.Buffer != nil {
		q.Buffer.Release()
		q.Buffer = nil
	}
}
