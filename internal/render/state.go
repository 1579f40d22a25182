package render

import (
	"fmt"

	"cellgrid/internal/core"
	"cellgrid/internal/pattern"

	"github.com/cogentcore/webgpu/wgpu"
)

// StateStore holds the two device-resident cell state arrays and the grid
// dimension uniform. Both state buffers are seeded once from their pattern
// functions; the renderer never writes them again, it only alternates which
// one a frame reads.
type StateStore struct {
	grid    core.Grid
	uniform *wgpu.Buffer
	states  [2]*wgpu.Buffer
}

// NewStateStore allocates and seeds the uniform and both state buffers.
// The upload is a deep copy; the host-side staging slice is reused for the
// second buffer and discarded afterwards.
func NewStateStore(device *wgpu.Device, queue *wgpu.Queue, grid core.Grid, fillA, fillB pattern.Func) (*StateStore, error) {
	s := &StateStore{grid: grid}

	uniform, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "grid uniform",
		Size:  2 * 4,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create grid uniform: %w", err)
	}
	s.uniform = uniform
	dims := []float32{float32(grid.N), float32(grid.N)}
	queue.WriteBuffer(uniform, 0, wgpu.ToBytes(dims))

	staging := make([]uint32, grid.Cells())
	for i, fill := range []pattern.Func{fillA, fillB} {
		buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: fmt.Sprintf("cell state %c", 'A'+i),
			Size:  uint64(len(staging) * 4),
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			s.Release()
			return nil, fmt.Errorf("render: create state buffer %c: %w", 'A'+i, err)
		}
		pattern.Fill(staging, fill)
		queue.WriteBuffer(buf, 0, wgpu.ToBytes(staging))
		s.states[i] = buf
	}
	return s, nil
}

// Uniform returns the grid dimension uniform buffer.
func (s *StateStore) Uniform() *wgpu.Buffer { return s.uniform }

// State returns state buffer i (0 for A, 1 for B).
func (s *StateStore) State(i int) *wgpu.Buffer { return s.states[i] }

// Grid returns the grid the store was sized for.
func (s *StateStore) Grid() core.Grid { return s.grid }

// Release frees the uniform and both state buffers.
func (s *StateStore) Release() {
	if s.uniform != nil {
		s.uniform.Release()
		s.uniform = nil
	}
	for i, buf := range s.states {
		if buf != nil {
			buf.Release()
			s.states[i] = nil
		}
	}
}
