package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// BindingPair holds the two precomputed bind groups, one per state buffer,
// so the per-frame path never allocates. Each group binds the grid uniform
// and one state array against the pipeline's layout. Immutable after
// construction.
type BindingPair struct {
	groups [2]*wgpu.BindGroup
}

// bindingIndex maps a step counter value to the state buffer read that
// step: buffer A on even steps, buffer B on odd.
func bindingIndex(step uint64) int {
	return int(step % 2)
}

// NewBindingPair eagerly builds both bind groups from the assembled
// pipeline's layout and the state store's buffers.
func NewBindingPair(device *wgpu.Device, pl *Pipeline, store *StateStore) (*BindingPair, error) {
	bp := &BindingPair{}
	for i := range bp.groups {
		group, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  fmt.Sprintf("cell bindings %c", 'A'+i),
			Layout: pl.Layout,
			Entries: []wgpu.BindGroupEntry{
				{
					Binding: GridBinding,
					Buffer:  store.Uniform(),
					Offset:  0,
					Size:    wgpu.WholeSize,
				},
				{
					Binding: StateBinding,
					Buffer:  store.State(i),
					Offset:  0,
					Size:    wgpu.WholeSize,
				},
			},
		})
		if err != nil {
			bp.Release()
			return nil, fmt.Errorf("render: create bind group %c: %w", 'A'+i, err)
		}
		bp.groups[i] = group
	}
	return bp, nil
}

// Select returns the bind group for the given step counter value.
func (bp *BindingPair) Select(step uint64) *wgpu.BindGroup {
	return bp.groups[bindingIndex(step)]
}

// Release frees both bind groups.
func (bp *BindingPair) Release() {
	for i, g := range bp.groups {
		if g != nil {
			g.Release()
			bp.groups[i] = nil
		}
	}
}
