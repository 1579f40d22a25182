package render

import (
	"fmt"

	"cellgrid/internal/core"

	"github.com/cogentcore/webgpu/wgpu"
)

// ClearColor is the render pass background: opaque dark blue.
var ClearColor = wgpu.Color{R: 0, G: 0, B: 0.4, A: 1}

// Target provides drawable views for the frame driver. *Device implements
// it against the window surface; tests substitute their own.
type Target interface {
	// Acquire returns the view to render the next frame into.
	Acquire() (*wgpu.TextureView, error)
	// Present shows the rendered frame and releases the view.
	Present()
	// Discard releases the acquired view without presenting it.
	Discard()
}

// FrameDriver orchestrates one rendering step: acquire a surface view,
// record the instanced draw against the step-selected binding set, submit,
// present. It owns the step counter. Invocations must be strictly
// sequential; the driver does no locking of its own, matching the single
// main-loop writer that drives it.
type FrameDriver struct {
	device   *wgpu.Device
	queue    *wgpu.Queue
	target   Target
	pipeline *Pipeline
	quad     *Quad
	bindings *BindingPair

	instances uint32
	clear     wgpu.Color
	step      uint64
}

// NewFrameDriver wires the assembled pipeline, geometry and binding pair
// into a driver drawing one instance per grid cell.
func NewFrameDriver(gpu *Device, pl *Pipeline, quad *Quad, bindings *BindingPair, grid core.Grid) *FrameDriver {
	return newFrameDriver(gpu.Device(), gpu.Queue(), gpu, pl, quad, bindings, grid)
}

func newFrameDriver(device *wgpu.Device, queue *wgpu.Queue, target Target, pl *Pipeline, quad *Quad, bindings *BindingPair, grid core.Grid) *FrameDriver {
	return &FrameDriver{
		device:    device,
		queue:     queue,
		target:    target,
		pipeline:  pl,
		quad:      quad,
		bindings:  bindings,
		instances: uint32(grid.Cells()),
		clear:     ClearColor,
	}
}

// Step returns the number of begun rendering steps. Abandoned steps count.
func (d *FrameDriver) Step() uint64 { return d.step }

// RenderFrame drives one rendering step. The binding set is chosen by the
// parity of the counter before this step's increment, so the first frame
// reads state buffer A. If the surface cannot be acquired the step is
// abandoned with all durable state untouched; the next invocation retries
// acquisition naturally.
func (d *FrameDriver) RenderFrame() error {
	parity := d.step
	d.step++

	view, err := d.target.Acquire()
	if err != nil {
		return fmt.Errorf("render: step %d abandoned: %w", d.step, err)
	}

	encoder, err := d.device.CreateCommandEncoder(nil)
	if err != nil {
		d.target.Discard()
		return fmt.Errorf("render: step %d: create command encoder: %w", d.step, err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "cell pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: d.clear,
			},
		},
	})
	pass.SetPipeline(d.pipeline.Pipeline)
	pass.SetVertexBuffer(0, d.quad.Buffer, 0, wgpu.WholeSize)
	pass.SetBindGroup(BindGroupIndex, d.bindings.Select(parity), nil)
	pass.Draw(QuadVertexCount, d.instances, 0, 0)
	pass.End()
	pass.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		d.target.Discard()
		return fmt.Errorf("render: step %d: finish commands: %w", d.step, err)
	}
	d.queue.Submit(cmd)
	cmd.Release()
	encoder.Release()

	d.target.Present()
	return nil
}
