package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Device owns the WebGPU objects shared by the whole renderer: instance,
// window surface, adapter, logical device and submission queue. It also
// tracks the texture acquired for the frame in flight so Present can
// release it.
type Device struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	format wgpu.TextureFormat
	alpha  wgpu.CompositeAlphaMode

	frameTexture *wgpu.Texture
	frameView    *wgpu.TextureView
}

// Open negotiates an adapter and device compatible with the window surface
// described by desc, and configures the surface at the given pixel size.
// Failure here means no usable graphics environment exists; callers are
// expected to treat it as terminal.
func Open(desc *wgpu.SurfaceDescriptor, width, height int) (*Device, error) {
	d := &Device{instance: wgpu.CreateInstance(nil)}
	d.surface = d.instance.CreateSurface(desc)

	adapter, err := d.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: d.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("render: no compatible adapter: %w", err)
	}
	d.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "cellgrid device",
	})
	if err != nil {
		return nil, fmt.Errorf("render: request device: %w", err)
	}
	d.device = device
	d.queue = device.GetQueue()

	caps := d.surface.GetCapabilities(adapter)
	d.format, d.alpha, err = pickSurfaceConfig(caps.Formats, caps.AlphaModes)
	if err != nil {
		return nil, err
	}

	d.Configure(width, height)
	return d, nil
}

// pickSurfaceConfig selects the surface's preferred color format and alpha
// mode. Either capability list being empty means the surface is unusable.
func pickSurfaceConfig(formats []wgpu.TextureFormat, alphaModes []wgpu.CompositeAlphaMode) (wgpu.TextureFormat, wgpu.CompositeAlphaMode, error) {
	if len(formats) == 0 {
		return 0, 0, fmt.Errorf("render: surface reports no color formats")
	}
	if len(alphaModes) == 0 {
		return 0, 0, fmt.Errorf("render: surface reports no alpha modes")
	}
	return formats[0], alphaModes[0], nil
}

// Configure (re)configures the surface for the given pixel size, using the
// preferred color format queried at Open time. Call again on window resize.
func (d *Device) Configure(width, height int) {
	d.surface.Configure(d.adapter, d.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      d.format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   d.alpha,
	})
}

// Acquire returns a view onto the next drawable surface texture. The
// texture stays held until Present. Acquisition fails transiently when the
// surface is outdated (e.g. mid-resize); the caller should skip the frame.
func (d *Device) Acquire() (*wgpu.TextureView, error) {
	if d.frameTexture != nil {
		return nil, fmt.Errorf("render: previous frame not yet presented")
	}
	texture, err := d.surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("render: acquire surface texture: %w", err)
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("render: surface texture view: %w", err)
	}
	d.frameTexture = texture
	d.frameView = view
	return view, nil
}

// Present shows the frame drawn into the texture from Acquire and releases it.
func (d *Device) Present() {
	if d.frameTexture == nil {
		return
	}
	d.surface.Present()
	d.frameView.Release()
	d.frameTexture.Release()
	d.frameView = nil
	d.frameTexture = nil
}

// Discard releases the texture from Acquire without presenting it.
func (d *Device) Discard() {
	if d.frameTexture == nil {
		return
	}
	d.frameView.Release()
	d.frameTexture.Release()
	d.frameView = nil
	d.frameTexture = nil
}

// Format returns the surface's preferred color format.
func (d *Device) Format() wgpu.TextureFormat { return d.format }

// Device returns the logical device handle.
func (d *Device) Device() *wgpu.Device { return d.device }

// Queue returns the submission queue.
func (d *Device) Queue() *wgpu.Queue { return d.queue }

// Release frees all device-level resources. The Device is unusable afterwards.
func (d *Device) Release() {
	if d.frameView != nil {
		d.frameView.Release()
		d.frameView = nil
	}
	if d.frameTexture != nil {
		d.frameTexture.Release()
		d.frameTexture = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.surface != nil {
		d.surface.Release()
		d.surface = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
}
