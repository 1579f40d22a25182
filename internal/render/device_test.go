package render

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestPickSurfaceConfigPrefersFirstEntries(t *testing.T) {
	formats := []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8Unorm}
	alphaModes := []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque, wgpu.CompositeAlphaModeAuto}
	format, alpha, err := pickSurfaceConfig(formats, alphaModes)
	if err != nil {
		t.Fatalf("usable capabilities rejected: %v", err)
	}
	if format != wgpu.TextureFormatBGRA8Unorm {
		t.Fatalf("format = %v, expected the surface's first preference", format)
	}
	if alpha != wgpu.CompositeAlphaModeOpaque {
		t.Fatalf("alpha mode = %v, expected the surface's first preference", alpha)
	}
}

func TestPickSurfaceConfigRejectsEmptyCapabilities(t *testing.T) {
	alphaModes := []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeAuto}
	if _, _, err := pickSurfaceConfig(nil, alphaModes); err == nil {
		t.Fatal("a surface without color formats should be rejected")
	}
	formats := []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm}
	if _, _, err := pickSurfaceConfig(formats, nil); err == nil {
		t.Fatal("a surface without alpha modes should be rejected")
	}
}
