//go:build ebiten

package render

// fillStateRGBA converts per-cell state into RGBA pixels, one pixel per
// cell. Active cells get the same position-derived gradient the shader
// emits (r=x/n, g=y/n, b=1-y/n); inactive cells get the clear color.
func fillStateRGBA(buf []byte, cells []uint32, n int) {
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			x := i % n
			y := i / n
			buf[base+0] = uint8(255 * x / n)
			buf[base+1] = uint8(255 * y / n)
			buf[base+2] = uint8(255 * (n - y) / n)
			buf[base+3] = 255
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 102
		buf[base+3] = 255
	}
}
