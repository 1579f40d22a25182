//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from per-cell state values.
// It is the CPU preview stand-in for the instanced pipeline: same state
// contract, same color ramp, no device required.
type GridPainter struct {
	n   int
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for an n x n grid.
func NewGridPainter(n int) *GridPainter {
	gp := &GridPainter{n: n, buf: make([]byte, 4*n*n)}
	gp.img = ebiten.NewImage(n, n)
	return gp
}

// Blit uploads the provided cell states into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint32, scale int) {
	if len(cells) != gp.n*gp.n {
		return
	}
	fillStateRGBA(gp.buf, cells, gp.n)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the side length of the underlying image.
func (gp *GridPainter) Size() int { return gp.n }
