//go:build ebiten

package app

import (
	"errors"

	"cellgrid/internal/core"
	"cellgrid/internal/pattern"
	"cellgrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Preview shows the same alternating-buffer contract as the WebGPU path
// through a CPU pixel blit, for machines without a usable graphics device.
type Preview struct {
	grid    core.Grid
	states  [2][]uint32
	painter *render.GridPainter
	gate    *core.StepGate

	scale    int
	steps    stepper
	display  int
	paused   bool
	tickOnce bool
}

// NewPreview seeds both host-side state arrays and prepares the painter.
func NewPreview(cfg *Config, fillA, fillB pattern.Func) *Preview {
	grid := core.NewGrid(cfg.Cells)
	p := &Preview{
		grid:    grid,
		painter: render.NewGridPainter(grid.N),
		gate:    core.NewStepGate(cfg.Interval),
		scale:   cfg.Scale,
	}
	for i, fill := range []pattern.Func{fillA, fillB} {
		p.states[i] = make([]uint32, grid.Cells())
		pattern.Fill(p.states[i], fill)
	}
	return p
}

// Update handles keys and advances the step counter on the gate's cadence.
func (p *Preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		p.tickOnce = true
	}

	if p.gate.ShouldStep() && (!p.paused || p.tickOnce) {
		p.display = p.steps.advance()
		p.tickOnce = false
	}
	return nil
}

// Draw renders the state buffer selected when the current step began.
func (p *Preview) Draw(screen *ebiten.Image) {
	p.painter.Blit(screen, p.states[p.display], p.scale)
}

// Layout returns the logical screen size.
func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.grid.N * p.scale, p.grid.N * p.scale
}

// RunPreview runs the preview backend until the window closes.
func RunPreview(cfg *Config, fillA, fillB pattern.Func) error {
	p := NewPreview(cfg, fillA, fillB)
	ebiten.SetWindowTitle("cellgrid preview")
	ebiten.SetWindowSize(cfg.Cells*cfg.Scale, cfg.Cells*cfg.Scale)
	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
