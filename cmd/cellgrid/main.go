package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"cellgrid/internal/app"
	"cellgrid/internal/core"
	"cellgrid/internal/pattern"
	"cellgrid/internal/render"

	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

func init() {
	// The window and device must live on the main initial thread.
	runtime.LockOSThread()
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind()
	flaggy.Parse()

	fillA, fillB, err := cfg.Patterns()
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if cfg.Preview {
		if err := app.RunPreview(cfg, fillA, fillB); err != nil {
			fatal(err)
		}
		return
	}

	if err := run(cfg, fillA, fillB); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	log.Fatalf("%s %v", aurora.Red("cellgrid:"), err)
}

func run(cfg *app.Config, fillA, fillB pattern.Func) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(cfg.Window, cfg.Window, "cellgrid", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	gpu, err := render.Open(wgpuglfw.GetSurfaceDescriptor(window), cfg.Window, cfg.Window)
	if err != nil {
		return err
	}
	defer gpu.Release()

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		gpu.Configure(width, height)
	})

	grid := core.NewGrid(cfg.Cells)

	store, err := render.NewStateStore(gpu.Device(), gpu.Queue(), grid, fillA, fillB)
	if err != nil {
		return err
	}
	defer store.Release()

	quad, err := render.NewQuad(gpu.Device(), gpu.Queue())
	if err != nil {
		return err
	}
	defer quad.Release()

	pl, err := render.Assemble(gpu.Device(), gpu.Format())
	if err != nil {
		return err
	}
	defer pl.Release()

	bindings, err := render.NewBindingPair(gpu.Device(), pl, store)
	if err != nil {
		return err
	}
	defer bindings.Release()

	driver := render.NewFrameDriver(gpu, pl, quad, bindings, grid)

	// Poll window events briskly; advance rendering only on the gate's
	// fixed cadence. An abandoned step (e.g. surface lost mid-resize) is
	// logged and the next gate firing retries acquisition.
	gate := core.NewStepGate(cfg.Interval)
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for range ticker.C {
		if window.ShouldClose() {
			return nil
		}
		glfw.PollEvents()
		if !gate.ShouldStep() {
			continue
		}
		if err := driver.RenderFrame(); err != nil {
			log.Printf("cellgrid: %v", err)
		}
	}
	return nil
}
