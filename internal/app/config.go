package app

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cellgrid/internal/pattern"

	"github.com/integrii/flaggy"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cells    int
	Interval time.Duration
	Window   int
	Scale    int
	PatternA string
	PatternB string
	Preview  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Cells:    32,
		Interval: 200 * time.Millisecond,
		Window:   512,
		Scale:    16,
		PatternA: "thirds",
		PatternB: "stripes",
	}
}

// Bind registers the configuration on the default flaggy parser.
// Call flaggy.Parse afterwards.
func (c *Config) Bind() {
	names := pattern.Names()
	sort.Strings(names)
	choices := strings.Join(names, "|")

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&c.Cells, "n", "cells", "Grid side length (the board is n x n cells)")
	flaggy.Duration(&c.Interval, "i", "interval", "Interval between rendering steps, for example 200ms")
	flaggy.Int(&c.Window, "w", "window", "Window size in pixels")
	flaggy.Int(&c.Scale, "s", "scale", "Pixel scale multiplier for the preview backend")
	flaggy.String(&c.PatternA, "a", "pattern-a", "Seed pattern for state buffer A ["+choices+"]")
	flaggy.String(&c.PatternB, "b", "pattern-b", "Seed pattern for state buffer B ["+choices+"]")
	flaggy.Bool(&c.Preview, "p", "preview", "Use the CPU preview backend instead of WebGPU")
}

// Patterns resolves the configured pattern names against the registry.
func (c *Config) Patterns() (fillA, fillB pattern.Func, err error) {
	fillA, ok := pattern.Lookup(c.PatternA)
	if !ok {
		return nil, nil, fmt.Errorf("unknown pattern %q", c.PatternA)
	}
	fillB, ok = pattern.Lookup(c.PatternB)
	if !ok {
		return nil, nil, fmt.Errorf("unknown pattern %q", c.PatternB)
	}
	return fillA, fillB, nil
}
