package app

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Cells != 32 {
		t.Fatalf("default cells = %d, expected 32", cfg.Cells)
	}
	if cfg.Interval != 200*time.Millisecond {
		t.Fatalf("default interval = %v, expected 200ms", cfg.Interval)
	}
	if cfg.PatternA != "thirds" || cfg.PatternB != "stripes" {
		t.Fatalf("default patterns = %q/%q, expected thirds/stripes", cfg.PatternA, cfg.PatternB)
	}
}

func TestPatternsResolve(t *testing.T) {
	cfg := NewConfig()
	fillA, fillB, err := cfg.Patterns()
	if err != nil {
		t.Fatalf("default patterns failed to resolve: %v", err)
	}
	if !fillA(0) || fillA(1) {
		t.Fatal("pattern A should be the thirds fill")
	}
	if fillB(0) || !fillB(1) {
		t.Fatal("pattern B should be the stripes fill")
	}
}

func TestPatternsRejectUnknown(t *testing.T) {
	cfg := NewConfig()
	cfg.PatternB = "checkers"
	if _, _, err := cfg.Patterns(); err == nil {
		t.Fatal("unknown pattern name should fail to resolve")
	}
}
