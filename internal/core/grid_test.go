package core

import "testing"

func TestCoordsCoverGridExactly(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 32} {
		g := NewGrid(n)
		seen := make(map[[2]int]bool, g.Cells())
		for i := 0; i < g.Cells(); i++ {
			x, y := g.Coords(i)
			if x < 0 || x >= n || y < 0 || y >= n {
				t.Fatalf("n=%d instance %d maps outside grid: (%d,%d)", n, i, x, y)
			}
			key := [2]int{x, y}
			if seen[key] {
				t.Fatalf("n=%d instance %d repeats cell (%d,%d)", n, i, x, y)
			}
			seen[key] = true
			if g.Index(x, y) != i {
				t.Fatalf("n=%d Index(%d,%d)=%d, expected %d", n, x, y, g.Index(x, y), i)
			}
		}
		if len(seen) != g.Cells() {
			t.Fatalf("n=%d covered %d cells, expected %d", n, len(seen), g.Cells())
		}
	}
}

func TestCoordsRowMajorOrder(t *testing.T) {
	g := NewGrid(2)
	expects := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, want := range expects {
		x, y := g.Coords(i)
		if x != want[0] || y != want[1] {
			t.Fatalf("instance %d -> (%d,%d), expected (%d,%d)", i, x, y, want[0], want[1])
		}
	}
}

func TestHolds(t *testing.T) {
	g := NewGrid(4)
	if !g.Holds(16) {
		t.Fatal("16 elements should cover a 4x4 grid")
	}
	if g.Holds(15) || g.Holds(17) {
		t.Fatal("only exactly N*N elements cover the grid")
	}
}

func TestNewGridClampsToOne(t *testing.T) {
	if g := NewGrid(0); g.N != 1 {
		t.Fatalf("NewGrid(0).N = %d, expected 1", g.N)
	}
	if g := NewGrid(-3); g.N != 1 {
		t.Fatalf("NewGrid(-3).N = %d, expected 1", g.N)
	}
}
