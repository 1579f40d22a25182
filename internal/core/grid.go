package core

// Grid describes a square board of NxN cells addressed in row-major order.
// The renderer draws one instance per cell, so the linear instance index
// and the grid coordinate are two views of the same identity.
type Grid struct {
	N int
}

// NewGrid returns a grid with the given side length.
func NewGrid(n int) Grid {
	if n <= 0 {
		n = 1
	}
	return Grid{N: n}
}

// Cells returns the total cell (and instance) count.
func (g Grid) Cells() int { return g.N * g.N }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.N + x }

// Coords returns the cell coordinate for a linear instance index.
func (g Grid) Coords(i int) (x, y int) { return i % g.N, i / g.N }

// Holds reports whether a state array of length n covers the grid exactly.
func (g Grid) Holds(n int) bool { return n == g.Cells() }
