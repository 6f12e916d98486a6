package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfMemory reports that a grid buffer could not be allocated.
var ErrOutOfMemory = errors.New("out of memory")

// Grid stores one generation of binary cells in a contiguous row-major buffer
// surrounded by a one-cell ghost border. Interior rows and columns run from 1
// to H and 1 to W; row 0, row H+1, column 0 and column W+1 are the border.
type Grid struct {
	W, H   int
	stride int
	data   []uint8
}

// NewGrid allocates a grid with an interior of w by h cells. Cell contents are
// zero but callers should initialize the interior before the first step.
func NewGrid(w, h int) (g *Grid, err error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrOutOfMemory)
	}
	stride := w + 2
	if h+2 > math.MaxInt/stride {
		return nil, fmt.Errorf("grid %dx%d: size overflows: %w", w, h, ErrOutOfMemory)
	}
	defer func() {
		if r := recover(); r != nil {
			g, err = nil, fmt.Errorf("grid %dx%d: %v: %w", w, h, r, ErrOutOfMemory)
		}
	}()
	return &Grid{W: w, H: h, stride: stride, data: make([]uint8, stride*(h+2))}, nil
}

// Size returns the interior dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Stride is the number of cells in one padded row.
func (g *Grid) Stride() int { return g.stride }

// Index returns the linear buffer index for (row, col) in padded coordinates.
func (g *Grid) Index(row, col int) int { return row*g.stride + col }

// Cell reads the value at (row, col). Both coordinates include the border.
func (g *Grid) Cell(row, col int) uint8 { return g.data[row*g.stride+col] }

// Set writes v at (row, col).
func (g *Grid) Set(row, col int, v uint8) { g.data[row*g.stride+col] = v }

// Row returns the interior cells of row i (1-based) as a slice aliasing the
// backing buffer.
func (g *Grid) Row(i int) []uint8 {
	start := i*g.stride + 1
	return g.data[start : start+g.W]
}

// Cells exposes the whole padded buffer, border included.
func (g *Grid) Cells() []uint8 { return g.data }

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Population counts the live interior cells.
func (g *Grid) Population() int {
	n := 0
	for i := 1; i <= g.H; i++ {
		for _, c := range g.Row(i) {
			n += int(c)
		}
	}
	return n
}

// Equal reports whether both grids hold the same interior cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := 1; i <= g.H; i++ {
		a, b := g.Row(i), o.Row(i)
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}
