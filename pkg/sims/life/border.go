package life

import "lifegif/pkg/core"

// WrapBorder copies the opposite interior edges into the ghost border so the
// grid behaves as a torus. Rows are wrapped first across the full padded
// width, then columns across the full padded height, so the corner ghosts end
// up holding the diagonally opposite interior corner.
func WrapBorder(g *core.Grid) {
	w, h := g.W, g.H
	cells := g.Cells()
	stride := g.Stride()

	top := cells[0:stride]
	bottom := cells[(h+1)*stride : (h+2)*stride]
	copy(top, cells[h*stride:(h+1)*stride])
	copy(bottom, cells[stride:2*stride])

	for i := 0; i <= h+1; i++ {
		base := i * stride
		cells[base] = cells[base+w]
		cells[base+w+1] = cells[base+1]
	}
}
