package life

import "lifegif/pkg/core"

// Timestep evaluates one generation of Conway's rule from src into dst. src
// must have had its border wrapped. Only the interior of dst is written.
func Timestep(src, dst *core.Grid) {
	w, h := src.W, src.H
	stride := src.Stride()
	in := src.Cells()
	out := dst.Cells()

	for i := 1; i <= h; i++ {
		up := (i - 1) * stride
		mid := i * stride
		down := (i + 1) * stride
		for j := 1; j <= w; j++ {
			sum := in[up+j-1] + in[up+j] + in[up+j+1] +
				in[mid+j-1] + in[mid+j+1] +
				in[down+j-1] + in[down+j] + in[down+j+1]

			switch sum {
			case 3:
				out[mid+j] = 1
			case 2:
				out[mid+j] = in[mid+j]
			default:
				out[mid+j] = 0
			}
		}
	}
}
