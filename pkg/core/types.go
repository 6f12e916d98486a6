package core

// Size describes the interior dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of interior cells.
func (s Size) Cells() int { return s.W * s.H }
