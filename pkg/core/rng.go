package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillInterior draws one value per interior cell in row-major order: a cell
// is dead when the draw falls below 0.5 and alive otherwise.
func (r *RNG) FillInterior(g *Grid) {
	for i := 1; i <= g.H; i++ {
		row := g.Row(i)
		for j := range row {
			if r.r.Float64() < 0.5 {
				row[j] = 0
			} else {
				row[j] = 1
			}
		}
	}
}
