package life

import (
	"fmt"

	"lifegif/pkg/core"
)

// Life implements Conway's Game of Life on a torus using two ghost-bordered
// grids. The grids never move or copy; only the current/next roles swap.
type Life struct {
	w, h int
	cur  *core.Grid
	nxt  *core.Grid
	gen  int
}

// New returns a Life simulation with the provided dimensions. Both buffers
// are allocated up front and the world starts empty.
func New(w, h int) (*Life, error) {
	cur, err := core.NewGrid(w, h)
	if err != nil {
		return nil, fmt.Errorf("allocate current world: %w", err)
	}
	nxt, err := core.NewGrid(w, h)
	if err != nil {
		return nil, fmt.Errorf("allocate next world: %w", err)
	}
	return &Life{w: w, h: h, cur: cur, nxt: nxt}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Current returns the grid holding the latest generation.
func (l *Life) Current() *core.Grid { return l.cur }

// Generation returns how many steps have been applied since the last reset.
func (l *Life) Generation() int { return l.gen }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	core.NewRNG(seed).FillInterior(l.cur)
	l.gen = 0
}

// Load replaces the board with a literal pattern.
func (l *Life) Load(p Pattern) {
	p.Apply(l.cur)
	l.gen = 0
}

// Population returns the number of live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	WrapBorder(l.cur)
	Timestep(l.cur, l.nxt)
	l.swap()
}

func (l *Life) swap() {
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
