// Package output provides the frame sinks a simulation run can feed: a
// console printer and a memory-mapped GIF writer.
package output

import (
	"fmt"
	"io"

	"lifegif/internal/render"
	"lifegif/pkg/core"
)

// Text reports population counts and prints the world to W. CellsEvery and
// WorldEvery select the cadence: after step n a report is printed when
// n%every == every-1. Zero disables a report. EveryStep prints the
// population and the world together after each step instead.
type Text struct {
	W           io.Writer
	CellsEvery  int
	WorldEvery  int
	ShowInitial bool
	EveryStep   bool

	err error
}

// Verbose returns a printer that shows the initial world and every step.
func Verbose(w io.Writer) *Text {
	return &Text{W: w, EveryStep: true, ShowInitial: true}
}

// Enabled reports whether the printer produces any output.
func (t *Text) Enabled() bool {
	return t.ShowInitial || t.EveryStep || t.CellsEvery > 0 || t.WorldEvery > 0
}

// Begin prints the initial world when requested.
func (t *Text) Begin(g *core.Grid) error {
	if !t.ShowInitial {
		return nil
	}
	if _, err := fmt.Fprint(t.W, "\ninitial world:\n\n"); err != nil {
		return err
	}
	return render.WriteText(t.W, g)
}

// Frame prints the reports due after step n. Write errors are kept and
// returned from End.
func (t *Text) Frame(n int, g *core.Grid) {
	if t.err != nil {
		return
	}
	if t.EveryStep {
		if _, t.err = fmt.Fprintf(t.W, "World contains %d live cells after time step %d:\n\n", g.Population(), n); t.err == nil {
			t.err = render.WriteText(t.W, g)
		}
		return
	}
	if due(n, t.CellsEvery) {
		_, t.err = fmt.Fprintf(t.W, "%d: %d live cells\n", n, g.Population())
	}
	if t.err == nil && due(n, t.WorldEvery) {
		if _, t.err = fmt.Fprintf(t.W, "\nafter time step %d:\n\n", n); t.err == nil {
			t.err = render.WriteText(t.W, g)
		}
	}
}

// End returns the first write error, if any.
func (t *Text) End() error {
	if t.err != nil {
		return fmt.Errorf("print world: %w", t.err)
	}
	return nil
}

func due(n, every int) bool {
	return every > 0 && n%every == every-1
}
