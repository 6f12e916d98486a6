package core

import (
	"fmt"
	"io"
	"time"
)

// Phase identifies one part of a simulation step.
type Phase int

const (
	PhaseWrap Phase = iota
	PhaseStep
	PhaseSwap
	PhaseEmit
	numPhases
)

var phaseNames = [numPhases]string{"wrap", "step", "swap", "gif"}

func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// PhaseTimer accumulates wall time spent in each phase of the step loop.
type PhaseTimer struct {
	totals [numPhases]time.Duration
	last   time.Time
	now    func() time.Time
}

// NewPhaseTimer constructs a timer backed by the wall clock.
func NewPhaseTimer() *PhaseTimer {
	return &PhaseTimer{now: time.Now}
}

// Mark starts measuring the next phase.
func (t *PhaseTimer) Mark() {
	t.last = t.now()
}

// Lap charges the time since the last Mark or Lap to phase p and restarts the
// measurement.
func (t *PhaseTimer) Lap(p Phase) {
	now := t.now()
	t.totals[p] += now.Sub(t.last)
	t.last = now
}

// Total returns the accumulated time for phase p.
func (t *PhaseTimer) Total(p Phase) time.Duration { return t.totals[p] }

// Sum returns the time accumulated over all phases.
func (t *PhaseTimer) Sum() time.Duration {
	var sum time.Duration
	for _, d := range t.totals {
		sum += d
	}
	return sum
}

// WriteReport prints the per-phase breakdown and the throughput for a grid of
// the given number of cells.
func (t *PhaseTimer) WriteReport(w io.Writer, cells int) {
	total := t.Sum().Seconds()
	fmt.Fprintln(w, "Total time spent in each part:")
	for p := Phase(0); p < numPhases; p++ {
		secs := t.totals[p].Seconds()
		pct := 0.0
		if total > 0 {
			pct = secs / total * 100
		}
		fmt.Fprintf(w, "  %-5s: %7.3f seconds (%6.2f%%)\n", p, secs, pct)
	}
	fmt.Fprintln(w, "  -----------------------------------")
	fmt.Fprintf(w, "  total: %7.3f seconds (100.00%%)\n\n", total)
	if total > 0 {
		fmt.Fprintf(w, "Throughput: %.0f pixels/second\n", float64(cells)/total)
	}
}
