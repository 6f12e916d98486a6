package life

import (
	"fmt"
	"time"

	"lifegif/pkg/core"
)

// FrameSink receives the generations produced by a Driver. Begin sees the
// initial world before the first step, Frame sees the world produced by step
// n, and End runs once after the last step.
type FrameSink interface {
	Begin(g *core.Grid) error
	Frame(n int, g *core.Grid)
	End() error
}

// State tracks where a Driver is in its run.
type State int

const (
	StateInitialized State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Result summarizes a completed run.
type Result struct {
	Steps      int
	Population int
	Elapsed    time.Duration
}

// Driver runs a Life world for a fixed number of steps and hands every new
// generation to an optional sink.
type Driver struct {
	life  *Life
	sink  FrameSink
	timer *core.PhaseTimer
	state State
	step  int
}

// NewDriver wraps an initialized world. sink may be nil, in which case no
// frames are produced.
func NewDriver(l *Life, sink FrameSink) *Driver {
	return &Driver{life: l, sink: sink}
}

// WithTimer enables per-phase timing using t.
func (d *Driver) WithTimer(t *core.PhaseTimer) *Driver {
	d.timer = t
	return d
}

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Run computes steps generations. Errors can only come from the sink's
// Begin and End; the step loop itself cannot fail.
func (d *Driver) Run(steps int) (Result, error) {
	if d.state != StateInitialized {
		return Result{}, fmt.Errorf("driver already %s", d.state)
	}
	if steps < 0 {
		return Result{}, fmt.Errorf("negative step count %d", steps)
	}
	if d.sink != nil {
		if err := d.sink.Begin(d.life.cur); err != nil {
			return Result{}, err
		}
	}

	d.state = StateRunning
	start := time.Now()
	if d.timer != nil {
		d.runTimed(steps)
	} else {
		for d.step < steps {
			d.life.Step()
			if d.sink != nil {
				d.sink.Frame(d.step, d.life.cur)
			}
			d.step++
		}
	}
	elapsed := time.Since(start)

	if d.sink != nil {
		if err := d.sink.End(); err != nil {
			return Result{}, err
		}
	}
	d.state = StateDone
	return Result{Steps: steps, Population: d.life.Population(), Elapsed: elapsed}, nil
}

func (d *Driver) runTimed(steps int) {
	l, t := d.life, d.timer
	for d.step < steps {
		t.Mark()
		WrapBorder(l.cur)
		t.Lap(core.PhaseWrap)
		Timestep(l.cur, l.nxt)
		t.Lap(core.PhaseStep)
		l.swap()
		t.Lap(core.PhaseSwap)
		if d.sink != nil {
			d.sink.Frame(d.step, l.cur)
		}
		t.Lap(core.PhaseEmit)
		d.step++
	}
}
