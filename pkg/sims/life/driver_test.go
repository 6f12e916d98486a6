package life

import (
	"errors"
	"slices"
	"testing"

	"lifegif/pkg/core"
)

type recordingSink struct {
	begun   []uint8
	frames  [][]uint8
	indices []int
	ended   bool
	endErr  error
}

func interior(g *core.Grid) []uint8 {
	var out []uint8
	for i := 1; i <= g.H; i++ {
		out = append(out, g.Row(i)...)
	}
	return out
}

func (s *recordingSink) Begin(g *core.Grid) error {
	s.begun = interior(g)
	return nil
}

func (s *recordingSink) Frame(n int, g *core.Grid) {
	s.indices = append(s.indices, n)
	s.frames = append(s.frames, interior(g))
}

func (s *recordingSink) End() error {
	s.ended = true
	return s.endErr
}

func TestDriverFramesMatchSteps(t *testing.T) {
	const steps = 6
	subject := newLife(t, 12, 9)
	subject.Reset(3)
	reference := newLife(t, 12, 9)
	reference.Reset(3)

	sink := &recordingSink{}
	d := NewDriver(subject, sink)
	if d.State() != StateInitialized {
		t.Fatalf("state = %s, want initialized", d.State())
	}

	res, err := d.Run(steps)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.State() != StateDone || !sink.ended {
		t.Fatalf("state = %s ended = %v after Run", d.State(), sink.ended)
	}
	if !slices.Equal(sink.begun, interior(reference.Current())) {
		t.Fatal("Begin did not see the initial world")
	}
	if !slices.Equal(sink.indices, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("frame indices = %v", sink.indices)
	}
	for n := 0; n < steps; n++ {
		reference.Step()
		if !slices.Equal(sink.frames[n], interior(reference.Current())) {
			t.Fatalf("frame %d does not match the world after step %d", n, n)
		}
	}
	if res.Population != reference.Population() || res.Steps != steps {
		t.Fatalf("result = %+v, want population %d", res, reference.Population())
	}
}

func TestDriverTimedMatchesUntimed(t *testing.T) {
	a := newLife(t, 20, 20)
	a.Reset(11)
	b := newLife(t, 20, 20)
	b.Reset(11)

	timer := core.NewPhaseTimer()
	ra, err := NewDriver(a, nil).WithTimer(timer).Run(15)
	if err != nil {
		t.Fatalf("timed Run: %v", err)
	}
	rb, err := NewDriver(b, nil).Run(15)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ra.Population != rb.Population || !a.Current().Equal(b.Current()) {
		t.Fatal("timed and untimed runs diverged")
	}
	if timer.Sum() < 0 {
		t.Fatal("negative timer sum")
	}
}

func TestDriverBlinkerEndToEnd(t *testing.T) {
	l := newLife(t, 10, 10)
	l.Load(Blinker)
	res, err := NewDriver(l, nil).Run(1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Population != 3 {
		t.Fatalf("population = %d, want 3", res.Population)
	}
	expectLive(t, l.Current(), [][2]int{{4, 2}, {4, 3}, {4, 4}}, "after one step")

	l = newLife(t, 10, 10)
	l.Load(Blinker)
	if _, err := NewDriver(l, nil).Run(2); err != nil {
		t.Fatalf("Run: %v", err)
	}
	expectLive(t, l.Current(), [][2]int{{3, 3}, {4, 3}, {5, 3}}, "after two steps")
}

func TestDriverRejectsSecondRun(t *testing.T) {
	d := NewDriver(newLife(t, 4, 4), nil)
	if _, err := d.Run(0); err != nil {
		t.Fatalf("Run(0): %v", err)
	}
	if _, err := d.Run(1); err == nil {
		t.Fatal("expected error when running a finished driver")
	}
}

func TestDriverPropagatesEndError(t *testing.T) {
	boom := errors.New("flush failed")
	d := NewDriver(newLife(t, 4, 4), &recordingSink{endErr: boom})
	if _, err := d.Run(2); !errors.Is(err, boom) {
		t.Fatalf("Run err = %v, want %v", err, boom)
	}
}
