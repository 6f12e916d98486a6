package core

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestPhaseTimerLaps(t *testing.T) {
	clock := time.Unix(0, 0)
	timer := &PhaseTimer{now: func() time.Time { return clock }}

	timer.Mark()
	clock = clock.Add(3 * time.Second)
	timer.Lap(PhaseWrap)
	clock = clock.Add(1 * time.Second)
	timer.Lap(PhaseStep)
	clock = clock.Add(2 * time.Second)
	timer.Lap(PhaseStep)

	if got := timer.Total(PhaseWrap); got != 3*time.Second {
		t.Fatalf("wrap = %s, want 3s", got)
	}
	if got := timer.Total(PhaseStep); got != 3*time.Second {
		t.Fatalf("step = %s, want 3s", got)
	}
	if got := timer.Sum(); got != 6*time.Second {
		t.Fatalf("sum = %s, want 6s", got)
	}

	var buf bytes.Buffer
	timer.WriteReport(&buf, 12)
	out := buf.String()
	for _, want := range []string{"wrap :   3.000 seconds ( 50.00%)", "gif  :   0.000", "Throughput: 2 pixels/second"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
