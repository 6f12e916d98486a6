package results

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndTop(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "sweep.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	runs := []Run{
		{Seed: 1, Width: 32, Height: 32, Steps: 10, Population: 120, Elapsed: time.Millisecond},
		{Seed: 2, Width: 32, Height: 32, Steps: 10, Population: 180, Elapsed: 2 * time.Millisecond},
		{Seed: 3, Width: 32, Height: 32, Steps: 10, Population: 180, Elapsed: 3 * time.Millisecond},
		{Seed: 4, Width: 64, Height: 64, Steps: 10, Population: 999},
	}
	if err := store.Save(ctx, runs); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Replacing a row keeps one entry per seed.
	if err := store.Save(ctx, []Run{{Seed: 1, Width: 32, Height: 32, Steps: 10, Population: 50}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	top, err := store.Top(ctx, 32, 32, 10, 5)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d runs, want 3", len(top))
	}
	wantSeeds := []int64{2, 3, 1}
	for i, r := range top {
		if r.Seed != wantSeeds[i] {
			t.Fatalf("rank %d seed = %d, want %d", i, r.Seed, wantSeeds[i])
		}
	}
	if top[0].Elapsed != 2*time.Millisecond || top[2].Population != 50 {
		t.Fatalf("unexpected rows %+v", top)
	}
}
