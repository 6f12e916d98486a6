package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"lifegif/internal/results"
	"lifegif/pkg/sims/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-sweep: ")

	width := flag.Int("width", 128, "grid width in cells")
	height := flag.Int("height", 128, "grid height in cells")
	steps := flag.Int("steps", 500, "generations to simulate per seed")
	first := flag.Int64("seed", 1, "first seed of the sweep")
	count := flag.Int("count", 64, "number of consecutive seeds to run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of simulations run at once")
	dbPath := flag.String("db", "", "store results in this SQLite database")
	top := flag.Int("top", 5, "number of best seeds to print")
	flag.Parse()

	if *count <= 0 || *workers <= 0 || *steps < 0 {
		log.Fatal("count and workers must be positive and steps non-negative")
	}

	fmt.Printf("Sweeping %d seeds (%d workers, %dx%d, %d steps)\n", *count, *workers, *width, *height, *steps)

	ctx := context.Background()
	runs := make([]results.Run, *count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)

	start := time.Now()
	for i := range runs {
		seed := *first + int64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run, err := runSeed(seed, *width, *height, *steps)
			if err != nil {
				return err
			}
			runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	if *dbPath != "" {
		store, err := results.Open(ctx, *dbPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := store.Save(ctx, runs); err != nil {
			store.Close()
			log.Fatal(err)
		}
		if err := store.Close(); err != nil {
			log.Fatal(err)
		}
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Population != runs[j].Population {
			return runs[i].Population > runs[j].Population
		}
		return runs[i].Seed < runs[j].Seed
	})

	fmt.Printf("\nTop %d seeds by final population (elapsed %s):\n", min(*top, len(runs)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(runs) && i < *top; i++ {
		r := runs[i]
		fmt.Printf("%2d) seed=%d population=%d took=%s\n", i+1, r.Seed, r.Population, r.Elapsed.Round(time.Microsecond))
	}
}

func runSeed(seed int64, w, h, steps int) (results.Run, error) {
	l, err := life.New(w, h)
	if err != nil {
		return results.Run{}, err
	}
	l.Reset(seed)
	res, err := life.NewDriver(l, nil).Run(steps)
	if err != nil {
		return results.Run{}, err
	}
	return results.Run{
		Seed:       seed,
		Width:      w,
		Height:     h,
		Steps:      steps,
		Population: res.Population,
		Elapsed:    res.Elapsed,
	}, nil
}
