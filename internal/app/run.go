package app

import (
	"fmt"
	"io"

	"lifegif/internal/output"
	"lifegif/internal/world"
	"lifegif/pkg/core"
	"lifegif/pkg/sims/life"
)

// Run executes the batch simulation described by cfg. World prints requested
// with -verbose go to stdout; population reports, the final summary and the
// timing breakdown go to stderr.
func Run(cfg *Config, stdout, stderr io.Writer) (life.Result, error) {
	if err := cfg.Validate(); err != nil {
		return life.Result{}, err
	}

	l, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return life.Result{}, classify(ErrResource, err)
	}
	if err := seedWorld(cfg, l); err != nil {
		return life.Result{}, err
	}

	var sinks []life.FrameSink
	if printer := newPrinter(cfg, stdout, stderr); printer.Enabled() {
		sinks = append(sinks, printer)
	}
	var anim *output.GIF
	if cfg.Output != "" {
		anim, err = output.CreateGIF(cfg.Output, cfg.Width, cfg.Height, cfg.Steps, cfg.Delay)
		if err != nil {
			return life.Result{}, classify(ErrResource, err)
		}
		sinks = append(sinks, anim)
	}

	driver := life.NewDriver(l, output.Multi(sinks...))
	var timer *core.PhaseTimer
	if cfg.Time {
		timer = core.NewPhaseTimer()
		driver.WithTimer(timer)
	}

	res, err := driver.Run(cfg.Steps)
	if err != nil {
		if anim != nil && driver.State() != life.StateRunning {
			anim.Abort()
		}
		return res, classify(ErrResource, err)
	}

	fmt.Fprintf(stderr, "Number of live cells = %d\n", res.Population)
	fmt.Fprintf(stderr, "Game of Life took %10.3f seconds\n", res.Elapsed.Seconds())
	if timer != nil {
		timer.WriteReport(stderr, cfg.Width*cfg.Height)
	}
	return res, nil
}

func seedWorld(cfg *Config, l *life.Life) error {
	switch {
	case cfg.Input != "":
		if err := world.LoadFile(cfg.Input, l.Current()); err != nil {
			return classify(ErrInput, err)
		}
	case cfg.Fixed:
		p, err := life.LookupPattern(cfg.Pattern)
		if err != nil {
			return classify(ErrConfig, err)
		}
		l.Load(p)
	default:
		l.Reset(cfg.Seed)
	}
	return nil
}

func newPrinter(cfg *Config, stdout, stderr io.Writer) *output.Text {
	if cfg.Verbose {
		return output.Verbose(stdout)
	}
	return &output.Text{W: stderr, CellsEvery: cfg.PrintCells, WorldEvery: cfg.PrintWorld}
}
