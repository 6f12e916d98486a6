package output

import (
	"errors"

	"lifegif/pkg/core"
	"lifegif/pkg/sims/life"
)

type multi []life.FrameSink

// Multi fans frames out to every non-nil sink in order. It returns nil when
// no sink is given so the driver skips frame handling entirely.
func Multi(sinks ...life.FrameSink) life.FrameSink {
	var m multi
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}

func (m multi) Begin(g *core.Grid) error {
	for _, s := range m {
		if err := s.Begin(g); err != nil {
			return err
		}
	}
	return nil
}

func (m multi) Frame(n int, g *core.Grid) {
	for _, s := range m {
		s.Frame(n, g)
	}
}

func (m multi) End() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.End())
	}
	return errors.Join(errs...)
}
