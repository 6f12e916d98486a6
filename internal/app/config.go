package app

import (
	"flag"
	"fmt"
	"math"

	"lifegif/internal/gif"
	"lifegif/pkg/sims/life"
)

// Config represents the command-line parameters for a batch run.
type Config struct {
	Width  int
	Height int
	Steps  int
	Seed   int64

	Fixed   bool
	Pattern string
	Input   string
	Output  string
	Delay   int

	Verbose    bool
	PrintCells int
	PrintWorld int
	Time       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   256,
		Height:  256,
		Steps:   100,
		Seed:    1,
		Pattern: life.GliderGun.Name,
		Delay:   5,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of generations to compute")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random starting world")
	fs.BoolVar(&c.Fixed, "fixed", c.Fixed, "start from a built-in pattern instead of a random world")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, fmt.Sprintf("built-in pattern used with -fixed %v", life.PatternNames()))
	fs.StringVar(&c.Input, "input", c.Input, "read the starting world from this file (.zst is decompressed)")
	fs.StringVar(&c.Output, "output", c.Output, "write every generation to this animated GIF")
	fs.IntVar(&c.Delay, "delay", c.Delay, "GIF frame delay in hundredths of a second")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "print the world and population after every step")
	fs.IntVar(&c.PrintCells, "print-cells", c.PrintCells, "print the population every N steps (0 disables)")
	fs.IntVar(&c.PrintWorld, "print-world", c.PrintWorld, "print the world every N steps (0 disables)")
	fs.BoolVar(&c.Time, "time", c.Time, "report time spent in each phase of a step")
}

// Validate checks the configuration and returns an error wrapping ErrConfig.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return classify(ErrConfig, fmt.Errorf("grid size must be positive, got %dx%d", c.Width, c.Height))
	case c.Steps < 0:
		return classify(ErrConfig, fmt.Errorf("steps must not be negative, got %d", c.Steps))
	case c.PrintCells < 0 || c.PrintWorld < 0:
		return classify(ErrConfig, fmt.Errorf("print intervals must not be negative"))
	case c.Delay < 0 || c.Delay > 0xFFFF:
		return classify(ErrConfig, fmt.Errorf("delay %d out of range [0, 65535]", c.Delay))
	case c.Fixed && c.Input != "":
		return classify(ErrConfig, fmt.Errorf("-fixed and -input are mutually exclusive"))
	case c.Output != "" && (c.Width > gif.MaxDimension || c.Height > gif.MaxDimension):
		return classify(ErrConfig, fmt.Errorf("GIF output limited to %dx%d cells", gif.MaxDimension, gif.MaxDimension))
	}
	if c.Output != "" {
		frame := gif.FrameSize(c.Width, c.Height)
		if c.Steps > (math.MaxInt-gif.HeaderSize()-gif.TrailerSize())/frame {
			return classify(ErrConfig, fmt.Errorf("%d steps of %dx%d frames overflow the output size", c.Steps, c.Width, c.Height))
		}
	}
	if c.Fixed {
		if _, err := life.LookupPattern(c.Pattern); err != nil {
			return classify(ErrConfig, err)
		}
	}
	return nil
}
