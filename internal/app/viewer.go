package app

import (
	"flag"
	"fmt"

	"lifegif/pkg/sims/life"
)

// ViewerConfig represents the command-line parameters for the live viewer.
type ViewerConfig struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Fixed   bool
	Pattern string
	Input   string
}

// NewViewerConfig returns a ViewerConfig populated with sensible defaults.
func NewViewerConfig() *ViewerConfig {
	return &ViewerConfig{Width: 256, Height: 256, Scale: 3, TPS: 60, Seed: 42, Pattern: "gun"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *ViewerConfig) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Fixed, "fixed", c.Fixed, "start from a built-in pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern used with -fixed")
	fs.StringVar(&c.Input, "input", c.Input, "read the starting world from this file")
}

// Batch returns the equivalent batch configuration, used to validate and seed
// the viewer's world the same way Run does.
func (c *ViewerConfig) Batch() *Config {
	b := NewConfig()
	b.Width, b.Height, b.Steps = c.Width, c.Height, 0
	b.Seed, b.Fixed, b.Pattern, b.Input = c.Seed, c.Fixed, c.Pattern, c.Input
	return b
}

// NewWorld validates the configuration and builds the starting world.
func (c *ViewerConfig) NewWorld() (*life.Life, error) {
	if c.Scale <= 0 || c.TPS <= 0 {
		return nil, classify(ErrConfig, fmt.Errorf("scale and tps must be positive"))
	}
	b := c.Batch()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	l, err := life.New(b.Width, b.Height)
	if err != nil {
		return nil, classify(ErrResource, err)
	}
	if err := seedWorld(b, l); err != nil {
		return nil, err
	}
	return l, nil
}
