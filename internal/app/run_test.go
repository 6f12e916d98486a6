package app

import (
	"bytes"
	"errors"
	"flag"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifegif/internal/gif"
)

func blinkerConfig(steps int) *Config {
	cfg := NewConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.Steps = steps
	cfg.Fixed = true
	cfg.Pattern = "blinker"
	return cfg
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-width", "32", "-height", "16", "-steps", "7", "-seed", "9", "-output", "x.gif", "-print-cells", "3", "-time"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 16 || cfg.Steps != 7 || cfg.Seed != 9 || cfg.Output != "x.gif" || cfg.PrintCells != 3 || !cfg.Time {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":       func(c *Config) { c.Width = 0 },
		"negative height":  func(c *Config) { c.Height = -2 },
		"negative steps":   func(c *Config) { c.Steps = -1 },
		"negative cadence": func(c *Config) { c.PrintWorld = -1 },
		"bad delay":        func(c *Config) { c.Delay = 70000 },
		"fixed and input":  func(c *Config) { c.Fixed, c.Input = true, "world.cells" },
		"unknown pattern":  func(c *Config) { c.Fixed, c.Pattern = true, "spaceship" },
		"gif too wide":     func(c *Config) { c.Output, c.Width = "out.gif", gif.MaxDimension+1 },
		"gif too long": func(c *Config) {
			c.Output, c.Width, c.Height, c.Steps = "out.gif", gif.MaxDimension, gif.MaxDimension, math.MaxInt
		},
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrConfig) {
			t.Fatalf("%s: err = %v, want ErrConfig", name, err)
		}
		if ExitCode(err) != 2 {
			t.Fatalf("%s: exit code %d, want 2", name, ExitCode(err))
		}
	}
}

func TestRunBlinker(t *testing.T) {
	var stdout, stderr bytes.Buffer
	res, err := Run(blinkerConfig(1), &stdout, &stderr)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Population != 3 {
		t.Fatalf("population = %d, want 3", res.Population)
	}
	if !strings.Contains(stderr.String(), "Number of live cells = 3\n") {
		t.Fatalf("missing summary:\n%s", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("unexpected stdout output:\n%s", stdout.String())
	}
}

func TestRunWritesGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.gif")
	cfg := blinkerConfig(4)
	cfg.Output = path
	cfg.Time = true

	var stdout, stderr bytes.Buffer
	if _, err := Run(cfg, &stdout, &stderr); err != nil {
		t.Fatalf("Run: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != int64(gif.RequiredSize(10, 10, 4)) {
		t.Fatalf("file size %d, want %d", info.Size(), gif.RequiredSize(10, 10, 4))
	}
	if !strings.Contains(stderr.String(), "Total time spent in each part:") {
		t.Fatalf("missing timing report:\n%s", stderr.String())
	}
}

func TestRunVerbosePrintsToStdout(t *testing.T) {
	cfg := blinkerConfig(2)
	cfg.Verbose = true
	var stdout, stderr bytes.Buffer
	if _, err := Run(cfg, &stdout, &stderr); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, want := range []string{"initial world:", "World contains 3 live cells after time step 0:", "World contains 3 live cells after time step 1:"} {
		if !strings.Contains(stdout.String(), want) {
			t.Fatalf("stdout missing %q:\n%s", want, stdout.String())
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.Input = filepath.Join(dir, "nope.cells")
	cfg.Output = filepath.Join(dir, "out.gif")

	_, err := Run(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, ErrInput) || ExitCode(err) != 1 {
		t.Fatalf("err = %v, want ErrInput with exit code 1", err)
	}
	if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
		t.Fatal("output file created despite input failure")
	}
}

func TestRunLoadsInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "block.cells")
	if err := os.WriteFile(input, []byte("!block\n....\n.OO.\n.OO.\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Steps = 8, 8, 10
	cfg.Input = input
	res, err := Run(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Population != 4 {
		t.Fatalf("population = %d, want 4", res.Population)
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	cfg := blinkerConfig(1)
	cfg.Output = filepath.Join(t.TempDir(), "missing", "out.gif")
	_, err := Run(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, ErrResource) {
		t.Fatalf("err = %v, want ErrResource", err)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatal("nil error should exit 0")
	}
	if ExitCode(classify(ErrResource, errors.New("mmap"))) != 1 {
		t.Fatal("resource errors should exit 1")
	}
}
