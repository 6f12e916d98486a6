//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"lifegif/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewViewerConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := cfg.NewWorld()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg.Scale, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("%s %dx%d", world.Name(), size.W, size.H))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
