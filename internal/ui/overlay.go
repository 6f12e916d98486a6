//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifegif/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 14
)

// Overlay draws the generation counter and population over the world.
type Overlay struct {
	life   *life.Life
	hidden bool
	paused bool
	pixel  *ebiten.Image

	// Population is O(W*H); only recount when the generation changes.
	lastGen int
	lastPop int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(l *life.Life) *Overlay {
	o := &Overlay{life: l, lastGen: -1}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetPaused updates the paused indicator.
func (o *Overlay) SetPaused(p bool) { o.paused = p }

// Update toggles the overlay with the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	if gen := o.life.Generation(); gen != o.lastGen {
		o.lastGen = gen
		o.lastPop = o.life.Population()
	}

	lines := []string{
		fmt.Sprintf("gen %d", o.lastGen),
		fmt.Sprintf("pop %d", o.lastPop),
	}
	if o.paused {
		lines = append(lines, "paused")
	}

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if b := text.BoundString(face, l); b.Dx() > width {
			width = b.Dx()
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(len(lines)*lineHeight+panelPadding))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	screen.DrawImage(o.pixel, op)

	for i, l := range lines {
		text.Draw(screen, l, face, panelPadding, (i+1)*lineHeight, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
