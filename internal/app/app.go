//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegif/internal/render"
	"lifegif/internal/ui"
	"lifegif/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life world to the ebiten.Game interface.
type Game struct {
	life    *life.Life
	img     *ebiten.Image
	buf     []byte
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(l *life.Life, scale int, seed int64) *Game {
	size := l.Size()
	return &Game{
		life:     l,
		img:      ebiten.NewImage(size.W, size.H),
		buf:      make([]byte, 4*size.Cells()),
		overlay:  ui.NewOverlay(l),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.life.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.life.Step()
		g.tickOnce = false
	}
	g.overlay.SetPaused(g.paused)
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	render.FillBinaryRGBA(g.buf, g.life.Current(), g.onColor, g.offColor)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.life.Size()
	return s.W * g.scale, s.H * g.scale
}
