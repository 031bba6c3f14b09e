//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"tilegen/internal/render"
	"tilegen/internal/ui"
	"tilegen/internal/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generation Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
	shown    *worldgen.World
}

// New constructs a Game for the provided session.
func New(session *Session, scale, hudWidth int) *Game {
	size := session.Size()
	g := &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(session, scale),
		hud:      ui.NewHUD(session, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
	}
	g.sync()
	return g
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.session.Regenerate(seed); err != nil {
		log.Printf("regenerate seed %d: %v", seed, err)
	}
}

// sync uploads the session preview when the world changed since last frame.
func (g *Game) sync() {
	w := g.session.World()
	if g.shown == w {
		return
	}
	size := g.session.Size()
	if pw, ph := g.painter.Size(); pw != size.W || ph != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
		ebiten.SetWindowSize(size.W*g.scale+g.hudWidth, size.H*g.scale)
	}
	g.painter.Upload(g.session.Preview())
	st := w.Stats()
	g.hud.SetStatus(fmt.Sprintf("seed %d\nland %d ocean %d\nobjects %d",
		g.session.Seed(), st.LandChunks, st.OceanChunks, len(w.Decorations)))
	g.shown = w
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.overlay.Update()
	g.hud.Update(g.session.Size().W * g.scale)
	g.sync()
	return nil
}

// Draw renders the current map.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.session.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
