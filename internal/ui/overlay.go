//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"tilegen/internal/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type worldProvider interface {
	World() *worldgen.World
}

// Overlay draws optional debugging layers on top of the map preview.
type Overlay struct {
	source     worldProvider
	scale      int
	showBiomes bool
	showChunks bool
	showDecor  bool

	tintImg   *ebiten.Image
	tintWorld *worldgen.World
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(source worldProvider, scale int) *Overlay {
	o := &Overlay{source: source, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 biome tint, 2 chunk grid, 3 decorations.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBiomes = !o.showBiomes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showChunks = !o.showChunks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showDecor = !o.showDecor
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	w := o.source.World()
	if w == nil {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showBiomes {
		o.drawBiomes(screen, w, scale)
	}
	if o.showChunks {
		o.drawChunkGrid(screen, w, scale)
	}
	if o.showDecor {
		col := color.RGBA{R: 250, G: 80, B: 200, A: 255}
		for _, p := range DecorationMarks(w) {
			o.drawRect(screen, float64(p.X*scale), float64(p.Y*scale), float64(scale), float64(scale), col)
		}
	}
}

func (o *Overlay) drawBiomes(screen *ebiten.Image, w *worldgen.World, scale int) {
	if o.tintWorld != w {
		size := w.Size()
		if o.tintImg == nil || o.tintImg.Bounds() != image.Rect(0, 0, size.W, size.H) {
			o.tintImg = ebiten.NewImage(size.W, size.H)
		}
		o.tintImg.WritePixels(BiomeTint(w).Pix)
		o.tintWorld = w
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.tintImg, op)
}

func (o *Overlay) drawChunkGrid(screen *ebiten.Image, w *worldgen.World, scale int) {
	size := w.Size()
	span := w.Config.ChunkSize * scale
	width := float64(size.W * scale)
	height := float64(size.H * scale)
	col := color.RGBA{R: 0, G: 0, B: 0, A: 120}
	for i := 0; i <= w.Config.MapSizeInChunks; i++ {
		pos := float64(i * span)
		o.drawRect(screen, pos, 0, 1, height, col)
		o.drawRect(screen, 0, pos, width, 1, col)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
