//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a per-tile preview image to the GPU and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload replaces the painter image with src. Mismatched sizes are ignored.
func (gp *GridPainter) Upload(src *image.NRGBA) {
	if src.Rect.Dx() != gp.w || src.Rect.Dy() != gp.h {
		return
	}
	gp.img.WritePixels(src.Pix)
}

// Draw blits the current image onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
