package render

import (
	"image"
	"image/color"

	"tilegen/internal/worldgen"
)

var decorationColor = color.NRGBA{R: 24, G: 48, B: 20, A: 255}

// Rasterize renders w onto a fresh canvas.
func Rasterize(w *worldgen.World) *TileCanvas {
	c := NewTileCanvas(w.Config.MapSizeInTiles(), w.Config.TilesOffset())
	worldgen.Render(w, c)
	return c
}

// Image draws the canvas one pixel per tile with the top row of the map at
// the top of the image.
func (c *TileCanvas) Image(shader *Shader) *image.NRGBA {
	size := c.Size()
	img := image.NewNRGBA(image.Rect(0, 0, size.W, size.H))
	fillLayersNRGBA(img.Pix, c, shader)
	return img
}

// fillLayersNRGBA converts both sprite layers into NRGBA pixels in buf,
// flipping rows so y grows upwards on screen.
func fillLayersNRGBA(buf []byte, c *TileCanvas, shader *Shader) {
	w, h := c.Ground.W, c.Ground.H
	ground, water := c.Ground.Cells(), c.Water.Cells()
	for y := 0; y < h; y++ {
		row := (h - 1 - y) * w
		for x := 0; x < w; x++ {
			idx := y*w + x
			col := shader.Shade(tileColor(ground[idx], water[idx]), x, y)
			base := (row + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// Preview renders the world with its decorations marked as dark pixels.
func Preview(w *worldgen.World, shader *Shader) *image.NRGBA {
	img := Rasterize(w).Image(shader)
	h := w.Cells.H
	for _, d := range w.Decorations {
		img.SetNRGBA(d.Cell.X, h-1-d.Cell.Y, decorationColor)
	}
	return img
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			out.SetNRGBA(x, y, img.NRGBAAt(b.Min.X+x/factor, b.Min.Y+y/factor))
		}
	}
	return out
}
