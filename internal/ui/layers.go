package ui

import (
	"image"
	"image/color"

	"tilegen/internal/worldgen"
)

var biomeTints = map[worldgen.Biome]color.NRGBA{
	worldgen.BiomePlain:  {R: 240, G: 220, B: 90, A: 90},
	worldgen.BiomeForest: {R: 20, G: 120, B: 40, A: 110},
	worldgen.BiomePath:   {R: 200, G: 90, B: 40, A: 110},
}

// BiomeTint paints each land chunk with its biome colour. Rows are flipped so
// the image lines up with render.Preview.
func BiomeTint(w *worldgen.World) *image.NRGBA {
	size := w.Size()
	img := image.NewNRGBA(image.Rect(0, 0, size.W, size.H))
	cs := w.Config.ChunkSize
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			tint, ok := biomeTints[w.Biomes.At(x/cs, y/cs)]
			if !ok {
				continue
			}
			img.SetNRGBA(x, size.H-1-y, tint)
		}
	}
	return img
}

// DecorationMarks returns the preview-space pixel of every planned object.
func DecorationMarks(w *worldgen.World) []image.Point {
	h := w.Size().H
	out := make([]image.Point, 0, len(w.Decorations))
	for _, p := range w.Decorations {
		out = append(out, image.Pt(p.Cell.X, h-1-p.Cell.Y))
	}
	return out
}
