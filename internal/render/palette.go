package render

import (
	"image/color"

	"tilegen/internal/worldgen"
)

var (
	grassColor = color.NRGBA{R: 86, G: 150, B: 70, A: 255}
	pathColor  = color.NRGBA{R: 196, G: 166, B: 112, A: 255}
	waterColor = color.NRGBA{R: 40, G: 96, B: 170, A: 255}
	voidColor  = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// transitionWeight is how much of the dominant terrain an edge sprite shows.
const transitionWeight = 0.5

var groundPalette, waterPalette = buildPalettes()

// buildPalettes assigns a preview color to every sprite index of both sheets.
func buildPalettes() ([]color.NRGBA, []color.NRGBA) {
	ground := make([]color.NRGBA, 18)
	water := make([]color.NRGBA, 17)
	for i := range ground {
		ground[i] = blendColors(grassColor, pathColor, transitionWeight)
	}
	for i := range water {
		water[i] = blendColors(grassColor, waterColor, transitionWeight)
	}
	ground[worldgen.SpriteFullGrass] = grassColor
	ground[worldgen.SpriteFullPath] = pathColor
	water[worldgen.SpriteFullWater] = waterColor
	return ground, water
}

// tileColor resolves the visible color of one cell from both layers. Water
// sits above ground.
func tileColor(groundSprite, waterSprite int16) color.NRGBA {
	if waterSprite != Empty {
		return lookup(waterPalette, waterSprite)
	}
	if groundSprite != Empty {
		return lookup(groundPalette, groundSprite)
	}
	return voidColor
}

func lookup(palette []color.NRGBA, sprite int16) color.NRGBA {
	idx := int(sprite)
	if idx < 0 {
		return voidColor
	}
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
