package worldgen

import (
	"tilegen/internal/core"

	"github.com/go-gl/mathgl/mgl32"
)

// decorationScale is the upper bound of a decoration draw; table chances are
// percentages.
const decorationScale = 100

// Placement requests one decoration object.
type Placement struct {
	Kind string
	Cell core.Point
	// Pos is the world-space center of the cell.
	Pos mgl32.Vec2
}

// ObjectPlacer instantiates decoration objects in the scene.
type ObjectPlacer interface {
	PlaceObject(kind string, pos mgl32.Vec2)
}

// PlanDecorations draws once for every ground cell of every biome chunk and
// picks a kind from that biome's table. Path and transition cells are never
// decorated, and an empty table yields no placements.
func PlanDecorations(w *World, src Source) []Placement {
	cs := w.Config.ChunkSize
	off := float32(w.Config.TilesOffset())

	chances := make(map[Biome][]float64, len(w.Config.Decorations))
	for biome, table := range w.Config.Decorations {
		weights := make([]float64, len(table))
		for i, d := range table {
			weights[i] = d.Chance
		}
		chances[biome] = weights
	}

	var out []Placement
	for cx := 0; cx < w.Biomes.W; cx++ {
		for cy := 0; cy < w.Biomes.H; cy++ {
			biome := w.Biomes.At(cx, cy)
			if biome == BiomeNone {
				continue
			}
			table := w.Config.Decorations[biome]
			for x := cx * cs; x < (cx+1)*cs; x++ {
				for y := cy * cs; y < (cy+1)*cs; y++ {
					if w.Cells.At(x, y) != CellGround {
						continue
					}
					i := Pick(chances[biome], src.Float64()*decorationScale)
					if i < 0 {
						continue
					}
					out = append(out, Placement{
						Kind: table[i].Kind,
						Cell: core.Point{X: x, Y: y},
						Pos:  mgl32.Vec2{float32(x) - off + 0.5, float32(y) - off + 0.5},
					})
				}
			}
		}
	}
	return out
}

// Place hands every planned decoration to p.
func Place(w *World, p ObjectPlacer) {
	for _, d := range w.Decorations {
		p.PlaceObject(d.Kind, d.Pos)
	}
}
