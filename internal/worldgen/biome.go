package worldgen

import "tilegen/internal/core"

// Pick walks weights in order, subtracting each from draw, and returns the
// index of the first positive weight that the remaining draw does not exceed.
// It returns -1 when no index qualifies.
func Pick(weights []float64, draw float64) int {
	for i, w := range weights {
		if w > 0 && draw <= w {
			return i
		}
		draw -= w
	}
	return -1
}

// AssignBiomes draws one biome for every ground chunk, column by column (x
// outer, y inner). Ocean chunks keep BiomeNone. A draw that misses every
// weight through rounding takes the last positive weight; when no weight is
// positive every ground chunk falls back to BiomePlain.
func AssignBiomes(chunks *core.Grid[ChunkType], weights BiomeWeights, src Source) *core.Grid[Biome] {
	biomes := core.NewGrid[Biome](chunks.W, chunks.H)
	ws := weights.Slice()
	total := 0.0
	for _, w := range ws {
		total += w
	}
	fallback := BiomePlain
	if i := lastPositive(ws); i >= 0 {
		fallback = biomeOrder[i]
	}
	for x := 0; x < chunks.W; x++ {
		for y := 0; y < chunks.H; y++ {
			if chunks.At(x, y) != ChunkGround {
				continue
			}
			biome := fallback
			if i := Pick(ws, src.Float64()*total); i >= 0 {
				biome = biomeOrder[i]
			}
			biomes.Set(x, y, biome)
		}
	}
	return biomes
}

func lastPositive(weights []float64) int {
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}
