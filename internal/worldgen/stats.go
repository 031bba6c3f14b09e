package worldgen

import "strings"

// Stats summarizes a generated world.
type Stats struct {
	LandChunks  int
	OceanChunks int
	// Connected is false if any ground chunk lies outside the landmass grown
	// from the center.
	Connected bool

	Biomes map[Biome]int

	PathCells       int
	TransitionCells int
	Shapes          map[Shape]int

	Decorations map[string]int
}

// Stats counts chunks, cells, shapes and decorations.
func (w *World) Stats() Stats {
	s := Stats{
		LandChunks:  w.Chunks.Count(ChunkGround),
		OceanChunks: w.Chunks.Count(ChunkOcean),
		Biomes:      map[Biome]int{},
		Shapes:      map[Shape]int{},
		Decorations: map[string]int{},
	}
	s.Connected = Landmass(w.Chunks).Size() == s.LandChunks

	for _, b := range w.Biomes.Cells() {
		if b != BiomeNone {
			s.Biomes[b]++
		}
	}
	s.PathCells = w.Cells.Count(CellPath)
	s.TransitionCells = w.Cells.Count(CellTransition)
	for y := 0; y < w.Cells.H; y++ {
		for x := 0; x < w.Cells.W; x++ {
			if Classifiable(w.Cells, x, y) {
				s.Shapes[w.Shapes.At(x, y)]++
			}
		}
	}
	for _, d := range w.Decorations {
		s.Decorations[d.Kind]++
	}
	return s
}

// ASCII draws the cell grid with the top row first.
func (w *World) ASCII() string {
	var b strings.Builder
	b.Grow((w.Cells.W + 1) * w.Cells.H)
	for y := w.Cells.H - 1; y >= 0; y-- {
		for x := 0; x < w.Cells.W; x++ {
			b.WriteByte(w.glyph(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (w *World) glyph(x, y int) byte {
	switch w.Cells.At(x, y) {
	case CellWater:
		return '~'
	case CellPath:
		return '#'
	case CellTransition:
		if w.Dominant(x, y) == CellPath {
			return '+'
		}
		return ':'
	case CellGround:
		switch w.BiomeAt(x, y) {
		case BiomeForest:
			return '"'
		case BiomePath:
			return ','
		default:
			return '.'
		}
	default:
		return ' '
	}
}
