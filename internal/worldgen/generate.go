package worldgen

import (
	"tilegen/internal/core"
	rng "tilegen/pkg/core"
)

// Source yields uniform draws in [0, 1). Every stage consumes the same Source
// in pipeline order, so a fixed sequence reproduces a map exactly.
type Source interface {
	Float64() float64
}

// World is the output of one generation run. Grids are fully populated before
// Generate returns and are not modified afterwards.
type World struct {
	Config Config

	Chunks *core.Grid[ChunkType]
	Cells  *core.Grid[CellType]
	Biomes *core.Grid[Biome]
	Shapes *core.Grid[Shape]

	Decorations []Placement
}

// Generate runs the full pipeline seeded from cfg.Seed.
func Generate(cfg Config) (*World, error) {
	return GenerateWith(cfg, rng.NewRNG(cfg.Seed))
}

// GenerateWith runs the full pipeline drawing from src. The config is checked
// before any stage runs; on error no world is returned.
func GenerateWith(cfg Config, src Source) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	chunks := GrowLandmass(cfg, src)
	cells := DeriveCells(chunks, cfg.ChunkSize)
	biomes := AssignBiomes(chunks, cfg.Weights, src)
	CarvePaths(cells, biomes, cfg.ChunkSize)

	w := &World{
		Config: cfg,
		Chunks: chunks,
		Cells:  cells,
		Biomes: biomes,
		Shapes: ClassifyAll(cells, biomes, cfg.ChunkSize),
	}
	w.Decorations = PlanDecorations(w, src)
	return w, nil
}

// Name identifies the generator in window titles and logs.
func (w *World) Name() string { return "tilegen" }

// Size reports the cell grid dimensions.
func (w *World) Size() core.Size { return w.Cells.Size() }

// BiomeAt returns the biome of the chunk owning cell (x, y).
func (w *World) BiomeAt(x, y int) Biome {
	return w.Biomes.At(x/w.Config.ChunkSize, y/w.Config.ChunkSize)
}

// Dominant returns the terrain the cell at (x, y) blends towards.
func (w *World) Dominant(x, y int) CellType {
	return Dominant(w.Biomes, w.Config.ChunkSize, x, y)
}
