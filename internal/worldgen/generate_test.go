package worldgen

import (
	"slices"
	"testing"

	"tilegen/internal/core"
)

// twinPathWorld grows chunks (2,2) and (2,3) on a 5x5 map of 4-tile chunks and
// makes both of them path chunks.
func twinPathWorld(t *testing.T) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.MapSizeInChunks = 5
	cfg.ChunkSize = 4
	cfg.Decorations = nil

	src := newScript(0.999,
		// Growth: center, left, right, down fail, up succeeds, then its
		// left and right fail.
		0, 0.99, 0.99, 0.99, 0, 0.99, 0.99,
		// Biomes for (2,2) and (2,3).
		0.99, 0.99,
	)
	w, err := GenerateWith(cfg, src)
	if err != nil {
		t.Fatalf("GenerateWith: %v", err)
	}
	return w
}

func TestEndToEndTwinPathChunks(t *testing.T) {
	w := twinPathWorld(t)

	if got := w.Chunks.Count(ChunkGround); got != 2 {
		t.Fatalf("expected 2 ground chunks, got %d", got)
	}
	for _, p := range []core.Point{{X: 2, Y: 2}, {X: 2, Y: 3}} {
		if w.Chunks.At(p.X, p.Y) != ChunkGround || w.Biomes.At(p.X, p.Y) != BiomePath {
			t.Fatalf("chunk %+v should be a path chunk", p)
		}
	}

	a, b := ChunkCenter(4, 2, 2), ChunkCenter(4, 2, 3)
	if a != (core.Point{X: 10, Y: 10}) || b != (core.Point{X: 10, Y: 14}) {
		t.Fatalf("unexpected centers %+v %+v", a, b)
	}
	for y := a.Y; y <= b.Y; y++ {
		if w.Cells.At(10, y) != CellPath {
			t.Fatalf("corridor broken at (10,%d)", y)
		}
	}

	// The ring cell on the corridor is path; the other seven stay transitions
	// and each gets a concrete edge or corner.
	for _, c := range []core.Point{a, b} {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := c.X+dx, c.Y+dy
				if (dx == 0 && dy == 0) || (dx == 0 && y > a.Y && y < b.Y) {
					continue
				}
				if w.Cells.At(x, y) != CellTransition {
					t.Fatalf("ring cell (%d,%d) = %s, want transition", x, y, w.Cells.At(x, y))
				}
				if w.Shapes.At(x, y) == ShapeFull {
					t.Fatalf("ring cell (%d,%d) left unshaped", x, y)
				}
			}
		}
	}

	checks := map[core.Point]Shape{
		{X: 11, Y: 10}: ShapeFlatLeft,
		{X: 9, Y: 11}:  ShapeFlatRight,
		{X: 9, Y: 12}:  ShapeFlatRight,
		{X: 9, Y: 9}:   ShapeCornerUpRight,
		{X: 11, Y: 15}: ShapeCornerDownLeft,
		// Ocean side: chunk (1,2) faces the land with its right column.
		{X: 7, Y: 9}: ShapeFlatLeft,
	}
	for p, want := range checks {
		if got := w.Shapes.At(p.X, p.Y); got != want {
			t.Errorf("shape at (%d,%d) = %s, want %s", p.X, p.Y, got, want)
		}
	}
	if w.Dominant(7, 9) != CellWater || w.Dominant(9, 12) != CellPath {
		t.Fatal("dominant terrain should follow the owning chunk's biome")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 2024
	a, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Chunks.Cells(), b.Chunks.Cells()) ||
		!slices.Equal(a.Cells.Cells(), b.Cells.Cells()) ||
		!slices.Equal(a.Biomes.Cells(), b.Biomes.Cells()) ||
		!slices.Equal(a.Shapes.Cells(), b.Shapes.Cells()) {
		t.Fatal("same seed produced different grids")
	}
	if !slices.Equal(a.Decorations, b.Decorations) {
		t.Fatal("same seed produced different decorations")
	}
}

func TestGenerateInvariants(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		cfg := DefaultConfig()
		cfg.Seed = seed
		cfg.MapSizeInChunks = 9
		cfg.ChunkSize = 5
		cfg.ExpansionProbability = 0.7
		w, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		stats := w.Stats()
		if stats.LandChunks == 0 || !stats.Connected {
			t.Fatalf("seed %d: landmass empty or disconnected: %+v", seed, stats)
		}

		n := cfg.MapSizeInChunks
		for cy := 0; cy < n; cy++ {
			for cx := 0; cx < n; cx++ {
				ground := w.Chunks.At(cx, cy) == ChunkGround
				if w.Chunks.OnEdge(cx, cy) && ground {
					t.Fatalf("seed %d: border chunk (%d,%d) is ground", seed, cx, cy)
				}
				if ground == (w.Biomes.At(cx, cy) == BiomeNone) {
					t.Fatalf("seed %d: chunk (%d,%d) ground=%v biome=%s", seed, cx, cy, ground, w.Biomes.At(cx, cy))
				}
			}
		}

		for y := 0; y < w.Cells.H; y++ {
			for x := 0; x < w.Cells.W; x++ {
				c := w.Cells.At(x, y)
				if w.Chunks.At(x/cfg.ChunkSize, y/cfg.ChunkSize) == ChunkGround {
					if c != CellGround && c != CellTransition && c != CellPath {
						t.Fatalf("seed %d: ground chunk cell (%d,%d) is %s", seed, x, y, c)
					}
				} else if c != CellWater && c != CellTransition {
					t.Fatalf("seed %d: ocean chunk cell (%d,%d) is %s", seed, x, y, c)
				}
				if s := w.Shapes.At(x, y); s >= shapeCount {
					t.Fatalf("seed %d: invalid shape at (%d,%d)", seed, x, y)
				}
			}
		}
		for _, d := range w.Decorations {
			if w.Cells.At(d.Cell.X, d.Cell.Y) != CellGround {
				t.Fatalf("seed %d: decoration on %s cell", seed, w.Cells.At(d.Cell.X, d.Cell.Y))
			}
		}
	}
}
