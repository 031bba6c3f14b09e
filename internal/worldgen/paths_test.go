package worldgen

import (
	"slices"
	"testing"

	"tilegen/internal/core"
)

func pathFixture(cs int, pathChunks ...core.Point) (*core.Grid[CellType], *core.Grid[Biome]) {
	chunks := core.NewGrid[ChunkType](5, 5)
	biomes := core.NewGrid[Biome](5, 5)
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			chunks.Set(x, y, ChunkGround)
			biomes.Set(x, y, BiomePlain)
		}
	}
	for _, p := range pathChunks {
		biomes.Set(p.X, p.Y, BiomePath)
	}
	return DeriveCells(chunks, cs), biomes
}

func TestCarvePathsIsolatedChunk(t *testing.T) {
	const cs = 5
	cells, biomes := pathFixture(cs, core.Point{X: 2, Y: 2})
	CarvePaths(cells, biomes, cs)

	c := ChunkCenter(cs, 2, 2)
	if c != (core.Point{X: 12, Y: 12}) {
		t.Fatalf("unexpected center %+v", c)
	}
	if cells.At(c.X, c.Y) != CellPath {
		t.Fatal("center should be path")
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if got := cells.At(c.X+dx, c.Y+dy); got != CellTransition {
				t.Fatalf("cell (%d,%d) = %s, want transition", c.X+dx, c.Y+dy, got)
			}
		}
	}
	paths, transitions := 0, 0
	for y := 2 * cs; y < 3*cs; y++ {
		for x := 2 * cs; x < 3*cs; x++ {
			switch cells.At(x, y) {
			case CellPath:
				paths++
			case CellTransition:
				transitions++
			}
		}
	}
	if paths != 1 || transitions != 8 {
		t.Fatalf("isolated chunk carved %d path / %d transition cells", paths, transitions)
	}
}

func TestCarvePathsConnectsNeighbors(t *testing.T) {
	for _, cs := range []int{3, 4, 5, 8} {
		cells, biomes := pathFixture(cs,
			core.Point{X: 1, Y: 2},
			core.Point{X: 2, Y: 2},
			core.Point{X: 2, Y: 3},
		)
		CarvePaths(cells, biomes, cs)

		a := ChunkCenter(cs, 1, 2)
		b := ChunkCenter(cs, 2, 2)
		for x := a.X; x <= b.X; x++ {
			if cells.At(x, a.Y) != CellPath {
				t.Fatalf("cs=%d: horizontal corridor broken at (%d,%d)", cs, x, a.Y)
			}
			if x > a.X && x < b.X {
				if cells.At(x, a.Y-1) != CellTransition || cells.At(x, a.Y+1) != CellTransition {
					t.Fatalf("cs=%d: corridor cell (%d,%d) not flanked", cs, x, a.Y)
				}
			}
		}
		c := ChunkCenter(cs, 2, 3)
		for y := b.Y; y <= c.Y; y++ {
			if cells.At(b.X, y) != CellPath {
				t.Fatalf("cs=%d: vertical corridor broken at (%d,%d)", cs, b.X, y)
			}
		}
		// No corridor towards plain chunks.
		if cells.At(b.X+2, b.Y) != CellGround {
			t.Fatalf("cs=%d: corridor leaked into a plain chunk", cs)
		}
	}
}

func TestCarvePathsIdempotent(t *testing.T) {
	cells, biomes := pathFixture(4, core.Point{X: 2, Y: 2}, core.Point{X: 3, Y: 2}, core.Point{X: 2, Y: 1})
	CarvePaths(cells, biomes, 4)
	once := slices.Clone(cells.Cells())
	CarvePaths(cells, biomes, 4)
	if !slices.Equal(once, cells.Cells()) {
		t.Fatal("carving twice changed the grid")
	}
}
