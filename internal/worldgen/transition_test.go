package worldgen

import (
	"testing"

	"tilegen/internal/core"
)

// patch builds a 3x3 cell grid with a transition in the middle. Rows are given
// top first, matching how the grid is drawn: 'x' marks the dominant terrain.
func patch(rows ...string) *core.Grid[CellType] {
	g := core.NewGrid[CellType](3, 3)
	g.Fill(CellGround)
	for r, row := range rows {
		y := 2 - r
		for x, ch := range row {
			if ch == 'x' {
				g.Set(x, y, CellWater)
			}
		}
	}
	g.Set(1, 1, CellTransition)
	return g
}

func TestClassifyShapes(t *testing.T) {
	cases := []struct {
		name string
		rows [3]string
		want Shape
	}{
		{"double flat up left", [3]string{".x.", "x..", "..."}, ShapeDoubleFlatUpLeft},
		{"double flat up right", [3]string{".x.", "..x", "..."}, ShapeDoubleFlatUpRight},
		{"double flat down left", [3]string{"...", "x..", ".x."}, ShapeDoubleFlatDownLeft},
		{"double flat down right", [3]string{"...", "..x", ".x."}, ShapeDoubleFlatDownRight},
		{"flat left", [3]string{"...", "x..", "..."}, ShapeFlatLeft},
		{"flat right", [3]string{"...", "..x", "..."}, ShapeFlatRight},
		{"flat down", [3]string{"...", "...", ".x."}, ShapeFlatDown},
		{"flat up", [3]string{".x.", "...", "..."}, ShapeFlatUp},
		{"corner down left", [3]string{"...", "...", "x.."}, ShapeCornerDownLeft},
		{"corner down right", [3]string{"...", "...", "..x"}, ShapeCornerDownRight},
		{"corner up right", [3]string{"..x", "...", "..."}, ShapeCornerUpRight},
		{"corner up left", [3]string{"x..", "...", "..."}, ShapeCornerUpLeft},
		{"nothing", [3]string{"...", "...", "..."}, ShapeFull},
	}
	for _, tc := range cases {
		g := patch(tc.rows[:]...)
		if got := Classify(g, CellWater, 1, 1); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestClassifyPriority(t *testing.T) {
	cases := []struct {
		name string
		rows [3]string
		want Shape
	}{
		// Left and up plus the down-right diagonal: double flat beats corner.
		{"double flat over corner", [3]string{".x.", "x..", "..x"}, ShapeDoubleFlatUpLeft},
		// All four sides: first double flat in order wins.
		{"surrounded", [3]string{".x.", "x.x", ".x."}, ShapeDoubleFlatUpLeft},
		// Left and right without up or down: first flat wins.
		{"opposite flats", [3]string{"...", "x.x", "..."}, ShapeFlatLeft},
		// Single side plus diagonals: flat beats corner.
		{"flat over corner", [3]string{"x.x", "...", ".x."}, ShapeFlatDown},
		// Only diagonals: first corner in order wins.
		{"all corners", [3]string{"x.x", "...", "x.x"}, ShapeCornerDownLeft},
	}
	for _, tc := range cases {
		g := patch(tc.rows[:]...)
		if got := Classify(g, CellWater, 1, 1); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestClassifyComparesDominantOnly(t *testing.T) {
	g := patch("...", "x..", "...")
	if got := Classify(g, CellPath, 1, 1); got != ShapeFull {
		t.Fatalf("water neighbors must not match path dominance, got %s", got)
	}
}

func TestClassifyAllSkipsOuterRing(t *testing.T) {
	cells := core.NewGrid[CellType](4, 4)
	cells.Fill(CellWater)
	cells.Set(0, 2, CellTransition)
	cells.Set(2, 2, CellTransition)
	biomes := core.NewGrid[Biome](1, 1)

	shapes := ClassifyAll(cells, biomes, 4)
	if Classifiable(cells, 0, 2) {
		t.Fatal("edge cell must not be classifiable")
	}
	if shapes.At(0, 2) != ShapeFull {
		t.Fatal("edge transition must keep the default shape")
	}
	if got := shapes.At(2, 2); got != ShapeDoubleFlatUpLeft {
		t.Fatalf("interior transition classified as %s", got)
	}
}

func TestDominantFollowsBiome(t *testing.T) {
	biomes := core.NewGrid[Biome](2, 1)
	biomes.Set(1, 0, BiomePath)
	if Dominant(biomes, 4, 2, 1) != CellWater {
		t.Fatal("non-path chunk should blend towards water")
	}
	if Dominant(biomes, 4, 5, 1) != CellPath {
		t.Fatal("path chunk should blend towards path")
	}
}

func TestSpriteTables(t *testing.T) {
	if WaterSprite(ShapeFull) != SpriteFullWater || GroundSprite(ShapeFull) != SpriteFullPath {
		t.Fatal("full shape should map to the full sprites")
	}
	seenWater := map[int]bool{}
	seenGround := map[int]bool{SpriteFullGrass: true}
	for s := ShapeFull; s < shapeCount; s++ {
		if seenWater[WaterSprite(s)] {
			t.Fatalf("water sprite %d reused by %s", WaterSprite(s), s)
		}
		seenWater[WaterSprite(s)] = true
		if seenGround[GroundSprite(s)] {
			t.Fatalf("ground sprite %d reused by %s", GroundSprite(s), s)
		}
		seenGround[GroundSprite(s)] = true
	}
	if len(seenWater) != 13 || len(seenGround) != 14 {
		t.Fatalf("expected 13 water and 14 ground sprites, got %d and %d", len(seenWater), len(seenGround))
	}
	if SpriteFor(CellPath, ShapeFlatLeft) != 3 || SpriteFor(CellWater, ShapeFlatDown) != 6 {
		t.Fatal("SpriteFor picked the wrong table")
	}
}
