package worldgen

import "tilegen/internal/core"

// Dominant returns the terrain a transition cell at (x, y) blends towards:
// path inside path-biome chunks, water everywhere else.
func Dominant(biomes *core.Grid[Biome], chunkSize, x, y int) CellType {
	if biomes.At(x/chunkSize, y/chunkSize) == BiomePath {
		return CellPath
	}
	return CellWater
}

// Classify picks the shape of the cell at (x, y) from its neighbors that hold
// the dominant terrain. Double flats win over flats, flats over corners; a cell
// matching nothing stays ShapeFull. The caller keeps (x, y) off the outer ring.
func Classify(cells *core.Grid[CellType], dominant CellType, x, y int) Shape {
	is := func(dx, dy int) bool { return cells.At(x+dx, y+dy) == dominant }
	left, right := is(-1, 0), is(1, 0)
	down, up := is(0, -1), is(0, 1)

	switch {
	case left && up:
		return ShapeDoubleFlatUpLeft
	case right && up:
		return ShapeDoubleFlatUpRight
	case left && down:
		return ShapeDoubleFlatDownLeft
	case right && down:
		return ShapeDoubleFlatDownRight

	case left:
		return ShapeFlatLeft
	case right:
		return ShapeFlatRight
	case down:
		return ShapeFlatDown
	case up:
		return ShapeFlatUp

	case is(-1, -1):
		return ShapeCornerDownLeft
	case is(1, -1):
		return ShapeCornerDownRight
	case is(1, 1):
		return ShapeCornerUpRight
	case is(-1, 1):
		return ShapeCornerUpLeft
	}
	return ShapeFull
}

// Classifiable reports whether (x, y) is a transition cell away from the outer
// ring of the cell grid.
func Classifiable(cells *core.Grid[CellType], x, y int) bool {
	return cells.At(x, y) == CellTransition && !cells.OnEdge(x, y)
}

// ClassifyAll derives the shape of every classifiable transition cell. All
// other cells hold ShapeFull. The cell grid is only read.
func ClassifyAll(cells *core.Grid[CellType], biomes *core.Grid[Biome], chunkSize int) *core.Grid[Shape] {
	shapes := core.NewGrid[Shape](cells.W, cells.H)
	for y := 0; y < cells.H; y++ {
		for x := 0; x < cells.W; x++ {
			if !Classifiable(cells, x, y) {
				continue
			}
			shapes.Set(x, y, Classify(cells, Dominant(biomes, chunkSize, x, y), x, y))
		}
	}
	return shapes
}
