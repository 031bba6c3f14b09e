package worldgen

import "tilegen/internal/core"

// DeriveCells expands the chunk grid into the per-tile cell grid. Ground chunks
// become ground cells; ocean chunks become water with their edges facing land
// marked as transitions.
func DeriveCells(chunks *core.Grid[ChunkType], chunkSize int) *core.Grid[CellType] {
	cells := core.NewGrid[CellType](chunks.W*chunkSize, chunks.H*chunkSize)
	for cy := 0; cy < chunks.H; cy++ {
		for cx := 0; cx < chunks.W; cx++ {
			x0, y0 := cx*chunkSize, cy*chunkSize
			switch chunks.At(cx, cy) {
			case ChunkGround:
				cells.FillRect(x0, y0, chunkSize, chunkSize, CellGround)
			case ChunkOcean:
				cells.FillRect(x0, y0, chunkSize, chunkSize, CellWater)
				MarkBoundary(chunks, cells, chunkSize, cx, cy)
			}
		}
	}
	return cells
}

// MarkBoundary tags the cells of ocean chunk (cx, cy) that touch a ground
// neighbor. An orthogonal neighbor marks the whole shared edge, a diagonal
// neighbor only the shared corner cell. Directions leaving the grid are
// skipped. Calling it more than once has no further effect.
func MarkBoundary(chunks *core.Grid[ChunkType], cells *core.Grid[CellType], chunkSize, cx, cy int) {
	if chunks.At(cx, cy) != ChunkOcean {
		return
	}
	ground := func(dx, dy int) bool {
		nx, ny := cx+dx, cy+dy
		return chunks.InBounds(nx, ny) && chunks.At(nx, ny) == ChunkGround
	}

	x0, y0 := cx*chunkSize, cy*chunkSize
	x1, y1 := x0+chunkSize-1, y0+chunkSize-1

	if ground(-1, 0) {
		cells.FillRect(x0, y0, 1, chunkSize, CellTransition)
	}
	if ground(1, 0) {
		cells.FillRect(x1, y0, 1, chunkSize, CellTransition)
	}
	if ground(0, -1) {
		cells.FillRect(x0, y0, chunkSize, 1, CellTransition)
	}
	if ground(0, 1) {
		cells.FillRect(x0, y1, chunkSize, 1, CellTransition)
	}

	if ground(1, 1) {
		cells.Set(x1, y1, CellTransition)
	}
	if ground(1, -1) {
		cells.Set(x1, y0, CellTransition)
	}
	if ground(-1, 1) {
		cells.Set(x0, y1, CellTransition)
	}
	if ground(-1, -1) {
		cells.Set(x0, y0, CellTransition)
	}
}
