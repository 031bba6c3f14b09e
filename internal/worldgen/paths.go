package worldgen

import "tilegen/internal/core"

// ChunkCenter returns the cell at the middle of chunk (cx, cy).
func ChunkCenter(chunkSize, cx, cy int) core.Point {
	return core.Point{X: cx*chunkSize + chunkSize/2, Y: cy*chunkSize + chunkSize/2}
}

// CarvePaths lays the path network over every path-biome chunk. The chunk
// center becomes path and its eight surrounding cells transitions. Towards
// each orthogonal neighbor that is also a path chunk a one cell wide corridor
// runs up to (not including) the neighbor's center, flanked on both sides by
// transitions.
//
// All transitions are written before any path cell, so corridors shared by two
// chunks end up the same whatever order the chunks are visited in.
func CarvePaths(cells *core.Grid[CellType], biomes *core.Grid[Biome], chunkSize int) {
	var centers []core.Point
	var corridors []corridor
	for cy := 0; cy < biomes.H; cy++ {
		for cx := 0; cx < biomes.W; cx++ {
			if biomes.At(cx, cy) != BiomePath {
				continue
			}
			center := ChunkCenter(chunkSize, cx, cy)
			centers = append(centers, center)
			for _, d := range core.Orthogonal {
				if biomes.At(cx+d.X, cy+d.Y) == BiomePath {
					corridors = append(corridors, corridor{from: center, dir: d, length: chunkSize - 1})
				}
			}
		}
	}

	for _, c := range centers {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				cells.Set(c.X+dx, c.Y+dy, CellTransition)
			}
		}
	}
	for _, c := range corridors {
		c.each(func(p core.Point) {
			a, b := c.flanks(p)
			cells.Set(a.X, a.Y, CellTransition)
			cells.Set(b.X, b.Y, CellTransition)
		})
	}

	for _, c := range centers {
		cells.Set(c.X, c.Y, CellPath)
	}
	for _, c := range corridors {
		c.each(func(p core.Point) {
			cells.Set(p.X, p.Y, CellPath)
		})
	}
}

// corridor is the straight run of cells between two neighboring chunk centers,
// both centers excluded.
type corridor struct {
	from   core.Point
	dir    core.Point
	length int
}

func (c corridor) each(fn func(core.Point)) {
	p := c.from
	for i := 0; i < c.length; i++ {
		p = p.Add(c.dir)
		fn(p)
	}
}

func (c corridor) flanks(p core.Point) (core.Point, core.Point) {
	if c.dir.X != 0 {
		return p.Add(core.Down), p.Add(core.Up)
	}
	return p.Add(core.Left), p.Add(core.Right)
}
