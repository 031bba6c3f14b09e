package worldgen

import (
	"tilegen/internal/core"

	"github.com/zyedidia/generic/mapset"
)

type growStep struct {
	x, y        int
	probability float64
}

// GrowLandmass allocates an all-ocean chunk grid and grows ground outwards
// from the center chunk, which always succeeds.
func GrowLandmass(cfg Config, src Source) *core.Grid[ChunkType] {
	n := cfg.MapSizeInChunks
	chunks := core.NewGrid[ChunkType](n, n)
	Grow(chunks, n/2, n/2, 1, cfg.ExpansionProbability, src)
	return chunks
}

// Grow marks the chunk at (x, y) as ground when it lies strictly inside the
// border, is not ground yet and a draw from src falls below probability. Each
// success continues into the left, right, down and up neighbors with the
// expansion probability. It returns the number of chunks converted.
//
// The worklist pops in the same pre-order as the recursive formulation, so the
// draws consumed from src are identical.
func Grow(chunks *core.Grid[ChunkType], x, y int, probability, expansion float64, src Source) int {
	grown := 0
	stack := []growStep{{x: x, y: y, probability: probability}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.x <= 0 || s.y <= 0 || s.x >= chunks.W-1 || s.y >= chunks.H-1 {
			continue
		}
		if chunks.At(s.x, s.y) == ChunkGround {
			continue
		}
		if src.Float64() >= s.probability {
			continue
		}
		chunks.Set(s.x, s.y, ChunkGround)
		grown++

		for i := len(core.Orthogonal) - 1; i >= 0; i-- {
			d := core.Orthogonal[i]
			stack = append(stack, growStep{x: s.x + d.X, y: s.y + d.Y, probability: expansion})
		}
	}
	return grown
}

// Landmass returns the 4-connected set of ground chunks that contains the
// center chunk. The set is empty when the center is ocean.
func Landmass(chunks *core.Grid[ChunkType]) mapset.Set[core.Point] {
	visited := mapset.New[core.Point]()
	start := core.Point{X: chunks.W / 2, Y: chunks.H / 2}
	if chunks.At(start.X, start.Y) != ChunkGround {
		return visited
	}
	queue := []core.Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range core.Orthogonal {
			n := current.Add(d)
			if !chunks.InBounds(n.X, n.Y) || chunks.At(n.X, n.Y) != ChunkGround || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}
