package render

import "tilegen/internal/core"

// Empty marks a layer cell nothing was placed on.
const Empty = -1

// TileCanvas records tile placements into a ground and a water sprite layer.
// It accepts the origin-centered coordinates the generator emits.
type TileCanvas struct {
	offset int
	Ground *core.Grid[int16]
	Water  *core.Grid[int16]
}

// NewTileCanvas allocates a canvas of size*size tiles whose (0,0) world tile
// lies at cell (offset, offset).
func NewTileCanvas(size, offset int) *TileCanvas {
	c := &TileCanvas{
		offset: offset,
		Ground: core.NewGrid[int16](size, size),
		Water:  core.NewGrid[int16](size, size),
	}
	c.Ground.Fill(Empty)
	c.Water.Fill(Empty)
	return c
}

// PlaceGroundTile stores sprite on the ground layer. Later placements win.
func (c *TileCanvas) PlaceGroundTile(x, y, sprite int) {
	c.Ground.Set(x+c.offset, y+c.offset, int16(sprite))
}

// PlaceWaterTile stores sprite on the water layer. Later placements win.
func (c *TileCanvas) PlaceWaterTile(x, y, sprite int) {
	c.Water.Set(x+c.offset, y+c.offset, int16(sprite))
}

// Size returns the layer dimensions.
func (c *TileCanvas) Size() core.Size { return c.Ground.Size() }
