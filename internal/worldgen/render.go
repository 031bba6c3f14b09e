package worldgen

// TileRenderer receives tile placements in world tile coordinates, already
// shifted so the map is centered on the origin.
type TileRenderer interface {
	PlaceGroundTile(x, y, sprite int)
	PlaceWaterTile(x, y, sprite int)
}

// Render emits every tile of the world. Plain cells get their full sprite.
// Transition cells get a grass background and, unless their shape is full, the
// shape sprite on the layer of their dominant terrain. Transition cells on the
// outer ring are left empty.
func Render(w *World, r TileRenderer) {
	off := w.Config.TilesOffset()
	cells := w.Cells
	for y := 0; y < cells.H; y++ {
		for x := 0; x < cells.W; x++ {
			tx, ty := x-off, y-off
			switch cells.At(x, y) {
			case CellGround:
				r.PlaceGroundTile(tx, ty, SpriteFullGrass)
			case CellWater:
				r.PlaceWaterTile(tx, ty, SpriteFullWater)
			case CellPath:
				r.PlaceGroundTile(tx, ty, SpriteFullPath)
			case CellTransition:
				if cells.OnEdge(x, y) {
					continue
				}
				r.PlaceGroundTile(tx, ty, SpriteFullGrass)
				shape := w.Shapes.At(x, y)
				if shape == ShapeFull {
					continue
				}
				if w.Dominant(x, y) == CellPath {
					r.PlaceGroundTile(tx, ty, GroundSprite(shape))
				} else {
					r.PlaceWaterTile(tx, ty, WaterSprite(shape))
				}
			}
		}
	}
}
