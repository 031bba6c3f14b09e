package worldgen

// Sprite indices into the ground and water tile sheets.
const (
	SpriteFullGrass = 4
	SpriteFullPath  = 13
	SpriteFullWater = 12
)

var groundSprites = [shapeCount]int{
	ShapeFull:                SpriteFullPath,
	ShapeFlatUp:              1,
	ShapeFlatDown:            7,
	ShapeFlatRight:           5,
	ShapeFlatLeft:            3,
	ShapeDoubleFlatUpRight:   2,
	ShapeDoubleFlatUpLeft:    0,
	ShapeDoubleFlatDownRight: 8,
	ShapeDoubleFlatDownLeft:  6,
	ShapeCornerUpRight:       15,
	ShapeCornerUpLeft:        17,
	ShapeCornerDownLeft:      11,
	ShapeCornerDownRight:     9,
}

var waterSprites = [shapeCount]int{
	ShapeFull:                SpriteFullWater,
	ShapeFlatUp:              1,
	ShapeFlatDown:            6,
	ShapeFlatRight:           4,
	ShapeFlatLeft:            3,
	ShapeDoubleFlatUpRight:   2,
	ShapeDoubleFlatUpLeft:    0,
	ShapeDoubleFlatDownRight: 7,
	ShapeDoubleFlatDownLeft:  5,
	ShapeCornerUpRight:       14,
	ShapeCornerUpLeft:        16,
	ShapeCornerDownLeft:      10,
	ShapeCornerDownRight:     8,
}

// GroundSprite returns the ground sheet index for a path transition shape.
func GroundSprite(s Shape) int {
	if s >= shapeCount {
		return SpriteFullGrass
	}
	return groundSprites[s]
}

// WaterSprite returns the water sheet index for a water transition shape.
func WaterSprite(s Shape) int {
	if s >= shapeCount {
		return SpriteFullWater
	}
	return waterSprites[s]
}

// SpriteFor selects the sheet by dominant terrain.
func SpriteFor(dominant CellType, s Shape) int {
	if dominant == CellPath {
		return GroundSprite(s)
	}
	return WaterSprite(s)
}
