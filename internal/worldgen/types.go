package worldgen

// ChunkType classifies a chunk of the landmass layer.
type ChunkType uint8

const (
	ChunkOcean ChunkType = iota
	ChunkGround
)

func (c ChunkType) String() string {
	if c == ChunkGround {
		return "ground"
	}
	return "ocean"
}

// CellType classifies a single tile of the cell layer.
type CellType uint8

const (
	CellNone CellType = iota
	CellGround
	CellWater
	CellTransition
	CellPath
)

func (c CellType) String() string {
	switch c {
	case CellGround:
		return "ground"
	case CellWater:
		return "water"
	case CellTransition:
		return "transition"
	case CellPath:
		return "path"
	default:
		return "none"
	}
}

// Biome labels a ground chunk.
type Biome uint8

const (
	BiomeNone Biome = iota
	BiomePlain
	BiomeForest
	BiomePath
)

// biomeOrder is the fixed draw order of the biome weights.
var biomeOrder = [3]Biome{BiomePlain, BiomeForest, BiomePath}

func (b Biome) String() string {
	switch b {
	case BiomePlain:
		return "plain"
	case BiomeForest:
		return "forest"
	case BiomePath:
		return "path"
	default:
		return "none"
	}
}

// ParseBiome maps a biome name back to its value.
func ParseBiome(s string) (Biome, bool) {
	for _, b := range biomeOrder {
		if b.String() == s {
			return b, true
		}
	}
	return BiomeNone, false
}

// Shape is the edge/corner form a transition cell is drawn with.
type Shape uint8

const (
	ShapeFull Shape = iota
	ShapeFlatUp
	ShapeFlatDown
	ShapeFlatRight
	ShapeFlatLeft
	ShapeDoubleFlatUpRight
	ShapeDoubleFlatUpLeft
	ShapeDoubleFlatDownRight
	ShapeDoubleFlatDownLeft
	ShapeCornerUpRight
	ShapeCornerUpLeft
	ShapeCornerDownLeft
	ShapeCornerDownRight

	shapeCount
)

var shapeNames = [shapeCount]string{
	"full",
	"flat-up",
	"flat-down",
	"flat-right",
	"flat-left",
	"double-flat-up-right",
	"double-flat-up-left",
	"double-flat-down-right",
	"double-flat-down-left",
	"corner-up-right",
	"corner-up-left",
	"corner-down-left",
	"corner-down-right",
}

func (s Shape) String() string {
	if s >= shapeCount {
		return "invalid"
	}
	return shapeNames[s]
}
