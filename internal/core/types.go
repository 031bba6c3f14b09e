package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Point addresses a grid cell. X grows to the right and Y grows upwards.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Axis-aligned unit offsets.
var (
	Left  = Point{X: -1}
	Right = Point{X: 1}
	Down  = Point{Y: -1}
	Up    = Point{Y: 1}
)

// Orthogonal lists the 4-neighborhood in growth order.
var Orthogonal = [4]Point{Left, Right, Down, Up}
