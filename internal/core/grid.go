package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T comparable] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Every cell holds the zero value.
func NewGrid[T comparable](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// OnEdge reports whether (x, y) lies on the outermost ring of the grid.
func (g *Grid[T]) OnEdge(x, y int) bool {
	return x == 0 || y == 0 || x == g.W-1 || y == g.H-1
}

// At returns the value at (x, y). Out-of-range coordinates yield the zero value.
func (g *Grid[T]) At(x, y int) T {
	if !g.InBounds(x, y) {
		var zero T
		return zero
	}
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Out-of-range writes are dropped.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// FillRect sets every cell of the w*h block anchored at (x0, y0) to v.
func (g *Grid[T]) FillRect(x0, y0, w, h int, v T) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			g.Set(x, y, v)
		}
	}
}

// Count returns how many cells equal v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{W: g.W, H: g.H, data: make([]T, len(g.data))}
	copy(out.data, g.data)
	return out
}
