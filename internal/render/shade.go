package render

import (
	"image/color"

	"github.com/aquilax/go-perlin"
)

const (
	shadeFrequency = 0.15
	shadeStrength  = 0.12
)

// Shader varies tile brightness with perlin noise so flat areas of the
// preview do not read as a single block.
type Shader struct {
	noise *perlin.Perlin
}

// NewShader returns a shader whose noise field is fixed by seed.
func NewShader(seed int64) *Shader {
	return &Shader{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// Shade scales c by the noise value at tile (x, y). A nil shader returns c.
func (s *Shader) Shade(c color.NRGBA, x, y int) color.NRGBA {
	if s == nil {
		return c
	}
	n := s.noise.Noise2D(float64(x)*shadeFrequency, float64(y)*shadeFrequency)
	f := 1 + shadeStrength*n
	return color.NRGBA{R: scale8(c.R, f), G: scale8(c.G, f), B: scale8(c.B, f), A: c.A}
}

func scale8(v uint8, f float64) uint8 {
	x := float64(v)*f + 0.5
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
