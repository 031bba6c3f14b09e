package app

import (
	"image"

	"tilegen/internal/core"
	"tilegen/internal/render"
	"tilegen/internal/worldgen"
)

// Session owns the configuration and the current world of the viewer. A
// parameter change regenerates the world; a change that fails validation is
// rolled back and the previous world stays on screen.
type Session struct {
	cfg     worldgen.Config
	world   *worldgen.World
	preview *image.NRGBA
}

// NewSession generates the first world for cfg.
func NewSession(cfg worldgen.Config) (*Session, error) {
	s := &Session{}
	if err := s.apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) apply(cfg worldgen.Config) error {
	world, err := worldgen.Generate(cfg)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.world = world
	s.preview = render.Preview(world, render.NewShader(cfg.Seed))
	return nil
}

// Regenerate rebuilds the world with seed.
func (s *Session) Regenerate(seed int64) error {
	cfg := s.cfg.Clone()
	cfg.Seed = seed
	return s.apply(cfg)
}

// Name identifies the generator.
func (s *Session) Name() string { return s.world.Name() }

// Size returns the tile dimensions of the current world.
func (s *Session) Size() core.Size { return s.world.Size() }

// Seed returns the seed of the current world.
func (s *Session) Seed() int64 { return s.cfg.Seed }

// World exposes the current world.
func (s *Session) World() *worldgen.World { return s.world }

// Preview exposes the rendered image of the current world.
func (s *Session) Preview() *image.NRGBA { return s.preview }

// Parameters reports the configuration of the current world.
func (s *Session) Parameters() core.ParameterSnapshot { return s.cfg.Parameters() }

// ParameterControls lists the adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return s.cfg.ParameterControls()
}

// SetIntParameter updates key and regenerates. It reports whether the new
// world was built.
func (s *Session) SetIntParameter(key string, value int) bool {
	cfg := s.cfg.Clone()
	if !cfg.SetIntParameter(key, value) {
		return false
	}
	return s.apply(cfg) == nil
}

// SetFloatParameter updates key and regenerates. It reports whether the new
// world was built.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	cfg := s.cfg.Clone()
	if !cfg.SetFloatParameter(key, value) {
		return false
	}
	return s.apply(cfg) == nil
}
