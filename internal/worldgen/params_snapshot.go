package worldgen

import (
	"math"
	"strconv"

	"tilegen/internal/core"
)

// Parameters reports the configuration the world was generated with.
func (w *World) Parameters() core.ParameterSnapshot {
	return w.Config.Parameters()
}

// Parameters reports the configuration grouped for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("chunk_size", "Chunk size", c.ChunkSize),
				intParam("map_chunks", "Map size (chunks)", c.MapSizeInChunks),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Landmass",
			Params: []core.Parameter{
				floatParam("expansion", "Expansion chance", c.ExpansionProbability),
			},
		},
		{
			Name: "Biomes",
			Params: []core.Parameter{
				floatParam("plain_weight", "Plain weight", c.Weights.Plain),
				floatParam("forest_weight", "Forest weight", c.Weights.Forest),
				floatParam("path_weight", "Path weight", c.Weights.Path),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (c Config) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "chunk_size", Label: "Chunk size", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 32, HasMax: true},
		{Key: "map_chunks", Label: "Map chunks", Type: core.ParamTypeInt, Step: 2, Min: 3, HasMin: true, Max: 41, HasMax: true},
		{Key: "expansion", Label: "Expansion", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "plain_weight", Label: "Plain", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true},
		{Key: "forest_weight", Label: "Forest", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true},
		{Key: "path_weight", Label: "Path", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates an integer parameter. It reports whether key names
// one.
func (c *Config) SetIntParameter(key string, value int) bool {
	switch key {
	case "chunk_size":
		c.ChunkSize = value
	case "map_chunks":
		c.MapSizeInChunks = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter. It reports whether key
// names one. NaN is refused.
func (c *Config) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "expansion":
		c.ExpansionProbability = value
	case "plain_weight":
		c.Weights.Plain = value
	case "forest_weight":
		c.Weights.Forest = value
	case "path_weight":
		c.Weights.Path = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
