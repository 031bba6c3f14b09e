package worldgen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidConfig is returned when a configuration cannot produce a map.
var ErrInvalidConfig = errors.New("invalid generation config")

// BiomeWeights holds the relative rarity of each biome. Only the ratios matter.
type BiomeWeights struct {
	Plain  float64
	Forest float64
	Path   float64
}

// Slice returns the weights in draw order: plain, forest, path.
func (w BiomeWeights) Slice() []float64 {
	return []float64{w.Plain, w.Forest, w.Path}
}

// Decoration is one entry of a biome's decoration table. Chance is the share of
// a [0, 100) draw that selects this kind; whatever the table leaves over places
// nothing.
type Decoration struct {
	Kind   string
	Chance float64
}

// Config controls one generation run.
type Config struct {
	ChunkSize       int
	MapSizeInChunks int

	ExpansionProbability float64

	Seed int64

	Weights     BiomeWeights
	Decorations map[Biome][]Decoration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		ChunkSize:            16,
		MapSizeInChunks:      11,
		ExpansionProbability: 0.6,
		Seed:                 1337,
		Weights: BiomeWeights{
			Plain:  0.3,
			Forest: 0.3,
			Path:   0.4,
		},
		Decorations: map[Biome][]Decoration{
			BiomePlain: {
				{Kind: "grass", Chance: 12},
				{Kind: "flower", Chance: 6},
				{Kind: "rock", Chance: 2},
			},
			BiomeForest: {
				{Kind: "tree", Chance: 35},
				{Kind: "bush", Chance: 10},
				{Kind: "stump", Chance: 3},
			},
			BiomePath: {
				{Kind: "rock", Chance: 4},
				{Kind: "flower", Chance: 3},
			},
		},
	}
}

// MapSizeInTiles is the side length of the cell grid.
func (c Config) MapSizeInTiles() int { return c.MapSizeInChunks * c.ChunkSize }

// TilesOffset shifts tile coordinates so the map is centered on the world origin.
func (c Config) TilesOffset() int {
	return c.ChunkSize*(c.MapSizeInChunks/2) + c.ChunkSize/2
}

// Validate rejects configurations the pipeline cannot run on.
func (c Config) Validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk size %d must be positive", ErrInvalidConfig, c.ChunkSize)
	}
	if c.MapSizeInChunks < 3 {
		return fmt.Errorf("%w: map size %d chunks leaves no interior chunk", ErrInvalidConfig, c.MapSizeInChunks)
	}
	p := c.ExpansionProbability
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: expansion probability %v outside [0,1]", ErrInvalidConfig, p)
	}
	for i, w := range c.Weights.Slice() {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: %s weight %v", ErrInvalidConfig, biomeOrder[i], w)
		}
	}
	for biome, table := range c.Decorations {
		for _, d := range table {
			if math.IsNaN(d.Chance) || d.Chance < 0 {
				return fmt.Errorf("%w: %s decoration %q chance %v", ErrInvalidConfig, biome, d.Kind, d.Chance)
			}
		}
	}
	return nil
}

// Clone returns a copy that does not share decoration tables.
func (c Config) Clone() Config {
	out := c
	if c.Decorations != nil {
		out.Decorations = make(map[Biome][]Decoration, len(c.Decorations))
		for b, table := range c.Decorations {
			out.Decorations[b] = append([]Decoration(nil), table...)
		}
	}
	return out
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values are ignored; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["chunk_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg["map_chunks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MapSizeInChunks = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["expansion"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.ExpansionProbability = parsed
		}
	}
	if v, ok := cfg["plain_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Weights.Plain = parsed
		}
	}
	if v, ok := cfg["forest_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Weights.Forest = parsed
		}
	}
	if v, ok := cfg["path_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Weights.Path = parsed
		}
	}
	for _, b := range biomeOrder {
		if v, ok := cfg[b.String()+"_decor"]; ok {
			c.Decorations[b] = parseDecorations(v)
		}
	}
	return c
}

// parseDecorations reads "kind:chance,kind:chance". Malformed entries are skipped.
func parseDecorations(s string) []Decoration {
	var out []Decoration
	for _, entry := range strings.Split(s, ",") {
		kind, chance, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok || kind == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(chance, 64)
		if err != nil {
			continue
		}
		out = append(out, Decoration{Kind: kind, Chance: parsed})
	}
	return out
}
