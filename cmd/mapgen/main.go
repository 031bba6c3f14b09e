package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"sort"
	"strings"

	"tilegen/internal/render"
	"tilegen/internal/worldgen"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	seed := flag.Int64("seed", 1337, "seed for map generation")
	ascii := flag.Bool("ascii", true, "print the cell grid")
	pngPath := flag.String("png", "", "write a preview image to this path")
	scale := flag.Int("scale", 4, "pixel scale for -png")
	var overrides kvList
	flag.Var(&overrides, "set", "generator setting in key=value form (repeatable)")
	flag.Parse()

	settings := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring malformed override %q", kv)
			continue
		}
		settings[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	cfg := worldgen.FromMap(settings)
	if _, ok := settings["seed"]; !ok {
		cfg.Seed = *seed
	}

	world, err := worldgen.Generate(cfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	printParams(world)
	printStats(world.Stats())
	if *ascii {
		fmt.Println()
		fmt.Print(world.ASCII())
	}

	if *pngPath != "" {
		img := render.Scale(render.Preview(world, render.NewShader(cfg.Seed)), *scale)
		f, err := os.Create(*pngPath)
		if err != nil {
			log.Fatalf("create %s: %v", *pngPath, err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			log.Fatalf("encode %s: %v", *pngPath, err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close %s: %v", *pngPath, err)
		}
		log.Printf("wrote %s (%dx%d)", *pngPath, img.Rect.Dx(), img.Rect.Dy())
	}
}

func printParams(w *worldgen.World) {
	for _, group := range w.Parameters().Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, p := range group.Params {
			fmt.Printf("  %s=%s\n", p.Key, p.Value)
		}
	}
}

func printStats(s worldgen.Stats) {
	fmt.Printf("\nChunks: %d land, %d ocean (connected %v)\n", s.LandChunks, s.OceanChunks, s.Connected)
	fmt.Printf("Biomes: plain %d, forest %d, path %d\n",
		s.Biomes[worldgen.BiomePlain], s.Biomes[worldgen.BiomeForest], s.Biomes[worldgen.BiomePath])
	fmt.Printf("Cells: %d path, %d transition\n", s.PathCells, s.TransitionCells)
	fmt.Println("Shapes:")
	for shape := worldgen.ShapeFull; shape <= worldgen.ShapeCornerDownRight; shape++ {
		if n := s.Shapes[shape]; n > 0 {
			fmt.Printf("  %-20s %d\n", shape, n)
		}
	}
	kinds := make([]string, 0, len(s.Decorations))
	for kind := range s.Decorations {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	fmt.Println("Decorations:")
	for _, kind := range kinds {
		fmt.Printf("  %-20s %d\n", kind, s.Decorations[kind])
	}
}
