//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tilegen/internal/app"
	"tilegen/internal/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	overrides := cfg.Overrides.Map()
	genCfg := worldgen.FromMap(overrides)
	if _, ok := overrides["seed"]; !ok {
		genCfg.Seed = cfg.Seed
	}

	session, err := app.NewSession(genCfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg.Scale, cfg.HUDWidth)
	size := session.Size()

	ebiten.SetWindowTitle("tilegen - " + session.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
