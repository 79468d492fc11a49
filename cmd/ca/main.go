//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"vitality-ca/internal/app"
	_ "vitality-ca/internal/patterns"
	"vitality-ca/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Resolve(); err != nil {
		log.Fatalf("config: %v", err)
	}

	engine, err := sim.New(cfg.Sim)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	if err := engine.Reset(0); err != nil {
		log.Fatalf("reset: %v", err)
	}

	game := app.New(engine, cfg.Width, cfg.Height)

	ebiten.SetWindowTitle("vitality-ca - " + engine.Name())
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
