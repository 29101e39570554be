//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"doomfire/internal/app"
	"doomfire/internal/sims/fire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	grid, err := fire.New(cfg.Fire())
	if err != nil {
		log.Fatalf("create fire: %v", err)
	}
	grid.Seed()

	game := app.New(grid, cfg)

	ebiten.SetWindowTitle("doomfire")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
