package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"doomfire/internal/app"
	"doomfire/internal/term"
)

func main() {
	cfg := app.NewConfig()
	// One pixel per cell suits the half-block resolution of a terminal.
	cfg.CellSize = 1
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.BindRun(flag.CommandLine)
	flag.Parse()
	if err := cfg.ValidateRun(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The screen is restored before Run returns, so logging afterwards is safe.
	err := term.Run(ctx, term.Options{
		CellSize: cfg.CellSize,
		TPS:      cfg.TPS,
		Seed:     cfg.Seed,
		Debug:    cfg.Debug,
	})
	if err != nil {
		log.Fatal(err)
	}
}
