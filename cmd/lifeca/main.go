//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifeca/internal/app"
	"lifeca/internal/config"
	"lifeca/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetPrefix("lifeca: ")
	log.SetFlags(0)

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	sim.ResolveSeed(cfg)

	board, err := sim.NewBoard(cfg)
	if err != nil {
		log.Fatalf("cannot create board: %v", err)
	}
	log.Printf("%s %dx%d seed=%d", board.Name(), board.Size().W, board.Size().H, cfg.Seed)

	game := app.New(cfg, board)

	ebiten.SetWindowTitle("lifeca — " + board.Name())
	ebiten.SetWindowSize(cfg.WindowSize.W, cfg.WindowSize.H)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	runErr := ebiten.RunGame(game)
	sim.Teardown(game.Board(), cfg)
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
