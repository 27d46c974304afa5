//go:build !ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifeca/internal/config"
	"lifeca/internal/sim"
)

// Without the ebiten tag lifeca runs headless: it builds the board, advances
// it for -generations (or until it settles) and saves it to -out.
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
	for _, line := range sim.Describe(cfg, board).Lines() {
		log.Print(line)
	}
	if cfg.Draw {
		log.Print("draw mode needs the GUI build (-tags ebiten); running the blank board")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := sim.NewRunner(board).Run(ctx, cfg.Generations)
	if err != nil {
		log.Printf("interrupted after %d generations", res.Generations)
	}
	switch {
	case res.Extinct:
		log.Printf("died out after %d generations", res.Generations)
	case res.Period == 1:
		log.Printf("still life after %d generations, population %d", res.Generations, res.FinalPopulation)
	case res.Period > 1:
		log.Printf("period %d oscillator after %d generations, population %d", res.Period, res.Generations, res.FinalPopulation)
	default:
		log.Printf("ran %d generations, population %d (avg %.1f, peak %d)",
			res.Generations, res.FinalPopulation, res.Stats.AveragePopulation, res.Stats.PeakPopulation)
	}

	sim.Teardown(board, cfg)
}
