// Package sim builds boards from a run configuration and drives them without
// a window.
package sim

import (
	"log"
	"time"

	"lifeca/internal/config"
	"lifeca/pkg/boardio"
	"lifeca/pkg/life"
)

// NewBoard constructs the initial board. An input file wins over everything
// else and decides the dimensions; draw mode gives a blank board; otherwise
// the board is filled at random from cfg.Seed.
func NewBoard(cfg *config.Config) (*life.Board, error) {
	switch {
	case cfg.InputPath != "":
		return boardio.Load(cfg.InputPath, cfg.Rules)
	case cfg.Draw:
		return life.New(cfg.Board.W, cfg.Board.H, cfg.Rules), nil
	default:
		return life.NewRandom(cfg.Board.W, cfg.Board.H, cfg.Rules, cfg.Seed), nil
	}
}

// ResolveSeed replaces a zero seed with one taken from the clock so the run
// can be repeated with -seed.
func ResolveSeed(cfg *config.Config) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
}

// Teardown saves the board when an output path is configured. Failures are
// logged and reported but never fatal.
func Teardown(b *life.Board, cfg *config.Config) error {
	if cfg.OutputPath == "" {
		return nil
	}
	if err := boardio.Save(cfg.OutputPath, b); err != nil {
		log.Printf("failed to save board: %v", err)
		return err
	}
	log.Printf("saved generation %d to %s", b.Generation(), cfg.OutputPath)
	return nil
}
