package sim

import (
	"context"

	"lifeca/pkg/life"
)

// historyLen is the number of past fingerprints kept, enough to spot still
// lifes and oscillators up to period 3.
const historyLen = 3

// Stats tracks population over a run.
type Stats struct {
	AveragePopulation float64
	PeakPopulation    int
}

// Update folds one generation's population into the moving average.
func (s *Stats) Update(population int) {
	if population > s.PeakPopulation {
		s.PeakPopulation = population
	}
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
}

// Result summarises a headless run.
type Result struct {
	Generations     int
	FinalPopulation int
	Extinct         bool
	// Period is the detected cycle length (1 for a still life), or 0 when the
	// board never repeated within the history window.
	Period int
	Stats  Stats
}

// Settled reports whether the run stopped because the board stopped changing
// in an interesting way.
func (r Result) Settled() bool { return r.Extinct || r.Period > 0 }

// Runner advances a board without rendering.
type Runner struct {
	board   *life.Board
	history []string
}

// NewRunner wraps b.
func NewRunner(b *life.Board) *Runner {
	return &Runner{board: b}
}

// Board returns the board being driven.
func (r *Runner) Board() *life.Board { return r.board }

// Run steps the board until it dies out, settles into a cycle of period at
// most historyLen, or maxGenerations have run. A maxGenerations of 0 means
// no limit, so the caller should expect a settled result or cancellation.
func (r *Runner) Run(ctx context.Context, maxGenerations int) (Result, error) {
	var res Result
	r.remember(r.board.Fingerprint())
	res.Stats.Update(r.board.Population())

	for maxGenerations == 0 || res.Generations < maxGenerations {
		if err := ctx.Err(); err != nil {
			res.FinalPopulation = r.board.Population()
			return res, err
		}

		r.board.Step()
		res.Generations++

		population := r.board.Population()
		res.Stats.Update(population)
		if population == 0 {
			res.Extinct = true
			break
		}
		fp := r.board.Fingerprint()
		if period := r.period(fp); period > 0 {
			res.Period = period
			break
		}
		r.remember(fp)
	}

	res.FinalPopulation = r.board.Population()
	return res, nil
}

func (r *Runner) remember(fp string) {
	r.history = append(r.history, fp)
	if len(r.history) > historyLen {
		r.history = r.history[1:]
	}
}

func (r *Runner) period(fp string) int {
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i] == fp {
			return len(r.history) - i
		}
	}
	return 0
}
