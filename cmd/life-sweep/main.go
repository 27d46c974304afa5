package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"lifeca/internal/config"
	"lifeca/internal/sim"
	"lifeca/pkg/boardio"
	"lifeca/pkg/life"
)

type scenarioResult struct {
	seed int64
	res  sim.Result
}

func (s scenarioResult) String() string {
	outcome := "running"
	switch {
	case s.res.Extinct:
		outcome = "extinct"
	case s.res.Period == 1:
		outcome = "still"
	case s.res.Period > 1:
		outcome = fmt.Sprintf("period %d", s.res.Period)
	}
	return fmt.Sprintf("seed=%d gens=%d pop=%d avg=%.1f peak=%d %s",
		s.seed, s.res.Generations, s.res.FinalPopulation, s.res.Stats.AveragePopulation, s.res.Stats.PeakPopulation, outcome)
}

func main() {
	log.SetPrefix("life-sweep: ")
	log.SetFlags(0)

	size := flag.String("size", "64x64", "board size as WIDTHxHEIGHT")
	rules := flag.String("rules", "B3/S23", "rule in B/S notation or a preset name")
	seeds := flag.Int("seeds", 256, "number of seeds to evaluate")
	first := flag.Int64("first-seed", 1, "first seed of the sweep")
	steps := flag.Int("steps", 2000, "generation limit per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of boards simulated at once")
	top := flag.Int("top", 5, "number of results to print")
	save := flag.String("save", "", "save the longest-lived seed's initial board to this path")
	flag.Parse()

	boardSize, err := config.ParseSize(*size)
	if err != nil {
		log.Fatal(err)
	}
	ruleSet, err := life.LookupRules(*rules)
	if err != nil {
		log.Fatal(err)
	}
	if *seeds < 1 || *workers < 1 || *steps < 1 {
		log.Fatal("-seeds, -workers and -steps must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds of %s %dx%d (%d workers, %d steps)\n",
		*seeds, ruleSet, boardSize.W, boardSize.H, *workers, *steps)

	var (
		mu  sync.Mutex
		all = make([]scenarioResult, 0, *seeds)
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)

	start := time.Now()
	for i := 0; i < *seeds; i++ {
		seed := *first + int64(i)
		g.Go(func() error {
			board := life.NewRandom(boardSize.W, boardSize.H, ruleSet, seed)
			res, err := sim.NewRunner(board).Run(ctx, *steps)
			if err != nil {
				return err
			}
			mu.Lock()
			all = append(all, scenarioResult{seed: seed, res: res})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("sweep stopped early: %v", err)
	}
	if len(all) == 0 {
		log.Fatal("no seeds finished")
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].res.Generations != all[j].res.Generations {
			return all[i].res.Generations > all[j].res.Generations
		}
		return all[i].seed < all[j].seed
	})

	settled := 0
	for _, r := range all {
		if r.res.Settled() {
			settled++
		}
	}

	fmt.Printf("\nTop %d results (elapsed %s, %d/%d settled):\n",
		min(*top, len(all)), time.Since(start).Round(time.Millisecond), settled, len(all))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}

	if *save != "" {
		best := life.NewRandom(boardSize.W, boardSize.H, ruleSet, all[0].seed)
		if err := boardio.Save(*save, best); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nSaved seed %d to %s\n", all[0].seed, *save)
	}
}
