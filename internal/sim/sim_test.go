package sim

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"lifeca/internal/config"
	"lifeca/pkg/boardio"
	"lifeca/pkg/core"
	"lifeca/pkg/life"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := config.NewConfig()
	c.Size = "12x8"
	c.Seed = 11
	if err := c.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return c
}

func TestNewBoardPolicy(t *testing.T) {
	cfg := testConfig(t)

	random, err := NewBoard(cfg)
	if err != nil {
		t.Fatalf("NewBoard random: %v", err)
	}
	if random.Size() != (core.Size{W: 12, H: 8}) {
		t.Fatalf("random size=%+v", random.Size())
	}
	again, _ := NewBoard(cfg)
	if random.Fingerprint() != again.Fingerprint() {
		t.Fatal("random fill must be reproducible for a fixed seed")
	}

	cfg.Draw = true
	blank, err := NewBoard(cfg)
	if err != nil {
		t.Fatalf("NewBoard draw: %v", err)
	}
	if blank.Population() != 0 {
		t.Fatalf("draw mode board has %d live cells", blank.Population())
	}

	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("X  \n X \n  X"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg.InputPath = path
	loaded, err := NewBoard(cfg)
	if err != nil {
		t.Fatalf("NewBoard input: %v", err)
	}
	if loaded.Size() != (core.Size{W: 3, H: 3}) || loaded.Population() != 3 {
		t.Fatalf("input board size=%+v population=%d", loaded.Size(), loaded.Population())
	}
}

func TestNewBoardInputErrorsAbort(t *testing.T) {
	cfg := testConfig(t)
	cfg.InputPath = filepath.Join(t.TempDir(), "missing.txt")
	b, err := NewBoard(cfg)
	if !errors.Is(err, boardio.ErrFileOpen) {
		t.Fatalf("expected ErrFileOpen, got %v", err)
	}
	if b != nil {
		t.Fatal("no board may be returned on a load error")
	}
}

func TestTeardown(t *testing.T) {
	cfg := testConfig(t)
	b := life.New(2, 1, cfg.Rules)
	b.SetCell(1, 0, true)

	if err := Teardown(b, cfg); err != nil {
		t.Fatalf("Teardown without output: %v", err)
	}

	cfg.OutputPath = filepath.Join(t.TempDir(), "out.txt")
	if err := Teardown(b, cfg); err != nil {
		t.Fatalf("Teardown: %v", err)
	}
	got, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != " X" {
		t.Fatalf("saved %q", got)
	}

	cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "out.png")
	if err := Teardown(b, cfg); !errors.Is(err, boardio.ErrFileOpen) {
		t.Fatalf("expected ErrFileOpen, got %v", err)
	}
}

func TestRunnerDetectsStillLife(t *testing.T) {
	b := life.New(4, 4, life.Conway)
	b.SetCell(1, 1, true)
	b.SetCell(2, 1, true)
	b.SetCell(1, 2, true)
	b.SetCell(2, 2, true)

	res, err := NewRunner(b).Run(context.Background(), 100)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Period != 1 || res.Generations != 1 || res.FinalPopulation != 4 {
		t.Fatalf("block result %+v", res)
	}
	if !res.Settled() {
		t.Fatal("a still life is settled")
	}
}

func TestRunnerDetectsBlinker(t *testing.T) {
	b := life.New(5, 5, life.Conway)
	b.SetCell(1, 2, true)
	b.SetCell(2, 2, true)
	b.SetCell(3, 2, true)

	res, err := NewRunner(b).Run(context.Background(), 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Period != 2 || res.Generations != 2 {
		t.Fatalf("blinker result %+v", res)
	}
	if res.Stats.PeakPopulation != 3 || math.Abs(res.Stats.AveragePopulation-3) > 1e-9 {
		t.Fatalf("blinker stats %+v", res.Stats)
	}
}

func TestRunnerDetectsExtinction(t *testing.T) {
	b := life.New(3, 3, life.Conway)
	b.SetCell(1, 1, true)

	res, err := NewRunner(b).Run(context.Background(), 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Extinct || res.Generations != 1 || res.FinalPopulation != 0 {
		t.Fatalf("lonely cell result %+v", res)
	}
}

func TestRunnerStopsAtLimit(t *testing.T) {
	// A glider on a large board keeps changing for many generations.
	b := life.New(40, 40, life.Conway)
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		b.SetCell(p[0], p[1], true)
	}

	res, err := NewRunner(b).Run(context.Background(), 8)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Generations != 8 || res.Settled() || b.Generation() != 8 {
		t.Fatalf("glider result %+v generation %d", res, b.Generation())
	}
	if res.FinalPopulation != 5 {
		t.Fatalf("glider population %d", res.FinalPopulation)
	}
}

func TestRunnerHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := life.NewRandom(10, 10, life.Conway, 5)
	res, err := NewRunner(b).Run(ctx, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.Generations != 0 {
		t.Fatalf("cancelled run advanced %d generations", res.Generations)
	}
}

func TestDescribe(t *testing.T) {
	cfg := testConfig(t)
	b := life.New(12, 8, cfg.Rules)
	b.SetCell(0, 0, true)

	snap := Describe(cfg, b)
	expects := map[string]string{
		"w":          "12",
		"h":          "8",
		"population": "1",
		"rules":      "B3/S23",
		"source":     "random",
		"output":     "none",
		"seed":       "11",
	}
	for key, want := range expects {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s=%q, expected %q", key, p.Value, want)
		}
	}
	if lines := snap.Lines(); len(lines) != 3 {
		t.Fatalf("expected 3 groups, got %v", lines)
	}
}
