package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)

	if n := fs.Due(start); n != 0 {
		t.Fatalf("first call should only prime the clock, got %d", n)
	}
	if n := fs.Due(start.Add(50 * time.Millisecond)); n != 0 {
		t.Fatalf("half a step elapsed, got %d", n)
	}
	if n := fs.Due(start.Add(100 * time.Millisecond)); n != 1 {
		t.Fatalf("one step elapsed, got %d", n)
	}
	if n := fs.Due(start.Add(350 * time.Millisecond)); n != 2 {
		t.Fatalf("two and a half steps elapsed, got %d", n)
	}
	if n := fs.Due(start.Add(400 * time.Millisecond)); n != 1 {
		t.Fatalf("leftover half step plus half step, got %d", n)
	}
}

func TestFixedStepCatchUpIsBounded(t *testing.T) {
	fs := NewFixedStep(100)
	start := time.Unix(0, 0)
	fs.Due(start)
	if n := fs.Due(start.Add(5 * time.Second)); n != maxCatchUp {
		t.Fatalf("stall should be capped at %d, got %d", maxCatchUp, n)
	}
	if n := fs.Due(start.Add(5*time.Second + 5*time.Millisecond)); n != 0 {
		t.Fatalf("accumulator should be dropped after a capped stall, got %d", n)
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 1 {
		t.Fatalf("tps=%d, expected clamp to 1", fs.TPS())
	}
	fs.SetTPS(25)
	if fs.TPS() != 25 {
		t.Fatalf("tps=%d", fs.TPS())
	}
}
