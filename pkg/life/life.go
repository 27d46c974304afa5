package life

import (
	"crypto/md5"
	"fmt"

	"lifeca/pkg/core"
)

// Board is a bounded (non-wrapping) life-like automaton. cur holds the visible
// generation and nxt is scratch for the next one; both hold the same values
// whenever Step is not running.
type Board struct {
	w, h       int
	rules      Rules
	cur        []bool
	nxt        []bool
	generation int
}

var _ core.Automaton = (*Board)(nil)

// New returns an all-dead board with the provided dimensions.
func New(w, h int, rules Rules) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Board{
		w:     w,
		h:     h,
		rules: rules,
		cur:   make([]bool, w*h),
		nxt:   make([]bool, w*h),
	}
}

// NewRandom returns a board where every cell is alive with probability 1/2,
// drawn from an RNG seeded with seed.
func NewRandom(w, h int, rules Rules, seed int64) *Board {
	b := New(w, h, rules)
	rng := core.NewRNG(seed).Source()
	core.FillBool(rng, b.cur)
	copy(b.nxt, b.cur)
	return b
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "life " + b.rules.String() }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Rules returns the birth and survival sets.
func (b *Board) Rules() Rules { return b.rules }

// Generation returns how many times Step has run.
func (b *Board) Generation() int { return b.generation }

// SetCell writes alive into (x, y). Out-of-range coordinates are ignored.
func (b *Board) SetCell(x, y int, alive bool) {
	if !b.Size().Contains(x, y) {
		return
	}
	idx := x + y*b.w
	b.cur[idx] = alive
	b.nxt[idx] = alive
}

// Alive reports whether (x, y) is alive in the current generation. Cells
// outside the board are dead.
func (b *Board) Alive(x, y int) bool {
	if !b.Size().Contains(x, y) {
		return false
	}
	return b.cur[x+y*b.w]
}

// CountLiveNeighbours counts live cells in the Moore neighbourhood of (x, y)
// in the current generation. Positions outside the board are not counted.
func (b *Board) CountLiveNeighbours(x, y int) int {
	minX, maxX := max(0, x-1), min(b.w-1, x+1)
	minY, maxY := max(0, y-1), min(b.h-1, y+1)

	count := 0
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if b.cur[nx+ny*b.w] {
				count++
			}
		}
	}
	return count
}

// Step advances the board by one generation.
func (b *Board) Step() {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			idx := x + y*b.w
			alive := b.cur[idx]
			n := b.CountLiveNeighbours(x, y)

			next := alive
			switch {
			case alive && !b.rules.Survive.Has(n):
				next = false
			case !alive && b.rules.Birth.Has(n):
				next = true
			}
			b.nxt[idx] = next
		}
	}
	copy(b.cur, b.nxt)
	b.generation++
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	count := 0
	for _, alive := range b.cur {
		if alive {
			count++
		}
	}
	return count
}

// Fingerprint returns an md5 digest of the current generation.
func (b *Board) Fingerprint() string {
	h := md5.New()
	packed := make([]byte, (len(b.cur)+7)/8)
	for i, alive := range b.cur {
		if alive {
			packed[i/8] |= 1 << uint(i%8)
		}
	}
	h.Write(packed)
	return fmt.Sprintf("%x", h.Sum(nil))
}
