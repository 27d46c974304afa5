//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifeca/internal/config"
	"lifeca/internal/core"
	"lifeca/internal/render"
	"lifeca/internal/sim"
	"lifeca/pkg/life"
)

// Game adapts a board to the ebiten.Game interface.
type Game struct {
	cfg     *config.Config
	board   *life.Board
	painter *render.GridPainter
	overlay *Overlay
	pacer   *core.FixedStep

	block            int
	offsetX, offsetY int

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided board. Draw mode starts paused so
// cells can be painted before the first generation.
func New(cfg *config.Config, board *life.Board) *Game {
	size := board.Size()
	return &Game{
		cfg:     cfg,
		board:   board,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: NewOverlay(),
		pacer:   core.NewFixedStep(cfg.TPS),
		block:   cfg.MinBlock,
		paused:  cfg.Draw,
	}
}

// Board returns the board being displayed.
func (g *Game) Board() *life.Board { return g.board }

// Update handles input and advances the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.pacer.SetTPS(g.pacer.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.pacer.SetTPS(g.pacer.TPS() / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay.Toggle()
	}
	g.paint()

	switch {
	case g.tickOnce:
		g.board.Step()
		g.tickOnce = false
	case !g.paused:
		for n := g.pacer.Due(time.Now()); n > 0; n-- {
			g.board.Step()
		}
	}
	return nil
}

// paint applies mouse input in draw mode: left paints live cells, right
// paints dead ones.
func (g *Game) paint() {
	if !g.cfg.Draw {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	px, py := ebiten.CursorPosition()
	x, y := render.CellAt(px, py, g.offsetX, g.offsetY, g.block)
	g.board.SetCell(x, y, left)
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	colors := g.cfg.Colors
	screen.Fill(colors.Background)
	g.painter.Blit(screen, g.board, colors.Live, colors.Dead, g.block, g.offsetX, g.offsetY)

	snapshot := sim.Describe(g.cfg, g.board)
	g.overlay.Draw(screen, snapshot, g.pacer.TPS(), g.paused)
}

// Layout sizes cells to the window and centres the board.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.board.Size()
	g.block = render.BlockSize(outsideWidth, outsideHeight, size.W, size.H, g.cfg.MinBlock)
	g.offsetX, g.offsetY = render.Offset(outsideWidth, outsideHeight, size, g.block)
	return outsideWidth, outsideHeight
}
