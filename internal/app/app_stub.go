//go:build !ebiten

package app

import (
	"fmt"

	"lifeca/internal/config"
	"lifeca/pkg/life"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct {
	board *life.Board
}

// New returns a placeholder that only holds the board; the window needs the
// ebiten build tag.
func New(_ *config.Config, board *life.Board) *Game {
	return &Game{board: board}
}

// Board returns the wrapped board.
func (g *Game) Board() *life.Board { return g.board }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
