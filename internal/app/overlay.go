//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifeca/internal/core"
)

const (
	overlayPadding    = 6
	overlayLineHeight = 14
)

var (
	overlayText  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	overlayPanel = color.RGBA{A: 0xb0}
)

// Overlay prints run parameters in the top-left corner.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay returns a visible overlay.
func NewOverlay() *Overlay {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &Overlay{visible: true, pixel: px}
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw renders the snapshot plus the current pacing state.
func (o *Overlay) Draw(screen *ebiten.Image, snapshot core.ParameterSnapshot, tps int, paused bool) {
	if !o.visible {
		return
	}
	lines := snapshot.Lines()
	status := fmt.Sprintf("%d gen/s", tps)
	if paused {
		status = "paused (space resumes, n steps)"
	}
	lines = append(lines, status)

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		width = max(width, len(line)*face.Advance)
	}
	height := len(lines)*overlayLineHeight + overlayPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*overlayPadding), float64(height))
	op.ColorScale.ScaleWithColor(overlayPanel)
	screen.DrawImage(o.pixel, op)

	for i, line := range lines {
		text.Draw(screen, line, face, overlayPadding, overlayPadding+(i+1)*overlayLineHeight-3, overlayText)
	}
}
