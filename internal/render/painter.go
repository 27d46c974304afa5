//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifeca/pkg/core"
)

// GridPainter uploads a board into a single RGBA image, one pixel per cell,
// and draws it scaled up to the block size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws g onto dst with its top-left corner at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, g core.Grid, on, off color.Color, block, x, y int) {
	if size := g.Size(); size.W != gp.w || size.H != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, g, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(block), float64(block))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
