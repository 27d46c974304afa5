package render

import (
	"image/color"

	"lifeca/pkg/core"
)

// fillBinaryRGBA converts the live cells of g into RGBA pixels in buf, one
// pixel per cell in row-major order.
func fillBinaryRGBA(buf []byte, g core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			if g.Alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// BlockSize returns the side of the largest square cell that lets a board of
// boardW x boardH fit in a window, but never less than minBlock.
func BlockSize(windowW, windowH, boardW, boardH, minBlock int) int {
	if minBlock < 1 {
		minBlock = 1
	}
	if boardW <= 0 || boardH <= 0 {
		return minBlock
	}
	return max(min(windowW/boardW, windowH/boardH), minBlock)
}

// CellAt maps a window pixel to board coordinates for a board drawn at
// (offsetX, offsetY) with the given block size. The result may lie outside
// the board; board writes ignore such coordinates.
func CellAt(px, py, offsetX, offsetY, block int) (int, int) {
	if block < 1 {
		block = 1
	}
	return floorDiv(px-offsetX, block), floorDiv(py-offsetY, block)
}

// Offset centres a board of the given size and block in a window.
func Offset(windowW, windowH int, size core.Size, block int) (int, int) {
	return (windowW - size.W*block) / 2, (windowH - size.H*block) / 2
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
