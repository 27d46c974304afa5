package boardio

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"lifeca/pkg/core"
	"lifeca/pkg/life"
)

var (
	colorLive = color.Gray{Y: 0xff}
	colorDead = color.Gray{Y: 0x00}

	boardPalette = color.Palette{colorDead, colorLive}
)

// DecodeRaster reads a PNG, BMP or TIFF image where every white pixel is a
// live cell and every black pixel a dead one.
func DecodeRaster(r io.Reader, rules life.Rules) (*life.Board, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(ErrFileOpen, "[DecodeRaster] decode failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, errors.Wrapf(ErrFileOpen, "[DecodeRaster] %s image has no pixels", format)
	}

	b := life.New(bounds.Dx(), bounds.Dy(), rules)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			alive, ok := pixelValue(img.At(x, y))
			if !ok {
				return nil, errors.Wrapf(ErrUnsupportedPixelValue,
					"[DecodeRaster] pixel (%d,%d) is %v", x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
			}
			b.SetCell(x-bounds.Min.X, y-bounds.Min.Y, alive)
		}
	}
	return b, nil
}

// pixelValue maps opaque pure white to alive and opaque pure black to dead.
func pixelValue(c color.Color) (alive, ok bool) {
	r, g, b, a := c.RGBA()
	if a != 0xffff {
		return false, false
	}
	switch {
	case r == 0xffff && g == 0xffff && b == 0xffff:
		return true, true
	case r == 0 && g == 0 && b == 0:
		return false, true
	default:
		return false, false
	}
}

// EncodeRaster writes g as a two-colour paletted image in the given format.
func EncodeRaster(w io.Writer, g core.Grid, format Format) error {
	img := rasterImage(g)

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Errorf("[EncodeRaster] %s is not a raster format", format)
	}
	if err != nil {
		return errors.Wrapf(ErrFileOpen, "[EncodeRaster] %s encode failed: %v", format, err)
	}
	return nil
}

func rasterImage(g core.Grid) *image.Paletted {
	size := g.Size()
	img := image.NewPaletted(image.Rect(0, 0, size.W, size.H), boardPalette)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if g.Alive(x, y) {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}
