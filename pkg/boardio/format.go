// Package boardio reads and writes boards as text glyph grids or two-colour
// raster images.
package boardio

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format identifies an on-disk board representation.
type Format int

const (
	FormatText Format = iota
	FormatPNG
	FormatBMP
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "text"
	}
}

// Raster reports whether f is an image format.
func (f Format) Raster() bool { return f != FormatText }

var signatures = []struct {
	magic  []byte
	format Format
}{
	{[]byte("\x89PNG\r\n\x1a\n"), FormatPNG},
	{[]byte("BM"), FormatBMP},
	{[]byte("II*\x00"), FormatTIFF},
	{[]byte("MM\x00*"), FormatTIFF},
}

// DetectFormat inspects the leading bytes of a file. Anything without a known
// image signature is text.
func DetectFormat(head []byte) Format {
	for _, sig := range signatures {
		if bytes.HasPrefix(head, sig.magic) {
			return sig.format
		}
	}
	return FormatText
}

// FormatForPath picks the output format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return FormatText
	}
}
