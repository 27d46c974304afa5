package boardio

import "github.com/pkg/errors"

var (
	// ErrFileOpen means a board file could not be read, decoded or written.
	ErrFileOpen = errors.New("board file cannot be opened")
	// ErrMalformedBoardFile means a text board breaks the glyph grid grammar.
	ErrMalformedBoardFile = errors.New("malformed board file")
	// ErrUnsupportedPixelValue means a raster board has a pixel that is
	// neither pure black nor pure white.
	ErrUnsupportedPixelValue = errors.New("board image must contain only black and white pixels")
)
