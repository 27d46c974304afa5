package boardio

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"lifeca/pkg/core"
	"lifeca/pkg/life"
)

const (
	glyphLive = 'X'
	glyphDead = ' '
)

// DecodeText parses a glyph grid. The board takes its width from the first
// row and its height from the row count.
func DecodeText(r io.Reader, rules life.Rules) (*life.Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ErrFileOpen, "[DecodeText] read failed: %v", err)
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrMalformedBoardFile, "[DecodeText] the board file is empty")
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	width := len(lines[0])
	for y, line := range lines {
		if line == "" {
			return nil, errors.Wrapf(ErrMalformedBoardFile, "[DecodeText] line %d is empty", y+1)
		}
		if len(line) != width {
			return nil, errors.Wrapf(ErrMalformedBoardFile,
				"[DecodeText] line %d has %d cells, expected %d", y+1, len(line), width)
		}
		for x := 0; x < len(line); x++ {
			if c := line[x]; c != glyphLive && c != glyphDead {
				return nil, errors.Wrapf(ErrMalformedBoardFile,
					"[DecodeText] line %d column %d: %q is neither %q nor %q", y+1, x+1, c, glyphLive, glyphDead)
			}
		}
	}

	b := life.New(width, len(lines), rules)
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			b.SetCell(x, y, line[x] == glyphLive)
		}
	}
	return b, nil
}

// EncodeText writes one line of glyphs per row, separated by newlines, with
// no newline after the final row.
func EncodeText(w io.Writer, g core.Grid) error {
	size := g.Size()
	bw := bufio.NewWriter(w)
	for y := 0; y < size.H; y++ {
		if y > 0 {
			bw.WriteByte('\n')
		}
		for x := 0; x < size.W; x++ {
			if g.Alive(x, y) {
				bw.WriteByte(glyphLive)
			} else {
				bw.WriteByte(glyphDead)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrapf(ErrFileOpen, "[EncodeText] write failed: %v", err)
	}
	return nil
}
