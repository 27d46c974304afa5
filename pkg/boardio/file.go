package boardio

import (
	"bytes"
	"os"

	"github.com/pkg/errors"

	"lifeca/pkg/core"
	"lifeca/pkg/life"
)

// Load reads a board from path. The format is taken from the file's leading
// bytes, falling back to text when no image signature matches.
func Load(path string, rules life.Rules) (*life.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrFileOpen, "[Load] failed to read %q: %v", path, err)
	}

	format := DetectFormat(data)
	var b *life.Board
	if format.Raster() {
		b, err = DecodeRaster(bytes.NewReader(data), rules)
	} else {
		b, err = DecodeText(bytes.NewReader(data), rules)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "[Load] %s board %q", format, path)
	}
	return b, nil
}

// Save writes g to path, choosing the format from the path's extension.
func Save(path string, g core.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrFileOpen, "[Save] failed to create %q: %v", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(ErrFileOpen, "[Save] failed to close %q: %v", path, cerr)
		}
	}()

	format := FormatForPath(path)
	if format.Raster() {
		err = EncodeRaster(f, g, format)
	} else {
		err = EncodeText(f, g)
	}
	if err != nil {
		return errors.WithMessagef(err, "[Save] %s board %q", format, path)
	}
	return nil
}
