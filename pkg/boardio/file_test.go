package boardio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lifeca/pkg/life"
)

func TestDetectFormat(t *testing.T) {
	cases := map[string]Format{
		"\x89PNG\r\n\x1a\nrest": FormatPNG,
		"BM\x00\x00":            FormatBMP,
		"II*\x00....":           FormatTIFF,
		"MM\x00*....":           FormatTIFF,
		"X X\n X ":              FormatText,
		"":                      FormatText,
		"\x89PN":                FormatText,
	}
	for head, want := range cases {
		if got := DetectFormat([]byte(head)); got != want {
			t.Fatalf("DetectFormat(%q)=%s, expected %s", head, got, want)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]Format{
		"out.png":          FormatPNG,
		"OUT.PNG":          FormatPNG,
		"dir.png/out.txt":  FormatText,
		"board.bmp":        FormatBMP,
		"board.tif":        FormatTIFF,
		"board.TIFF":       FormatTIFF,
		"board":            FormatText,
		"board.life":       FormatText,
		"/tmp/x/board.png": FormatPNG,
	}
	for path, want := range cases {
		if got := FormatForPath(path); got != want {
			t.Fatalf("FormatForPath(%q)=%s, expected %s", path, got, want)
		}
	}
}

func TestLoadSaveText(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	const text = "XX   X \n   X  X\n XXXXX \nX     X"
	if err := os.WriteFile(in, []byte(text), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b, err := Load(in, life.Conway)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s := b.Size(); s.W != 7 || s.H != 4 {
		t.Fatalf("size=%+v, expected 7x4", s)
	}

	out := filepath.Join(dir, "out.txt")
	if err := Save(out, b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != text {
		t.Fatalf("saved %q, expected %q", got, text)
	}
}

func TestLoadDetectsRasterBySignature(t *testing.T) {
	dir := t.TempDir()
	src := life.New(3, 2, life.Conway)
	src.SetCell(0, 0, true)
	src.SetCell(2, 1, true)

	// The extension says text but the content is a PNG.
	path := filepath.Join(dir, "board.png")
	if err := Save(path, src); err != nil {
		t.Fatalf("Save: %v", err)
	}
	renamed := filepath.Join(dir, "board.txt")
	if err := os.Rename(path, renamed); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	b, err := Load(renamed, life.Conway)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := encodeText(t, b); got != "X  \n  X" {
		t.Fatalf("loaded %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.txt"), life.Conway)
	if !errors.Is(err, ErrFileOpen) {
		t.Fatalf("missing file: expected ErrFileOpen, got %v", err)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err = Load(empty, life.Conway)
	if !errors.Is(err, ErrMalformedBoardFile) {
		t.Fatalf("empty file: expected ErrMalformedBoardFile, got %v", err)
	}

	ragged := filepath.Join(dir, "ragged.txt")
	if err := os.WriteFile(ragged, []byte("XX\nX"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err = Load(ragged, life.Conway)
	if !errors.Is(err, ErrMalformedBoardFile) {
		t.Fatalf("ragged file: expected ErrMalformedBoardFile, got %v", err)
	}
}

func TestSaveToMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")
	err := Save(path, life.New(2, 2, life.Conway))
	if !errors.Is(err, ErrFileOpen) {
		t.Fatalf("expected ErrFileOpen, got %v", err)
	}
}
