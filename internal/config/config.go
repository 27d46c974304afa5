package config

import (
	"encoding/json"
	"flag"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"lifeca/pkg/core"
	"lifeca/pkg/life"
)

// Config holds the grid, file and window parameters for a run. The string
// fields are parsed into their typed counterparts by Finalize.
type Config struct {
	Size        string `json:"size"`
	RuleSpec    string `json:"rules"`
	MinBlock    int    `json:"min_block"`
	Draw        bool   `json:"draw"`
	InputPath   string `json:"input"`
	OutputPath  string `json:"output"`
	Seed        int64  `json:"seed"`
	TPS         int    `json:"tps"`
	Generations int    `json:"generations"`
	Window      string `json:"window"`
	Fullscreen  bool   `json:"fullscreen"`
	ColorSpec   string `json:"colors"`

	ConfigPath string `json:"-"`

	Board      core.Size  `json:"-"`
	WindowSize core.Size  `json:"-"`
	Rules      life.Rules `json:"-"`
	Colors     Colors     `json:"-"`
}

// Colors holds the renderer palette.
type Colors struct {
	Live       color.RGBA
	Dead       color.RGBA
	Background color.RGBA
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Size:      "100x100",
		RuleSpec:  "B3/S23",
		MinBlock:  1,
		TPS:       10,
		Window:    "800x800",
		ColorSpec: "#ffffff,#000000,#202020",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON file with default settings; flags override it")
	fs.StringVar(&c.Size, "size", c.Size, "board size as WIDTHxHEIGHT (ignored when -in is set)")
	fs.StringVar(&c.RuleSpec, "rules", c.RuleSpec, "rule in B/S notation or a preset: "+strings.Join(life.Presets(), ", "))
	fs.IntVar(&c.MinBlock, "block", c.MinBlock, "minimum cell size in pixels")
	fs.BoolVar(&c.Draw, "draw", c.Draw, "start from a blank board and paint cells with the mouse")
	fs.StringVar(&c.InputPath, "in", c.InputPath, "load the initial board from a text or image file")
	fs.StringVar(&c.OutputPath, "out", c.OutputPath, "save the final board on exit (.png/.bmp/.tif for images, text otherwise)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill (0 picks one from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Generations, "generations", c.Generations, "headless: number of generations to run (0 runs until the board settles)")
	fs.StringVar(&c.Window, "window", c.Window, "window size as WIDTHxHEIGHT")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "start in fullscreen mode")
	fs.StringVar(&c.ColorSpec, "colors", c.ColorSpec, "live,dead,background colours as hex")
}

// Parse loads the optional JSON file named by -config and then applies the
// command line on top of it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Parse] invalid arguments")
	}
	if c.ConfigPath != "" {
		fromFile, err := LoadFile(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		// Re-parse so explicit flags win over the file.
		fromFile.ConfigPath = c.ConfigPath
		c = fromFile
		overrides := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
		overrides.SetOutput(io.Discard)
		c.Bind(overrides)
		if err := overrides.Parse(args); err != nil {
			return nil, errors.Wrap(err, "[Parse] invalid arguments")
		}
	}
	if err := c.Finalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile overlays a JSON config file on the defaults.
func LoadFile(path string) (*Config, error) {
	c := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return c, nil
}

// Finalize parses the string settings and validates the result.
func (c *Config) Finalize() error {
	var err error
	if c.Board, err = ParseSize(c.Size); err != nil {
		return errors.WithMessage(err, "[Finalize] -size")
	}
	if c.WindowSize, err = ParseSize(c.Window); err != nil {
		return errors.WithMessage(err, "[Finalize] -window")
	}
	if c.Rules, err = life.LookupRules(c.RuleSpec); err != nil {
		return errors.WithMessage(err, "[Finalize] -rules")
	}
	if c.Colors, err = ParseColors(c.ColorSpec); err != nil {
		return errors.WithMessage(err, "[Finalize] -colors")
	}
	if c.MinBlock < 1 {
		return errors.Errorf("[Finalize] -block must be at least 1, got %d", c.MinBlock)
	}
	if c.TPS < 1 {
		return errors.Errorf("[Finalize] -tps must be at least 1, got %d", c.TPS)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Finalize] -generations must not be negative, got %d", c.Generations)
	}
	return nil
}

// ParseSize parses "WIDTHxHEIGHT" with both dimensions positive.
func ParseSize(s string) (core.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return core.Size{}, errors.Errorf("[ParseSize] %q is not WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return core.Size{}, errors.Errorf("[ParseSize] %q has an invalid width", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return core.Size{}, errors.Errorf("[ParseSize] %q has an invalid height", s)
	}
	return core.Size{W: width, H: height}, nil
}

// ParseColors parses "live,dead,background" where each entry is #rgb or
// #rrggbb. Background may be omitted and then matches dead.
func ParseColors(s string) (Colors, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Colors{}, errors.Errorf("[ParseColors] %q must list two or three colours", s)
	}
	parsed := make([]color.RGBA, len(parts))
	for i, p := range parts {
		c, err := parseHexColor(strings.TrimSpace(p))
		if err != nil {
			return Colors{}, errors.WithMessagef(err, "[ParseColors] %q", s)
		}
		parsed[i] = c
	}
	out := Colors{Live: parsed[0], Dead: parsed[1], Background: parsed[1]}
	if len(parsed) == 3 {
		out.Background = parsed[2]
	}
	return out, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, errors.Errorf("colour %q is not #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Errorf("colour %q is not hexadecimal", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
