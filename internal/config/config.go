package config

import (
	"fmt"
	"os"

	"github.com/san-kum/gridsketch/internal/palette"
	"github.com/san-kum/gridsketch/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCanvasSize = 800
	DefaultDataDir    = ".gridsketch"
)

type Config struct {
	Canvas   CanvasConfig    `yaml:"canvas"`
	Grid     GridConfig      `yaml:"grid"`
	Shapes   ShapesConfig    `yaml:"shapes"`
	Cells    CellsConfig     `yaml:"cells"`
	Palette  string          `yaml:"palette"`
	Seed     int64           `yaml:"seed"`
	DataDir  string          `yaml:"data_dir"`
	Palettes []PaletteConfig `yaml:"palettes"`
}

// CanvasConfig sizes the output. Size wins when set; otherwise the canvas is
// the square fitting Width x Height, falling back to DefaultCanvasSize.
type CanvasConfig struct {
	Size   int `yaml:"size"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GridConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type ShapesConfig struct {
	CircleProbability float64 `yaml:"circle_probability"`
}

type CellsConfig struct {
	Alpha         int     `yaml:"alpha"`
	MinSizeFactor float64 `yaml:"min_size_factor"`
	MaxSizeFactor float64 `yaml:"max_size_factor"`
}

type PaletteConfig struct {
	Name   string           `yaml:"name"`
	Colors []palette.Swatch `yaml:"colors"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid:   GridConfig{Min: scene.DefaultMinGrid, Max: scene.DefaultMaxGrid},
		Shapes: ShapesConfig{CircleProbability: scene.DefaultCircleProbability},
		Cells: CellsConfig{
			Alpha:         scene.DefaultAlpha,
			MinSizeFactor: scene.DefaultMinSizeFactor,
			MaxSizeFactor: scene.DefaultMaxSizeFactor,
		},
		DataDir: DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(DefaultConfig(), path)
}

// LoadOnto overlays the fields set in the YAML file at path onto base and
// validates the result. Fields the file leaves out keep their base values.
func LoadOnto(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Cells.Alpha < 0 || c.Cells.Alpha > 255 {
		return fmt.Errorf("%w: alpha %d outside [0, 255]", scene.ErrInvalidParams, c.Cells.Alpha)
	}
	if c.Canvas.Size < 0 || c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return fmt.Errorf("%w: negative canvas dimension", scene.ErrInvalidParams)
	}
	for _, p := range c.Palettes {
		if _, err := palette.New(p.Name, p.Colors); err != nil {
			return err
		}
	}
	return c.Params().Validate()
}

func (c *Config) Params() scene.Params {
	return scene.Params{
		MinGrid:           c.Grid.Min,
		MaxGrid:           c.Grid.Max,
		CircleProbability: c.Shapes.CircleProbability,
		Alpha:             uint8(c.Cells.Alpha),
		MinSizeFactor:     c.Cells.MinSizeFactor,
		MaxSizeFactor:     c.Cells.MaxSizeFactor,
		Palette:           c.Palette,
	}
}

// CanvasSize resolves the square canvas side in pixels.
func (c *Config) CanvasSize() int {
	if c.Canvas.Size > 0 {
		return c.Canvas.Size
	}
	if c.Canvas.Width > 0 && c.Canvas.Height > 0 {
		return int(scene.CanvasSize(float64(c.Canvas.Width), float64(c.Canvas.Height)))
	}
	return DefaultCanvasSize
}

// Registry returns the built-in palettes plus the configured ones. Configured
// palettes replace built-ins of the same name.
func (c *Config) Registry() (*palette.Registry, error) {
	reg := palette.NewRegistry(palette.Builtin()...)
	for _, p := range c.Palettes {
		sel, err := palette.New(p.Name, p.Colors)
		if err != nil {
			return nil, err
		}
		reg.Add(sel)
	}
	return reg, nil
}
