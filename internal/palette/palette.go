package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/gridsketch/internal/random"
)

var ErrInvalidColor = errors.New("palette: invalid color")

// Selector is a named source of related colors.
type Selector interface {
	Name() string
	ColorNames() []string
	HasPalette() bool
	Color(r random.Source) color.NRGBA
}

// Swatch is one named entry of a palette.
type Swatch struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// Palette picks uniformly among a fixed set of swatches.
type Palette struct {
	name   string
	names  []string
	colors []color.NRGBA
}

// New builds a palette from hex swatches. It fails on an empty swatch list or
// an unparsable hex value.
func New(name string, swatches []Swatch) (*Palette, error) {
	if len(swatches) == 0 {
		return nil, fmt.Errorf("%w: palette %q has no colors", ErrInvalidColor, name)
	}
	p := &Palette{
		name:   name,
		names:  make([]string, len(swatches)),
		colors: make([]color.NRGBA, len(swatches)),
	}
	for i, s := range swatches {
		c, err := ParseHex(s.Hex)
		if err != nil {
			return nil, fmt.Errorf("palette %q, color %q: %w", name, s.Name, err)
		}
		p.names[i] = s.Name
		p.colors[i] = c
	}
	return p, nil
}

func (p *Palette) Name() string { return p.name }

func (p *Palette) ColorNames() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

func (p *Palette) HasPalette() bool { return true }

// Colors returns the palette entries in declaration order.
func (p *Palette) Colors() []color.NRGBA {
	out := make([]color.NRGBA, len(p.colors))
	copy(out, p.colors)
	return out
}

func (p *Palette) Color(r random.Source) color.NRGBA {
	return p.colors[r.Int(0, len(p.colors)-1)]
}

// Default generates an unconstrained random opaque color. It stands in when no
// palette is available.
type Default struct{}

func (Default) Name() string         { return "default" }
func (Default) ColorNames() []string { return nil }
func (Default) HasPalette() bool     { return false }

func (Default) Color(r random.Source) color.NRGBA {
	c := colorful.Hsv(r.Float(0, 360), r.Float(0.25, 1), r.Float(0.25, 1))
	red, green, blue := c.Clamped().RGB255()
	return color.NRGBA{R: red, G: green, B: blue, A: 255}
}

// ParseHex parses "#rrggbb" (or "#rgb") into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	red, green, blue := c.RGB255()
	return color.NRGBA{R: red, G: green, B: blue, A: 255}, nil
}

// Hex formats a color as "#rrggbb", dropping alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
