package viz

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// upperHalf paints the upper pixel as foreground, the lower as background.
const upperHalf = '▀'

// Canvas packs two vertically stacked pixels into each terminal cell.
type Canvas struct {
	Width, Height int
	Upper, Lower  [][]color.RGBA
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Upper: make([][]color.RGBA, h), Lower: make([][]color.RGBA, h)}
	for i := 0; i < h; i++ {
		c.Upper[i] = make([]color.RGBA, w)
		c.Lower[i] = make([]color.RGBA, w)
	}
	return c
}

// FromImage nearest-samples img into a canvas of cols x rows cells, which is
// cols x 2*rows pixels.
func FromImage(img image.Image, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	b := img.Bounds()
	if cols == 0 || rows == 0 || b.Empty() {
		return c
	}
	px := func(x, y int) color.RGBA {
		sx := b.Min.X + x*b.Dx()/cols
		sy := b.Min.Y + y*b.Dy()/(rows*2)
		return color.RGBAModel.Convert(img.At(sx, sy)).(color.RGBA)
	}
	for y := 0; y < rows*2; y++ {
		for x := 0; x < cols; x++ {
			c.Set(x, y, px(x, y))
		}
	}
	return c
}

// Set colors the pixel at (x, y) where y counts half-cells.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height*2 {
		return
	}
	if y%2 == 0 {
		c.Upper[y/2][x] = col
	} else {
		c.Lower[y/2][x] = col
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			b.WriteString(lipgloss.NewStyle().
				Foreground(hexColor(c.Upper[row][col])).
				Background(hexColor(c.Lower[row][col])).
				Render(string(upperHalf)))
		}
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
