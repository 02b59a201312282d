package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/gridsketch/internal/palette"
	"github.com/san-kum/gridsketch/internal/render"
	"github.com/san-kum/gridsketch/internal/scene"
)

// svgSurface is a render.Surface that emits SVG elements.
type svgSurface struct {
	sb strings.Builder
}

func fill(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf(`fill="%s"`, palette.Hex(c))
	}
	return fmt.Sprintf(`fill="%s" fill-opacity="%.3f"`, palette.Hex(c), float64(c.A)/255)
}

func (s *svgSurface) Background(c color.NRGBA) {
	s.sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" %s/>
`, fill(c)))
}

func (s *svgSurface) Circle(x, y, d float64, c color.NRGBA) {
	s.sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" %s/>
`, x, y, d/2, fill(c)))
}

func (s *svgSurface) Square(x, y, side float64, c color.NRGBA) {
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" %s/>
`, x-side/2, y-side/2, side, side, fill(c)))
}

// SVG renders a scene as a standalone SVG document in scene units.
func SVG(sc *scene.Scene) string {
	if sc == nil {
		return ""
	}

	s := &svgSurface{}
	s.sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, sc.CanvasSize, sc.CanvasSize, sc.CanvasSize, sc.CanvasSize))

	render.New(sc).Draw(s)

	s.sb.WriteString("</svg>\n")
	return s.sb.String()
}

func WriteSVG(w io.Writer, sc *scene.Scene, _ int) error {
	_, err := io.WriteString(w, SVG(sc))
	return err
}
