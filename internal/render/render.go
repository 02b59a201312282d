// Package render paints a composed scene onto a drawing surface.
package render

import (
	"image/color"

	"github.com/san-kum/gridsketch/internal/scene"
)

// Surface is anything shapes can be painted on. Coordinates name the shape
// center; shapes are filled without an outline.
type Surface interface {
	Background(c color.NRGBA)
	Circle(x, y, d float64, c color.NRGBA)
	Square(x, y, side float64, c color.NRGBA)
}

// Renderer paints one scene. Every Draw produces the same image.
type Renderer struct {
	scene *scene.Scene
}

func New(s *scene.Scene) *Renderer {
	return &Renderer{scene: s}
}

// Draw clears the surface to the background and paints every cell in stored
// order.
func (r *Renderer) Draw(s Surface) {
	s.Background(r.scene.Background)
	for _, c := range r.scene.Cells {
		switch c.Shape {
		case scene.Circle:
			s.Circle(c.X, c.Y, c.Size, c.Color)
		case scene.Square:
			s.Square(c.X, c.Y, c.Size, c.Color)
		}
	}
}
