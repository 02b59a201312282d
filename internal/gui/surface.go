package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// surface paints onto the current raylib frame.
type surface struct{}

func toRL(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (surface) Background(c color.NRGBA) {
	rl.ClearBackground(toRL(c))
}

func (surface) Circle(x, y, d float64, c color.NRGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(d/2), toRL(c))
}

func (surface) Square(x, y, side float64, c color.NRGBA) {
	h := float32(side / 2)
	rl.DrawRectangleV(
		rl.NewVector2(float32(x)-h, float32(y)-h),
		rl.NewVector2(float32(side), float32(side)),
		toRL(c),
	)
}
