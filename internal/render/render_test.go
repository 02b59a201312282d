package render

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/san-kum/gridsketch/internal/scene"
)

type recorder struct {
	calls []string
}

func (r *recorder) Background(c color.NRGBA) {
	r.calls = append(r.calls, fmt.Sprintf("bg %d", c.R))
}

func (r *recorder) Circle(x, y, d float64, c color.NRGBA) {
	r.calls = append(r.calls, fmt.Sprintf("circle %.0f,%.0f %.0f a=%d", x, y, d, c.A))
}

func (r *recorder) Square(x, y, side float64, c color.NRGBA) {
	r.calls = append(r.calls, fmt.Sprintf("square %.0f,%.0f %.0f a=%d", x, y, side, c.A))
}

func testScene() *scene.Scene {
	red := color.NRGBA{R: 255, A: 180}
	return &scene.Scene{
		CanvasSize: 200,
		GridSize:   2,
		CellSize:   100,
		Background: scene.White,
		Cells: []scene.Cell{
			{X: 50, Y: 50, Size: 60, Shape: scene.Circle, Color: red},
			{X: 150, Y: 50, Size: 80, Shape: scene.Square, Color: red},
			{X: 50, Y: 150, Size: 100, Shape: scene.Square, Color: red},
			{X: 150, Y: 150, Size: 120, Shape: scene.Circle, Color: red},
		},
	}
}

func TestDrawOrder(t *testing.T) {
	rec := &recorder{}
	New(testScene()).Draw(rec)

	want := []string{
		"bg 255",
		"circle 50,50 60 a=180",
		"square 150,50 80 a=180",
		"square 50,150 100 a=180",
		"circle 150,150 120 a=180",
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %v", len(want), len(rec.calls), rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, rec.calls[i], want[i])
		}
	}
}

func TestDrawIsRepeatable(t *testing.T) {
	r := New(testScene())
	a, b := &recorder{}, &recorder{}
	r.Draw(a)
	r.Draw(b)
	if fmt.Sprint(a.calls) != fmt.Sprint(b.calls) {
		t.Error("consecutive draws differ")
	}
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestRasterFillsShapes(t *testing.T) {
	s := &scene.Scene{
		CanvasSize: 100,
		GridSize:   1,
		CellSize:   100,
		Background: scene.Black,
		Cells: []scene.Cell{
			{X: 50, Y: 50, Size: 40, Shape: scene.Square, Color: color.NRGBA{R: 255, A: 255}},
		},
	}
	img := RenderImage(s, 100)

	center := img.RGBAAt(50, 50)
	if center.R != 255 || center.G != 0 || center.B != 0 {
		t.Errorf("center pixel = %v, want opaque red", center)
	}
	corner := img.RGBAAt(5, 5)
	if corner.R != 0 || corner.A != 255 {
		t.Errorf("corner pixel = %v, want opaque black", corner)
	}
	edge := img.RGBAAt(25, 50)
	if edge.R != 0 {
		t.Errorf("pixel outside square = %v, want background", edge)
	}
}

func TestRasterCircleCorners(t *testing.T) {
	s := &scene.Scene{
		CanvasSize: 100,
		GridSize:   1,
		CellSize:   100,
		Background: scene.Black,
		Cells: []scene.Cell{
			{X: 50, Y: 50, Size: 80, Shape: scene.Circle, Color: color.NRGBA{G: 255, A: 255}},
		},
	}
	img := RenderImage(s, 100)

	if got := img.RGBAAt(50, 50); got.G != 255 {
		t.Errorf("circle center = %v, want green", got)
	}
	// (14, 14) lies inside the bounding square but outside the circle.
	if got := img.RGBAAt(14, 14); got.G != 0 {
		t.Errorf("bounding box corner = %v, want background", got)
	}
}

func TestRasterAlphaBlends(t *testing.T) {
	s := &scene.Scene{
		CanvasSize: 10,
		GridSize:   1,
		CellSize:   10,
		Background: scene.White,
		Cells: []scene.Cell{
			{X: 5, Y: 5, Size: 10, Shape: scene.Square, Color: color.NRGBA{R: 255, A: 180}},
		},
	}
	img := RenderImage(s, 10)

	got := img.RGBAAt(5, 5)
	if got.R != 255 || !near(got.G, 75, 2) || !near(got.B, 75, 2) || got.A != 255 {
		t.Errorf("blended pixel = %v, want ~{255 75 75 255}", got)
	}
}

func TestRenderImageScales(t *testing.T) {
	s := &scene.Scene{
		CanvasSize: 100,
		GridSize:   1,
		CellSize:   100,
		Background: scene.Black,
		Cells: []scene.Cell{
			{X: 25, Y: 25, Size: 10, Shape: scene.Square, Color: color.NRGBA{B: 255, A: 255}},
		},
	}
	img := RenderImage(s, 400)

	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 400 {
		t.Fatalf("expected 400x400, got %v", b)
	}
	if got := img.RGBAAt(100, 100); got.B != 255 {
		t.Errorf("scaled center = %v, want blue", got)
	}
	if got := img.RGBAAt(25, 25); got.B != 0 {
		t.Errorf("unscaled position = %v, want background", got)
	}
}
