package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/san-kum/gridsketch/internal/scene"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Raster is an anti-aliased Surface backed by an RGBA image. Scene
// coordinates are multiplied by scale before rasterizing.
type Raster struct {
	img   *image.RGBA
	scale float32
	z     *vector.Rasterizer
}

func NewRaster(width, height int, scale float64) *Raster {
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		scale: float32(scale),
		z:     vector.NewRasterizer(width, height),
	}
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Background(c color.NRGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) Circle(x, y, d float64, c color.NRGBA) {
	cx, cy := float32(x)*r.scale, float32(y)*r.scale
	rad := float32(d) / 2 * r.scale
	k := rad * kappa

	r.begin()
	r.z.MoveTo(cx+rad, cy)
	r.z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	r.z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	r.z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	r.z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	r.z.ClosePath()
	r.fill(c)
}

func (r *Raster) Square(x, y, side float64, c color.NRGBA) {
	cx, cy := float32(x)*r.scale, float32(y)*r.scale
	h := float32(side) / 2 * r.scale

	r.begin()
	r.z.MoveTo(cx-h, cy-h)
	r.z.LineTo(cx+h, cy-h)
	r.z.LineTo(cx+h, cy+h)
	r.z.LineTo(cx-h, cy+h)
	r.z.ClosePath()
	r.fill(c)
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *Raster) fill(c color.NRGBA) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// RenderImage rasterizes s into a size x size image.
func RenderImage(s *scene.Scene, size int) *image.RGBA {
	scale := 1.0
	if s.CanvasSize > 0 {
		scale = float64(size) / s.CanvasSize
	}
	r := NewRaster(size, size, scale)
	New(s).Draw(r)
	return r.Image()
}
