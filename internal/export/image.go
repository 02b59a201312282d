package export

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/san-kum/gridsketch/internal/render"
	"github.com/san-kum/gridsketch/internal/scene"
)

// WritePNG rasterizes the scene at size x size pixels.
func WritePNG(w io.Writer, sc *scene.Scene, size int) error {
	return png.Encode(w, render.RenderImage(sc, size))
}

// WriteGIF rasterizes the scene and quantizes it to the Plan9 palette with
// Floyd-Steinberg dithering.
func WriteGIF(w io.Writer, sc *scene.Scene, size int) error {
	src := render.RenderImage(sc, size)
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(dst, src.Bounds(), src, image.Point{})
	return gif.Encode(w, dst, &gif.Options{NumColors: len(palette.Plan9)})
}
