package render

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/glyph-painter/core"
)

// Rasterize renders the whole grid to a fresh image
func Rasterize(g *core.Grid) *image.RGBA {
	s := NewImageSurface()
	c := NewCache(s)
	c.RebuildAll(g)
	return s.Image()
}

// ExportPNG rasterizes g, upscales by an integer factor and encodes it as PNG
func ExportPNG(w io.Writer, g *core.Grid, scale int) error {
	img := Rasterize(g)
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}
