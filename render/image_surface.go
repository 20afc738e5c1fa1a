// @focus: #render { raster }
package render

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Pixel extent of one cell on an ImageSurface
const (
	GlyphWidth  = 8
	GlyphHeight = 16
)

// ImageSurface rasterizes cells into an RGBA image using a fixed bitmap face
type ImageSurface struct {
	img      *image.RGBA
	face     font.Face
	baseline int
}

// NewImageSurface creates an empty raster surface backed by basicfont 7x13
func NewImageSurface() *ImageSurface {
	face := basicfont.Face7x13
	top := (GlyphHeight - face.Height) / 2
	return &ImageSurface{
		img:      image.NewRGBA(image.Rect(0, 0, 0, 0)),
		face:     face,
		baseline: top + face.Ascent,
	}
}

// CellSize returns the pixel extent of one cell
func (s *ImageSurface) CellSize() (int, int) {
	return GlyphWidth, GlyphHeight
}

// Size returns the image dimensions in pixels
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the image when the extent changes
func (s *ImageSurface) Resize(w, h int) {
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image exposes the raster for encoding or blitting
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// FillCell paints the cell rectangle opaque
func (s *ImageSurface) FillCell(px, py int, bg RGB) {
	r := image.Rect(px, py, px+GlyphWidth, py+GlyphHeight)
	draw.Draw(s.img, r, image.NewUniform(bg.RGBA()), image.Point{}, draw.Src)
}

// DrawGlyph draws the glyph over the cell; block elements are drawn as geometry
// since the bitmap face has no coverage for them
func (s *ImageSurface) DrawGlyph(px, py int, glyph uint8, fg RGB) {
	if s.drawBlock(px, py, glyph, fg) {
		return
	}
	r := GlyphRune(glyph)
	if r == ' ' {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(fg.RGBA()),
		Face: s.face,
		Dot:  fixed.P(px, py+s.baseline),
	}
	d.DrawString(string(r))
}

// CP437 block elements
const (
	glyphShadeLight  = 0xB0
	glyphShadeMedium = 0xB1
	glyphShadeDark   = 0xB2
	glyphBlockFull   = 0xDB
	glyphBlockLower  = 0xDC
	glyphBlockLeft   = 0xDD
	glyphBlockRight  = 0xDE
	glyphBlockUpper  = 0xDF
)

func (s *ImageSurface) drawBlock(px, py int, glyph uint8, fg RGB) bool {
	src := image.NewUniform(fg.RGBA())
	fill := func(x0, y0, x1, y1 int) {
		draw.Draw(s.img, image.Rect(px+x0, py+y0, px+x1, py+y1), src, image.Point{}, draw.Src)
	}

	switch glyph {
	case glyphBlockFull:
		fill(0, 0, GlyphWidth, GlyphHeight)
	case glyphBlockLower:
		fill(0, GlyphHeight/2, GlyphWidth, GlyphHeight)
	case glyphBlockUpper:
		fill(0, 0, GlyphWidth, GlyphHeight/2)
	case glyphBlockLeft:
		fill(0, 0, GlyphWidth/2, GlyphHeight)
	case glyphBlockRight:
		fill(GlyphWidth/2, 0, GlyphWidth, GlyphHeight)
	case glyphShadeLight, glyphShadeMedium, glyphShadeDark:
		c := fg.RGBA()
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if shadeOn(glyph, x, y) {
					s.img.SetRGBA(px+x, py+y, c)
				}
			}
		}
	default:
		return false
	}
	return true
}

// shadeOn is the ordered dither for the three shade glyphs (25/50/75%)
func shadeOn(glyph uint8, x, y int) bool {
	switch glyph {
	case glyphShadeLight:
		return x%2 == 0 && y%2 == 0
	case glyphShadeMedium:
		return (x+y)%2 == 0
	default:
		return !(x%2 == 1 && y%2 == 1)
	}
}
