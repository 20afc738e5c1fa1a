// @focus: #core { types }
package core

// Bit layout of the packed 16-bit wire form
const (
	glyphMask = 0x00FF
	fgShift   = 8
	bgShift   = 12
	colorMask = 0x0F
)

// PaletteSize is the number of addressable colors per field
const PaletteSize = 16

// GlyphCount is the number of addressable glyphs
const GlyphCount = 256

// Cell is one grid position: a glyph index plus foreground and background palette indices
// Logic operates on the unpacked fields; Pack/UnpackCell exist for serialization only
type Cell struct {
	Glyph uint8
	Fg    uint8
	Bg    uint8
}

// Blank is the default cell of a new document
var Blank = Cell{Glyph: 0, Fg: 7, Bg: 0}

// NewCell builds a cell, masking colors into palette range
func NewCell(glyph, fg, bg uint8) Cell {
	return Cell{Glyph: glyph, Fg: fg & colorMask, Bg: bg & colorMask}
}

// WithGlyph returns the cell with only the glyph replaced
func (c Cell) WithGlyph(glyph uint8) Cell {
	c.Glyph = glyph
	return c
}

// WithFg returns the cell with only the foreground replaced
func (c Cell) WithFg(fg uint8) Cell {
	c.Fg = fg & colorMask
	return c
}

// WithBg returns the cell with only the background replaced
func (c Cell) WithBg(bg uint8) Cell {
	c.Bg = bg & colorMask
	return c
}

// Pack encodes the cell as glyph | fg<<8 | bg<<12
func (c Cell) Pack() uint16 {
	return uint16(c.Glyph) | uint16(c.Fg&colorMask)<<fgShift | uint16(c.Bg&colorMask)<<bgShift
}

// UnpackCell decodes the 16-bit wire form
func UnpackCell(v uint16) Cell {
	return Cell{
		Glyph: uint8(v & glyphMask),
		Fg:    uint8(v>>fgShift) & colorMask,
		Bg:    uint8(v>>bgShift) & colorMask,
	}
}
