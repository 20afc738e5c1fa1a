package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// RGB stores explicit 8-bit color channels
type RGB struct {
	R, G, B uint8
}

// RGBA converts to an opaque image color
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// TCell converts to a true-color terminal color
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Palette is the fixed 16-entry document palette (CGA ordering)
var Palette = [16]RGB{
	{0x00, 0x00, 0x00}, // Black
	{0x00, 0x00, 0xAA}, // Blue
	{0x00, 0xAA, 0x00}, // Green
	{0x00, 0xAA, 0xAA}, // Cyan
	{0xAA, 0x00, 0x00}, // Red
	{0xAA, 0x00, 0xAA}, // Magenta
	{0xAA, 0x55, 0x00}, // Brown
	{0xAA, 0xAA, 0xAA}, // Light gray
	{0x55, 0x55, 0x55}, // Dark gray
	{0x55, 0x55, 0xFF}, // Light blue
	{0x55, 0xFF, 0x55}, // Light green
	{0x55, 0xFF, 0xFF}, // Light cyan
	{0xFF, 0x55, 0x55}, // Light red
	{0xFF, 0x55, 0xFF}, // Light magenta
	{0xFF, 0xFF, 0x55}, // Yellow
	{0xFF, 0xFF, 0xFF}, // White
}

// PaletteColor returns the palette entry for a 4-bit index
func PaletteColor(index uint8) RGB {
	return Palette[index&0x0F]
}

// UI colors outside the document palette
var (
	RgbBackdrop  = RGB{16, 16, 16}
	RgbHatch     = RGB{32, 32, 32}
	RgbDivider   = RGB{64, 64, 64}
	RgbOrange    = RGB{0xFF, 0xA5, 0x00}
	RgbReadout   = RGB{255, 255, 255}
	RgbSelection = RGB{0x40, 0x30, 0x00}
	RgbStatusErr = RGB{200, 50, 50}
	RgbStatusOK  = RGB{50, 200, 100}
)
