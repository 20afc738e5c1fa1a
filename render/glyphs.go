package render

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/charmap"
)

// The graphical forms of CP437 control codes, which charmap decodes as C0 controls
var cp437Controls = [32]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

// Substitute for glyphs a terminal cannot show in a single column
const fallbackRune = '?'

var (
	glyphRunes [256]rune
	termRunes  [256]rune
)

func init() {
	// Fixed narrow condition so the table does not depend on the host locale
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	for i := 0; i < 256; i++ {
		r := charmap.CodePage437.DecodeByte(byte(i))
		switch {
		case i < len(cp437Controls):
			r = cp437Controls[i]
		case i == 0x7F:
			r = '⌂'
		case i == 0xFF:
			// Non-breaking space renders as blank
			r = ' '
		}
		glyphRunes[i] = r

		if cond.RuneWidth(r) == 1 {
			termRunes[i] = r
		} else {
			termRunes[i] = fallbackRune
		}
	}
}

// GlyphRune returns the CP437 rune drawn for a glyph index
func GlyphRune(glyph uint8) rune {
	return glyphRunes[glyph]
}

// TerminalRune returns a single-column rune for a glyph index
func TerminalRune(glyph uint8) rune {
	return termRunes[glyph]
}

// GlyphForRune maps typed text back to a glyph index
// Printable ASCII maps to itself; other runes go through the CP437 encoder
func GlyphForRune(r rune) (uint8, bool) {
	if r >= 0x20 && r < 0x7F {
		return uint8(r), true
	}
	if r < 0x20 || r == 0x7F {
		return 0, false
	}
	b, ok := charmap.CodePage437.EncodeRune(r)
	if !ok || b < 0x80 {
		return 0, false
	}
	return b, true
}
