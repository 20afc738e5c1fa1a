package render

import "testing"

func TestGlyphRuneCP437(t *testing.T) {
	cases := []struct {
		glyph uint8
		want  rune
	}{
		{0x00, ' '},
		{0x01, '☺'},
		{0x41, 'A'},
		{0x7F, '⌂'},
		{0x82, 'é'},
		{0xB0, '░'},
		{0xC4, '─'},
		{0xDB, '█'},
		{0xFF, ' '},
	}
	for _, tc := range cases {
		if got := GlyphRune(tc.glyph); got != tc.want {
			t.Errorf("Glyph %#02x: expected %q, got %q", tc.glyph, tc.want, got)
		}
	}
}

func TestTerminalRuneSingleColumn(t *testing.T) {
	for i := 0; i < 256; i++ {
		r := TerminalRune(uint8(i))
		if r == 0 {
			t.Errorf("Glyph %#02x has no terminal rune", i)
		}
	}
}

func TestGlyphForRune(t *testing.T) {
	if g, ok := GlyphForRune('z'); !ok || g != 'z' {
		t.Errorf("Expected 'z' to map to itself, got %d (%v)", g, ok)
	}
	if g, ok := GlyphForRune('é'); !ok || g != 0x82 {
		t.Errorf("Expected 'é' to map to 0x82, got %#02x (%v)", g, ok)
	}
	if _, ok := GlyphForRune('\t'); ok {
		t.Error("Expected control rune to be rejected")
	}
	if _, ok := GlyphForRune('日'); ok {
		t.Error("Expected rune outside CP437 to be rejected")
	}
}
