package render

import (
	"errors"
	"testing"

	"github.com/lixenwraith/glyph-painter/core"
)

// recordingSurface counts calls and remembers the last draw per cell origin
type recordingSurface struct {
	w, h    int
	fills   int
	glyphs  int
	resizes int
	last    map[[2]int]core.Cell
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{last: make(map[[2]int]core.Cell)}
}

func (s *recordingSurface) CellSize() (int, int) { return 8, 16 }
func (s *recordingSurface) Size() (int, int)     { return s.w, s.h }
func (s *recordingSurface) Resize(w, h int) {
	s.w, s.h = w, h
	s.resizes++
}
func (s *recordingSurface) FillCell(px, py int, bg RGB) {
	s.fills++
	c := s.last[[2]int{px, py}]
	c.Bg = paletteIndex(bg)
	s.last[[2]int{px, py}] = c
}
func (s *recordingSurface) DrawGlyph(px, py int, glyph uint8, fg RGB) {
	s.glyphs++
	c := s.last[[2]int{px, py}]
	c.Glyph = glyph
	c.Fg = paletteIndex(fg)
	s.last[[2]int{px, py}] = c
}

func paletteIndex(c RGB) uint8 {
	for i, p := range Palette {
		if p == c {
			return uint8(i)
		}
	}
	return 0xFF
}

func TestCacheRebuildAll(t *testing.T) {
	g := core.NewGrid(10, 4)
	g.Set(9, 3, core.Cell{Glyph: 'Q', Fg: 12, Bg: 1})

	s := newRecordingSurface()
	c := NewCache(s)
	c.RebuildAll(g)

	if s.w != 80 || s.h != 64 {
		t.Errorf("Expected surface 80x64, got %dx%d", s.w, s.h)
	}
	if s.fills != 40 || s.glyphs != 40 {
		t.Errorf("Expected 40 fills and glyphs, got %d and %d", s.fills, s.glyphs)
	}
	if !c.Synced(g) {
		t.Error("Expected cache synced after rebuild")
	}
	if got := s.last[[2]int{72, 48}]; got != (core.Cell{Glyph: 'Q', Fg: 12, Bg: 1}) {
		t.Errorf("Expected Q/12/1 at pixel (72, 48), got %+v", got)
	}
}

func TestCacheRefreshCellIsSingleCell(t *testing.T) {
	g := core.NewGrid(80, 25)
	s := newRecordingSurface()
	c := NewCache(s)
	c.RebuildAll(g)

	fills, glyphs := s.fills, s.glyphs
	g.Set(5, 6, core.Cell{Glyph: 1, Fg: 2, Bg: 3})
	if err := c.RefreshCell(g, 5, 6); err != nil {
		t.Fatal(err)
	}

	if s.fills-fills != 1 || s.glyphs-glyphs != 1 {
		t.Errorf("Expected exactly one fill and one glyph, got %d and %d", s.fills-fills, s.glyphs-glyphs)
	}
	if got := s.last[[2]int{40, 96}]; got != (core.Cell{Glyph: 1, Fg: 2, Bg: 3}) {
		t.Errorf("Expected refreshed cell at pixel (40, 96), got %+v", got)
	}
}

func TestCacheRefreshOutOfBounds(t *testing.T) {
	g := core.NewGrid(4, 4)
	c := NewCache(newRecordingSurface())
	c.RebuildAll(g)

	if err := c.RefreshCell(g, 4, 0); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}

func TestCacheStaleAfterGrow(t *testing.T) {
	g := core.NewGrid(4, 4)
	c := NewCache(newRecordingSurface())
	c.RebuildAll(g)

	g.Resize(6, 4)
	if c.Synced(g) {
		t.Error("Expected cache out of sync after grid resize")
	}
	if err := c.RefreshCell(g, 5, 0); !errors.Is(err, ErrStale) {
		t.Errorf("Expected ErrStale, got %v", err)
	}

	c.RebuildAll(g)
	if !c.Synced(g) {
		t.Error("Expected cache synced after rebuild")
	}
	if w, h := c.PixelSize(); w != 48 || h != 64 {
		t.Errorf("Expected 48x64 pixels, got %dx%d", w, h)
	}
}

func TestCacheInvalidate(t *testing.T) {
	g := core.NewGrid(3, 3)
	c := NewCache(newRecordingSurface())
	c.RebuildAll(g)

	c.Invalidate()
	if c.Valid(1, 1) {
		t.Error("Expected cell invalid after Invalidate")
	}
	if err := c.Refresh(g, []core.Point{{1, 1}}); err != nil {
		t.Fatal(err)
	}
	if !c.Valid(1, 1) {
		t.Error("Expected cell valid after refresh")
	}
	if c.Synced(g) {
		t.Error("Expected other cells still invalid")
	}
}

func TestCellSurfaceMirrorsGrid(t *testing.T) {
	g := core.NewGrid(3, 2)
	g.Set(1, 1, core.Cell{Glyph: 'A', Fg: 4, Bg: 1})
	g.Set(2, 0, core.Cell{Glyph: 0xDB, Fg: 15, Bg: 0})

	s := NewCellSurface()
	c := NewCache(s)
	c.RebuildAll(g)

	if w, h := s.Size(); w != 3 || h != 2 {
		t.Fatalf("Expected 3x2 surface, got %dx%d", w, h)
	}
	got := s.Cell(1, 1)
	if got.Rune != 'A' || got.Fg != Palette[4] || got.Bg != Palette[1] {
		t.Errorf("Expected A on blue in red, got %+v", got)
	}
	if r := s.Cell(2, 0).Rune; r != '█' {
		t.Errorf("Expected full block, got %q", r)
	}
	if r := s.Cell(0, 0).Rune; r != ' ' {
		t.Errorf("Expected blank glyph as space, got %q", r)
	}
}
