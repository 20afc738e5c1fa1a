package view

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-painter/core"
	"github.com/lixenwraith/glyph-painter/editor"
	"github.com/lixenwraith/glyph-painter/render"
)

var (
	blinkOnTime  = time.UnixMilli(600_000)
	blinkOffTime = time.UnixMilli(600_400)
)

func newTestView(t *testing.T, w, h int) (*View, tcell.SimulationScreen, *editor.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 30)

	surface := render.NewCellSurface()
	s := editor.NewSession(core.NewGrid(w, h), surface, editor.Options{Path: "art.bin"})
	// Park the pointer away from the canvas
	if err := s.Apply(editor.Intent{Type: editor.IntentHover, At: core.Point{X: 50, Y: 25}, Pointer: true}); err != nil {
		t.Fatal(err)
	}
	return New(screen, surface), screen, s
}

func content(screen tcell.SimulationScreen, x, y int) (rune, tcell.Color, tcell.Color) {
	r, _, st, _ := screen.GetContent(x, y)
	fg, bg, _ := st.Decompose()
	return r, fg, bg
}

func rowText(screen tcell.SimulationScreen, y, from, n int) string {
	var b strings.Builder
	for x := from; x < from+n; x++ {
		r, _, _ := content(screen, x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCanvasPresented(t *testing.T) {
	v, screen, s := newTestView(t, 10, 5)
	s.Grid().Set(2, 1, core.Cell{Glyph: 'A', Fg: 4, Bg: 1})
	if err := s.Cache().RefreshCell(s.Grid(), 2, 1); err != nil {
		t.Fatal(err)
	}

	v.Draw(s, blinkOffTime)

	r, fg, bg := content(screen, 2, 1)
	if r != 'A' {
		t.Errorf("Expected 'A', got %q", r)
	}
	if fg != render.Palette[4].TCell() || bg != render.Palette[1].TCell() {
		t.Errorf("Expected palette colors 4 on 1, got %v on %v", fg, bg)
	}
}

func TestStaleCellsNotPresented(t *testing.T) {
	v, screen, s := newTestView(t, 10, 5)
	s.Cache().Invalidate()

	v.Draw(s, blinkOffTime)

	if r, _, _ := content(screen, 0, 0); r != hatchRune {
		t.Errorf("Expected backdrop at a stale cell, got %q", r)
	}
}

func TestPickerPanel(t *testing.T) {
	v, screen, s := newTestView(t, 10, 5)

	v.Draw(s, blinkOffTime)
	if r, _, _ := content(screen, 11, 4); r != 'A' {
		t.Errorf("Expected glyph 0x41 in the picker, got %q", r)
	}
	if r, _, _ := content(screen, 10, 0); r == render.TerminalRune(cursorGlyph) {
		t.Error("Expected picker cursor hidden in the off phase")
	}

	v.Draw(s, blinkOnTime)
	if r, _, _ := content(screen, 10, 0); r != render.TerminalRune(cursorGlyph) {
		t.Errorf("Expected picker cursor in the on phase, got %q", r)
	}
	if r, _, _ := content(screen, 12, 16); r != dividerRune {
		t.Errorf("Expected divider under the picker, got %q", r)
	}
	if got := rowText(screen, 17, 10, 6); got != "50, 25" {
		t.Errorf("Expected pointer readout, got %q", got)
	}
}

func TestTextModeOverlay(t *testing.T) {
	v, screen, s := newTestView(t, 10, 5)
	if err := s.Apply(editor.Intent{Type: editor.IntentNextMode}); err != nil {
		t.Fatal(err)
	}

	v.Draw(s, blinkOnTime)

	if got := rowText(screen, 0, 11, 15); got != "Text Entry Mode" {
		t.Errorf("Expected mode label, got %q", got)
	}
	if r, _, _ := content(screen, 0, 0); r != render.TerminalRune(cursorGlyph) {
		t.Errorf("Expected text cursor at origin, got %q", r)
	}
	if r, _, _ := content(screen, 11, 4); r == 'A' {
		t.Error("Expected no picker in text mode")
	}
}

func TestSelectionOverlay(t *testing.T) {
	v, screen, s := newTestView(t, 10, 5)
	for _, in := range []editor.Intent{
		{Type: editor.IntentBeginSelect, At: core.Point{X: 1, Y: 1}, Pointer: true},
		{Type: editor.IntentUpdateSelect, At: core.Point{X: 3, Y: 3}, Pointer: true},
		{Type: editor.IntentEndSelect},
		{Type: editor.IntentHover, At: core.Point{X: 50, Y: 25}, Pointer: true},
	} {
		if err := s.Apply(in); err != nil {
			t.Fatal(err)
		}
	}

	v.Draw(s, blinkOffTime)

	if _, _, bg := content(screen, 1, 1); bg != render.RgbSelection.TCell() {
		t.Errorf("Expected selection edge color, got %v", bg)
	}
	if _, _, bg := content(screen, 5, 1); bg != render.Palette[0].TCell() {
		t.Errorf("Expected plain background outside the box, got %v", bg)
	}
}

func TestPointerPreview(t *testing.T) {
	v, screen, s := newTestView(t, 10, 5)
	if err := s.Apply(editor.Intent{Type: editor.IntentMovePicker, Dx: 3, Dy: 2}); err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(editor.Intent{Type: editor.IntentHover, At: core.Point{X: 4, Y: 2}, Pointer: true}); err != nil {
		t.Fatal(err)
	}

	v.Draw(s, blinkOffTime)

	r, _, bg := content(screen, 4, 2)
	if r != '#' {
		t.Errorf("Expected brush glyph '#' under the pointer, got %q", r)
	}
	if bg != render.RgbOrange.TCell() {
		t.Errorf("Expected pointer highlight, got %v", bg)
	}
	if c, _ := s.Grid().Get(4, 2); c.Glyph != 0 {
		t.Error("Expected preview to leave the document untouched")
	}
}

func TestStatusExpires(t *testing.T) {
	v, screen, s := newTestView(t, 10, 5)
	s.Apply(editor.Intent{Type: editor.IntentCopy})

	start := time.UnixMilli(1_000_000)
	v.Draw(s, start)
	_, h := screen.Size()
	if !strings.Contains(rowText(screen, h-1, 0, 100), "no active selection") {
		t.Errorf("Expected error on the status line, got %q", rowText(screen, h-1, 0, 100))
	}

	v.Draw(s, start.Add(statusDuration+time.Second))
	if strings.Contains(rowText(screen, h-1, 0, 100), "no active selection") {
		t.Error("Expected status message to expire")
	}
	if !strings.Contains(rowText(screen, h-1, 0, 100), "Paint") {
		t.Error("Expected mode on the status line")
	}
}

func TestRepeatedStatusShownAgain(t *testing.T) {
	v, screen, s := newTestView(t, 10, 5)
	_, h := screen.Size()
	start := time.UnixMilli(1_000_000)

	s.Apply(editor.Intent{Type: editor.IntentCopy})
	v.Draw(s, start)
	if !strings.Contains(rowText(screen, h-1, 0, 100), "no active selection") {
		t.Fatalf("Expected first error on the status line, got %q", rowText(screen, h-1, 0, 100))
	}

	later := start.Add(statusDuration + 7*time.Second)
	v.Draw(s, later)
	if strings.Contains(rowText(screen, h-1, 0, 100), "no active selection") {
		t.Fatal("Expected first error to expire")
	}

	s.Apply(editor.Intent{Type: editor.IntentCopy})
	v.Draw(s, later)
	if !strings.Contains(rowText(screen, h-1, 0, 100), "no active selection") {
		t.Errorf("Expected repeated error to be shown, got %q", rowText(screen, h-1, 0, 100))
	}
}
