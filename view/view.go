// @focus: #view { present, overlays }
package view

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-painter/core"
	"github.com/lixenwraith/glyph-painter/editor"
	"github.com/lixenwraith/glyph-painter/render"
)

const (
	blinkPeriodMs  = 600
	blinkOnMs      = 300
	statusDuration = 3 * time.Second
)

// Glyph drawn for the blinking cursors
const cursorGlyph = 0xDB

const (
	hatchRune   = '╱'
	dividerRune = '─'
)

// View presents a session on a tcell screen
// The canvas comes from the session's CellSurface; everything else is overlay
type View struct {
	screen  tcell.Screen
	surface *render.CellSurface

	lastSeq     uint64
	statusUntil time.Time
}

// New creates a view drawing surface contents to screen
func New(screen tcell.Screen, surface *render.CellSurface) *View {
	return &View{screen: screen, surface: surface}
}

func style(fg, bg render.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.TCell()).Background(bg.TCell())
}

// Draw renders one frame
func (v *View) Draw(s *editor.Session, now time.Time) {
	v.drawBackdrop()
	v.drawCanvas(s)

	blinkOn := now.UnixMilli()%blinkPeriodMs < blinkOnMs

	switch s.Mode() {
	case editor.ModePaint:
		v.drawPicker(s, blinkOn)
		v.drawSelection(s)
	case editor.ModeText:
		area := s.PickerArea()
		v.drawText(area.Left+1, 0, "Text Entry Mode", style(render.PaletteColor(s.Fg()), render.RgbBackdrop))
		if blinkOn {
			v.drawCursor(s.Cursor(), s.Fg(), s.Grid().Width(), s.Grid().Height())
		}
	}

	v.drawPointer(s)
	v.drawReadout(s)
	v.drawStatus(s, now)
	v.screen.Show()
}

func (v *View) drawBackdrop() {
	w, h := v.screen.Size()
	plain := style(render.RgbBackdrop, render.RgbBackdrop)
	hatch := style(render.RgbHatch, render.RgbBackdrop)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%4 == 0 {
				v.screen.SetContent(x, y, hatchRune, nil, hatch)
			} else {
				v.screen.SetContent(x, y, ' ', nil, plain)
			}
		}
	}
}

// drawCanvas copies refreshed cells; stale cells keep the backdrop
func (v *View) drawCanvas(s *editor.Session) {
	cache := s.Cache()
	w, h := cache.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !cache.Valid(x, y) {
				continue
			}
			c := v.surface.Cell(x, y)
			v.screen.SetContent(x, y, c.Rune, nil, style(c.Fg, c.Bg))
		}
	}
}

func (v *View) drawPicker(s *editor.Session, blinkOn bool) {
	area := s.PickerArea()
	fg, bg := render.PaletteColor(s.Fg()), render.PaletteColor(s.Bg())
	st := style(fg, bg)
	for y := 0; y < editor.PickerSize; y++ {
		for x := 0; x < editor.PickerSize; x++ {
			glyph := uint8(y*editor.PickerSize + x)
			v.screen.SetContent(area.Left+x, area.Top+y, render.TerminalRune(glyph), nil, st)
		}
	}
	if blinkOn {
		p := s.Picker()
		v.screen.SetContent(area.Left+p.X, area.Top+p.Y, render.TerminalRune(cursorGlyph), nil, st)
	}

	// Divider under the picker
	div := style(render.RgbDivider, render.RgbBackdrop)
	sw, _ := v.screen.Size()
	for x := area.Left; x < sw; x++ {
		v.screen.SetContent(x, area.Bottom+1, dividerRune, nil, div)
	}
}

func (v *View) drawCursor(p core.Point, fg uint8, w, h int) {
	if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
		return
	}
	c := v.surface.Cell(p.X, p.Y)
	v.screen.SetContent(p.X, p.Y, render.TerminalRune(cursorGlyph), nil, style(render.PaletteColor(fg), c.Bg))
}

// drawSelection darkens the box, edges take the selection color
func (v *View) drawSelection(s *editor.Session) {
	box, ok := s.SelectionBox()
	if !ok {
		return
	}
	box, ok = box.Clip(s.Grid().Bounds())
	if !ok {
		return
	}
	for y := box.Top; y <= box.Bottom; y++ {
		for x := box.Left; x <= box.Right; x++ {
			c := v.surface.Cell(x, y)
			bg := darken(c.Bg)
			if x == box.Left || x == box.Right || y == box.Top || y == box.Bottom {
				bg = render.RgbSelection
			}
			v.screen.SetContent(x, y, c.Rune, nil, style(c.Fg, bg))
		}
	}
}

func darken(c render.RGB) render.RGB {
	return render.RGB{R: c.R / 2, G: c.G / 2, B: c.B / 2}
}

// drawPointer marks the pointer cell; in paint mode over the canvas it previews the brush
func (v *View) drawPointer(s *editor.Session) {
	p := s.Pointer()
	sw, sh := v.screen.Size()
	if p.X < 0 || p.Y < 0 || p.X >= sw || p.Y >= sh {
		return
	}
	if s.Mode() == editor.ModePaint && s.Grid().InBounds(p.X, p.Y) {
		v.screen.SetContent(p.X, p.Y, render.TerminalRune(s.Glyph()), nil, style(render.PaletteColor(s.Fg()), render.RgbOrange))
		return
	}
	r, _, st, _ := v.screen.GetContent(p.X, p.Y)
	v.screen.SetContent(p.X, p.Y, r, nil, st.Background(render.RgbOrange.TCell()))
}

// drawReadout prints the pointer position below the picker divider
func (v *View) drawReadout(s *editor.Session) {
	area := s.PickerArea()
	p := s.Pointer()
	st := style(render.RgbReadout, render.RgbBackdrop)
	v.drawText(area.Left, area.Bottom+2, fmt.Sprintf("%d, %d", p.X, p.Y), st)
}

func (v *View) drawStatus(s *editor.Session, now time.Time) {
	_, sh := v.screen.Size()
	g := s.Grid()

	modMark := ""
	if s.Dirty() {
		modMark = "*"
	}
	line := fmt.Sprintf(" %s | %s%s %dx%d | fg %d bg %d glyph 0x%02X ",
		s.Mode(), s.Path(), modMark, g.Width(), g.Height(), s.Fg(), s.Bg(), s.Glyph())
	v.drawText(0, sh-1, line, style(render.RgbReadout, render.RgbDivider))

	status := s.Status()
	if status.Seq != v.lastSeq {
		v.lastSeq = status.Seq
		v.statusUntil = now.Add(statusDuration)
	}
	if status.Text == "" || now.After(v.statusUntil) {
		return
	}
	fg := render.RgbStatusOK
	if status.Err {
		fg = render.RgbStatusErr
	}
	v.drawText(len([]rune(line))+1, sh-1, status.Text, style(fg, render.RgbBackdrop))
}

func (v *View) drawText(x, y int, text string, st tcell.Style) {
	i := 0
	for _, r := range text {
		v.screen.SetContent(x+i, y, r, nil, st)
		i++
	}
}
