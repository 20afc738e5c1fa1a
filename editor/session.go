// @focus: #editor { session, apply }
package editor

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lixenwraith/glyph-painter/core"
	"github.com/lixenwraith/glyph-painter/document"
	"github.com/lixenwraith/glyph-painter/render"
	"github.com/lixenwraith/glyph-painter/stash"
)

var (
	ErrModeMismatch = errors.New("not available in this mode")
	ErrNoStash      = errors.New("stash is disabled")
	ErrNotPrintable = errors.New("character has no glyph")
	ErrNoPath       = errors.New("document has no path")
)

// PickerSize is the side of the glyph picker panel
const PickerSize = 16

// Stash persists clipboard snippets by name
type Stash interface {
	Put(name string, clip *core.Clipboard) error
	Get(name string, clip *core.Clipboard) error
	Delete(name string) error
	List() ([]stash.Entry, error)
}

// Feedback plays audible cues for operation outcomes
type Feedback interface {
	PlayClick()
	PlayBell()
	PlayError()
}

// Options configures a session
type Options struct {
	Path  string // document path used by Save
	Stash Stash
	Sound Feedback
}

// Status is the last operator-facing message
// Seq changes with every message, including a repeat of the previous text
type Status struct {
	Text string
	Err  bool
	Seq  uint64
}

// Session owns the document and all editing state
// Single-threaded: only the poll loop calls into it
type Session struct {
	grid  *core.Grid
	cache *render.Cache
	clip  *core.Clipboard
	sel   core.Selection

	mode    Mode
	fg, bg  uint8
	picker  core.Point // glyph = Y*16 + X
	cursor  core.Point // text entry position
	pointer core.Point // last pointer cell, may lie outside the grid

	path   string
	stash  Stash
	sound  Feedback
	status Status
	dirty  bool
	quit   bool
}

// NewSession takes ownership of g and mirrors it onto surface
func NewSession(g *core.Grid, surface render.Surface, opts Options) *Session {
	s := &Session{
		grid:  g,
		cache: render.NewCache(surface),
		clip:  core.NewClipboard(),
		mode:  ModePaint,
		fg:    core.Blank.Fg,
		bg:    core.Blank.Bg,
		path:  opts.Path,
		stash: opts.Stash,
		sound: opts.Sound,
	}
	s.cache.RebuildAll(g)
	return s
}

// Read-only state for presentation

func (s *Session) Grid() *core.Grid           { return s.grid }
func (s *Session) Cache() *render.Cache       { return s.cache }
func (s *Session) Clipboard() *core.Clipboard { return s.clip }
func (s *Session) Mode() Mode                 { return s.mode }
func (s *Session) Fg() uint8                  { return s.fg }
func (s *Session) Bg() uint8                  { return s.bg }
func (s *Session) Picker() core.Point         { return s.picker }
func (s *Session) Cursor() core.Point         { return s.cursor }
func (s *Session) Pointer() core.Point        { return s.pointer }
func (s *Session) Status() Status             { return s.status }
func (s *Session) Dirty() bool                { return s.dirty }
func (s *Session) Path() string               { return s.path }
func (s *Session) ShouldQuit() bool           { return s.quit }

// Glyph returns the glyph under the picker cursor
func (s *Session) Glyph() uint8 {
	return uint8(s.picker.Y*PickerSize + s.picker.X)
}

// Brush returns the cell that painting writes
func (s *Session) Brush() core.Cell {
	return core.NewCell(s.Glyph(), s.fg, s.bg)
}

// SelectionBox returns the box being dragged or the active one
func (s *Session) SelectionBox() (core.Rect, bool) {
	return s.sel.Live()
}

// SelectionActive reports whether a completed box exists
func (s *Session) SelectionActive() bool {
	return s.sel.Active()
}

// PickerArea returns the picker panel, placed right of the canvas
func (s *Session) PickerArea() core.Rect {
	w := s.grid.Width()
	return core.Rect{Left: w, Top: 0, Right: w + PickerSize - 1, Bottom: PickerSize - 1}
}

// accepts reports whether t is valid in mode m
func accepts(m Mode, t IntentType) bool {
	switch t {
	case IntentPaint, IntentPickGlyph, IntentFlood,
		IntentBeginSelect, IntentMovePicker, IntentAdjustFg, IntentAdjustBg:
		return m == ModePaint
	case IntentTypeChar, IntentMoveCursor, IntentPlaceCursor:
		return m == ModeText
	}
	return true
}

// Apply executes one intent
// A rejected intent leaves state intact; the error is also reported on the status line
func (s *Session) Apply(in Intent) error {
	if in.Pointer {
		s.pointer = in.At
	}
	if !accepts(s.mode, in.Type) {
		return s.fail(in, fmt.Errorf("%s in %s mode: %w", in.Type, s.mode, ErrModeMismatch))
	}

	var err error
	switch in.Type {
	case IntentNone, IntentHover:
	case IntentNextMode:
		s.mode = s.mode.Next()
		s.sel.Cancel()
	case IntentCancel:
		s.sel.Cancel()
	case IntentQuit:
		s.quit = true
	case IntentSave:
		err = s.save()
	case IntentPaint:
		err = s.paint()
	case IntentPickGlyph:
		err = s.pickGlyph()
	case IntentPlaceCursor:
		err = s.placeCursor()
	case IntentFlood:
		err = s.flood()
	case IntentEyedrop:
		err = s.eyedrop()
	case IntentBeginSelect:
		err = s.beginSelect()
	case IntentUpdateSelect:
		s.sel.UpdateDrag(s.clampToGrid(s.pointer))
	case IntentEndSelect:
		s.sel.EndDrag()
	case IntentMovePicker:
		s.picker.X = wrap(s.picker.X+in.Dx, PickerSize)
		s.picker.Y = wrap(s.picker.Y+in.Dy, PickerSize)
	case IntentMoveCursor:
		s.cursor.X = wrap(s.cursor.X+in.Dx, s.grid.Width())
		s.cursor.Y = wrap(s.cursor.Y+in.Dy, s.grid.Height())
	case IntentAdjustFg:
		s.fg = uint8(wrap(int(s.fg)+in.Dx, core.PaletteSize))
	case IntentAdjustBg:
		s.bg = uint8(wrap(int(s.bg)+in.Dx, core.PaletteSize))
	case IntentTypeChar:
		err = s.typeChar(in.Char)
	case IntentErase:
		err = s.erase(in.ClearBlack)
	case IntentResize:
		err = s.resize(in.Dx, in.Dy)
	case IntentCopy:
		err = s.copySelection()
	case IntentPaste:
		err = s.paste()
	case IntentStashStore:
		err = s.stashStore(in.Slot)
	case IntentStashLoad:
		err = s.stashLoad(in.Slot)
	case IntentStashDelete:
		err = s.stashDelete(in.Slot)
	case IntentStashList:
		err = s.stashList()
	default:
		err = fmt.Errorf("unknown intent %d", in.Type)
	}

	if err != nil {
		return s.fail(in, err)
	}
	return nil
}

// Report shows an error raised outside Apply, such as a failed load
func (s *Session) Report(err error) {
	s.setError(err)
}

// Notify shows an informational message
func (s *Session) Notify(format string, args ...any) {
	s.setStatus(format, args...)
}

// fail reports err to the operator and returns it
// Pointer strokes leaving the canvas are expected and stay silent
func (s *Session) fail(in Intent, err error) error {
	if in.Pointer && errors.Is(err, core.ErrOutOfBounds) {
		return err
	}
	s.setError(err)
	return err
}

func (s *Session) setError(err error) {
	s.status = Status{Text: err.Error(), Err: true, Seq: s.status.Seq + 1}
	log.Printf("Editor: %v", err)
	if s.sound != nil {
		s.sound.PlayError()
	}
}

func (s *Session) setStatus(format string, args ...any) {
	s.status = Status{Text: fmt.Sprintf(format, args...), Seq: s.status.Seq + 1}
}

func (s *Session) click() {
	if s.sound != nil {
		s.sound.PlayClick()
	}
}

// commit refreshes the cache for changed cells and marks the document modified
func (s *Session) commit(pts []core.Point) error {
	if len(pts) == 0 {
		return nil
	}
	s.dirty = true
	return s.cache.Refresh(s.grid, pts)
}

func (s *Session) setCell(p core.Point, c core.Cell) error {
	if err := s.grid.Set(p.X, p.Y, c); err != nil {
		return err
	}
	return s.commit([]core.Point{p})
}

func (s *Session) paint() error {
	return s.setCell(s.pointer, s.Brush())
}

func (s *Session) pickGlyph() error {
	area := s.PickerArea()
	if !area.Contains(s.pointer) {
		return fmt.Errorf("pick at (%d, %d): %w", s.pointer.X, s.pointer.Y, core.ErrOutOfBounds)
	}
	s.picker = core.Point{X: s.pointer.X - area.Left, Y: s.pointer.Y - area.Top}
	return nil
}

func (s *Session) placeCursor() error {
	if !s.grid.InBounds(s.pointer.X, s.pointer.Y) {
		return fmt.Errorf("cursor at (%d, %d): %w", s.pointer.X, s.pointer.Y, core.ErrOutOfBounds)
	}
	s.cursor = s.pointer
	return nil
}

func (s *Session) flood() error {
	target, err := s.grid.FloodTargetValue(s.pointer.X, s.pointer.Y)
	if err != nil {
		return err
	}
	replacement := s.Brush()
	if target == replacement {
		return nil
	}
	changed, err := core.FloodFill(s.grid, s.pointer, target, replacement)
	if err != nil {
		return err
	}
	log.Printf("Editor: flood from (%d, %d) changed %d cells", s.pointer.X, s.pointer.Y, len(changed))
	return s.commit(changed)
}

func (s *Session) eyedrop() error {
	c, err := s.grid.Get(s.pointer.X, s.pointer.Y)
	if err != nil {
		return err
	}
	s.fg, s.bg = c.Fg, c.Bg
	s.picker = core.Point{X: int(c.Glyph) % PickerSize, Y: int(c.Glyph) / PickerSize}
	return nil
}

func (s *Session) beginSelect() error {
	if !s.grid.InBounds(s.pointer.X, s.pointer.Y) {
		return fmt.Errorf("select at (%d, %d): %w", s.pointer.X, s.pointer.Y, core.ErrOutOfBounds)
	}
	s.sel.BeginDrag(s.pointer)
	return nil
}

func (s *Session) clampToGrid(p core.Point) core.Point {
	p.X = min(max(p.X, 0), s.grid.Width()-1)
	p.Y = min(max(p.Y, 0), s.grid.Height()-1)
	return p
}

// typeChar writes at the text cursor and advances it, wrapping to the next
// row at the right edge and stopping at the bottom row
func (s *Session) typeChar(r rune) error {
	glyph, ok := render.GlyphForRune(r)
	if !ok {
		return fmt.Errorf("type %q: %w", r, ErrNotPrintable)
	}

	if err := s.setCell(s.cursor, core.NewCell(glyph, s.fg, s.bg)); err != nil {
		return err
	}
	s.cursor.X++
	if s.cursor.X >= s.grid.Width() {
		s.cursor.X = 0
		if s.cursor.Y < s.grid.Height()-1 {
			s.cursor.Y++
		}
	}
	return nil
}

// erase clears the active selection, or the glyph at the text cursor
func (s *Session) erase(black bool) error {
	if box, ok := s.sel.Box(); ok {
		mode := core.ClearToBackground
		if black {
			mode = core.ClearToBlack
		}
		return s.commit(core.ClearBox(s.grid, box, s.fg, s.bg, mode))
	}

	c, err := s.grid.Get(s.cursor.X, s.cursor.Y)
	if err != nil {
		return err
	}
	return s.setCell(s.cursor, c.WithGlyph(0))
}

// resize steps the document size and rebuilds the cache
// A clamped request leaves the size unchanged and reports ErrInvalidResize
func (s *Session) resize(dx, dy int) error {
	w, h := s.grid.Width(), s.grid.Height()
	resizeErr := s.grid.Resize(w+dx, h+dy)
	if s.grid.Width() != w || s.grid.Height() != h {
		s.cache.RebuildAll(s.grid)
		s.cursor = s.clampToGrid(s.cursor)
		s.dirty = true
		s.setStatus("%d x %d", s.grid.Width(), s.grid.Height())
		log.Printf("Editor: resized to %dx%d", s.grid.Width(), s.grid.Height())
	}
	return resizeErr
}

func (s *Session) copySelection() error {
	if err := s.sel.CopyTo(s.clip, s.grid); err != nil {
		return err
	}
	b, _ := s.clip.Bounds()
	s.setStatus("Copied %d x %d", b.Width(), b.Height())
	s.click()
	return nil
}

func (s *Session) paste() error {
	written, err := s.clip.Paste(s.grid, s.pointer)
	if err != nil {
		return err
	}
	s.click()
	return s.commit(written)
}

func (s *Session) save() error {
	if s.path == "" {
		return ErrNoPath
	}
	if err := document.Save(s.path, s.grid); err != nil {
		return err
	}
	s.dirty = false
	s.setStatus("Saved %s", s.path)
	if s.sound != nil {
		s.sound.PlayBell()
	}
	return nil
}

const slotPrefix = "slot-"

// SlotName returns the stash key of a numbered slot
func SlotName(slot int) string {
	return fmt.Sprintf("%s%d", slotPrefix, slot)
}

func (s *Session) stashStore(slot int) error {
	if s.stash == nil {
		return ErrNoStash
	}
	if err := s.stash.Put(SlotName(slot), s.clip); err != nil {
		return err
	}
	s.setStatus("Stored clipboard in slot %d", slot)
	s.click()
	return nil
}

func (s *Session) stashLoad(slot int) error {
	if s.stash == nil {
		return ErrNoStash
	}
	// Load into a scratch clipboard so a failed read keeps the current one
	scratch := core.NewClipboard()
	if err := s.stash.Get(SlotName(slot), scratch); err != nil {
		return err
	}
	s.clip = scratch
	s.setStatus("Loaded slot %d into clipboard", slot)
	s.click()
	return nil
}

func (s *Session) stashDelete(slot int) error {
	if s.stash == nil {
		return ErrNoStash
	}
	if err := s.stash.Delete(SlotName(slot)); err != nil {
		return err
	}
	s.setStatus("Cleared slot %d", slot)
	s.click()
	return nil
}

// stashList shows occupied slots and their sizes on the status line
func (s *Session) stashList() error {
	if s.stash == nil {
		return ErrNoStash
	}
	entries, err := s.stash.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.setStatus("Stash is empty")
		return nil
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		label, ok := strings.CutPrefix(e.Name, slotPrefix)
		if !ok {
			label = e.Name
		}
		parts = append(parts, fmt.Sprintf("%s:%dx%d", label, e.Width, e.Height))
	}
	s.setStatus("Slots %s", strings.Join(parts, " "))
	return nil
}

// wrap reduces v into [0, n) in both directions
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
